package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagsPlainJSON(t *testing.T) {
	tags, err := ParseTags(`{"tags": ["活动", "通知"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"活动", "通知"}, tags)
}

func TestParseTagsFencedJSON(t *testing.T) {
	tags, err := ParseTags("```json\n{\"tags\": [\"运动会\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"运动会"}, tags)
}

func TestParseTagsCapsCount(t *testing.T) {
	tags, err := ParseTags(`{"tags": ["a", "b", "c", "d", "e", "f", "g"]}`)
	require.NoError(t, err)
	assert.Len(t, tags, SuggestTagsCount)
}

func TestParseTagsDropsBlanks(t *testing.T) {
	tags, err := ParseTags(`{"tags": ["  ", "考试", ""]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"考试"}, tags)
}

func TestParseTagsInvalidPayload(t *testing.T) {
	_, err := ParseTags("这不是 JSON")
	assert.Error(t, err)
}
