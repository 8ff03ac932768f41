package util

import (
	"Herald/internal/pkg/consts"
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestGetSafeContentTypeSniffsPNG(t *testing.T) {
	data := encodePNG(t, 10, 10)

	contentType, err := GetSafeContentType(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}

func TestGetSafeContentTypeRewindsReader(t *testing.T) {
	data := encodePNG(t, 10, 10)
	reader := bytes.NewReader(data)

	_, err := GetSafeContentType(reader)
	require.NoError(t, err)

	// 嗅探后必须能从头完整读出
	rest := make([]byte, len(data))
	n, _ := reader.Read(rest)
	assert.Equal(t, len(data), n)
}

func TestNormalizeImageKeepsSmallImage(t *testing.T) {
	data := encodePNG(t, 100, 80)

	_, width, height, err := NormalizeImage(bytes.NewReader(data), "image/png")
	require.NoError(t, err)
	assert.Equal(t, 100, width)
	assert.Equal(t, 80, height)
}

func TestNormalizeImageShrinksWideImage(t *testing.T) {
	data := encodePNG(t, consts.MaxImageWidth*2, 400)

	_, width, height, err := NormalizeImage(bytes.NewReader(data), "image/png")
	require.NoError(t, err)
	assert.Equal(t, consts.MaxImageWidth, width)
	assert.Equal(t, 200, height)
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	_, _, _, err := NormalizeImage(bytes.NewReader([]byte("不是图片")), "image/png")
	assert.Error(t, err)
}
