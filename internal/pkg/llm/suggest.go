package llm

import (
	"Herald/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

const suggestTagsPrompt = `You are a school newsletter administrator. Based on the content of the post provided, suggest 5 relevant tags that can be used to categorize the post.
Respond with a JSON object of the form {"tags": ["tag1", "tag2", ...]} and nothing else.`

// SuggestTagsCount 期望返回的标签数量
const SuggestTagsCount = 5

type tagsResponse struct {
	Tags []string `json:"tags"`
}

// SuggestTags 根据帖子正文请求标签建议，单次请求无重试
func SuggestTags(ctx context.Context, postContent string) ([]string, error) {
	resp, err := fetchModel(ctx, suggestTagsPrompt, postContent, 0.1)
	if err != nil {
		log.Error("AI大模型请求失败", "err", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("标签建议-AI大模型返回数据为空")
	}

	tags, err := ParseTags(resp.Choices[0].Content)
	if err != nil {
		log.Error("标签建议-AI大模型返回数据解析失败", "err", err)
		return nil, err
	}

	return tags, nil
}

// ParseTags 解析模型返回的 JSON，容忍 ```json 围栏
func ParseTags(s string) ([]string, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var temp tagsResponse
	if err := json.Unmarshal([]byte(cleaned), &temp); err != nil {
		return nil, err
	}

	var tags []string
	for _, t := range temp.Tags {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
		if len(tags) >= SuggestTagsCount {
			break
		}
	}

	return tags, nil
}

func fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	log.Info("正在请求AI大模型")
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(temp),
	)
}
