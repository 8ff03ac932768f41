package dto

// TagSuggestReq 标签建议请求，同一 session_id 的连续请求会被去抖合并
type TagSuggestReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type TagSuggestDTO struct {
	Tags []string `json:"tags"`
}
