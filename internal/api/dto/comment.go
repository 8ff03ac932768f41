package dto

// CommentCreateDTO 创建评论请求，name 可空，text 去空白后为空则拒绝
type CommentCreateDTO struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	UserID    uint64 `json:"user_id,omitempty"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}
