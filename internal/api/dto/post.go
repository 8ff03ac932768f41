package dto

// PostCreateDTO 发布帖子请求，Tags 仅在创建时可设置
type PostCreateDTO struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags" validate:"max=20"`
}

type PostDTO struct {
	ID        uint64        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	ImageURL  string        `json:"image_url,omitempty"`
	Tags      []string      `json:"tags"`
	Likes     int           `json:"likes"`
	CreatedAt string        `json:"created_at"`
	Comments  []*CommentDTO `json:"comments"`
}

// FeedSnapshotDTO WebSocket 推送帧：每次变更都下发完整快照
type FeedSnapshotDTO struct {
	Type  string     `json:"type"`
	Posts []*PostDTO `json:"posts"`
}
