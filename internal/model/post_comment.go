package model

import (
	"time"
)

// PostComment 评论只增不改：没有编辑或单独删除操作，随帖子删除级联移除
type PostComment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	UserID    uint64    `gorm:"not null;default:0" json:"userId"` // 0表示匿名评论
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Text      string    `gorm:"type:varchar(1000);not null" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
