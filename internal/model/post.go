package model

import (
	"time"
)

type Post struct {
	ID         uint64    `gorm:"primaryKey"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	ImageURL   string    `gorm:"type:varchar(512)" json:"image_url"`
	Tags       []string  `gorm:"type:json;serializer:json" json:"tags"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"` // 发布时间，创建后不可变

	// 关联关系
	Comments []PostComment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
