package repository

import (
	"Herald/internal/model"
	"context"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.PostComment) error
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.PostComment, error)
	GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetCommentsByPostID 会话顺序：时间正序，最早的在前
func (s *CommentRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.PostComment, error) {
	var comments []*model.PostComment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostComment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
