package repository

import (
	"Herald/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, titleQuery string) ([]*model.Post, error)
	DeletePost(ctx context.Context, id uint64) error
	IncrementLikes(ctx context.Context, id uint64, delta int) (int, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// CreatePost 单条原子写入，读者不会看到半成品记录
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListPosts 返回完整快照：帖子按发布时间倒序，评论按时间正序嵌套
func (s *PostRepoImpl) ListPosts(ctx context.Context, titleQuery string) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("created_at DESC, id DESC")
	if titleQuery != "" {
		query = query.Where("title LIKE ?", "%"+titleQuery+"%")
	}
	err := query.Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost 帖子与其全部评论在同一事务内删除，不做软删
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// IncrementLikes 计数器走数据库侧原子更新，由存储层仲裁并发写，下限钳制为 0
func (s *PostRepoImpl) IncrementLikes(ctx context.Context, id uint64, delta int) (int, error) {
	var count int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id").First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Post{}).Where("id = ?", id).
			Update("likes_count", gorm.Expr("GREATEST(likes_count + ?, 0)", delta)).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Select("likes_count").Where("id = ?", id).Scan(&count).Error
	})
	return count, err
}
