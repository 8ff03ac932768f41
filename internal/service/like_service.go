package service

import (
	"Herald/internal/api/dto"
	"Herald/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"gorm.io/gorm"
)

// LikeService 匿名点赞服务，点赞状态跟随浏览器侧生成的设备标识，与用户体系无关
type LikeService interface {
	Toggle(ctx context.Context, viewerID string, postID uint64, like bool) (*dto.LikeStateDTO, error)
	GetViewerLikes(ctx context.Context, viewerID string) (*dto.ViewerLikesDTO, error)
}

type likeServiceImpl struct {
	postRepo       repository.PostRepo
	viewerLikeRepo repository.ViewerLikeRepo
}

func NewLikeService(postRepo repository.PostRepo, viewerLikeRepo repository.ViewerLikeRepo) LikeService {
	return &likeServiceImpl{postRepo: postRepo, viewerLikeRepo: viewerLikeRepo}
}

// Toggle 点赞或取消点赞。计数在数据库侧原子更新且不会低于 0，
// 设备标记随后写入集合，两步之间不保证原子，以计数为准
func (l *likeServiceImpl) Toggle(ctx context.Context, viewerID string, postID uint64, like bool) (*dto.LikeStateDTO, error) {
	if viewerID == "" {
		return nil, ErrViewerMissing
	}
	delta := 1
	if !like {
		delta = -1
	}
	count, err := l.postRepo.IncrementLikes(ctx, postID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "更新点赞计数失败", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	if like {
		err = l.viewerLikeRepo.Add(ctx, viewerID, postID)
	} else {
		err = l.viewerLikeRepo.Remove(ctx, viewerID, postID)
	}
	if err != nil {
		log.WarnContext(ctx, "更新设备点赞标记失败", "viewerID", viewerID, "postID", postID, "err", err)
	}
	publishFeedEvent(ctx, FeedEventLikesChanged, postID)
	return &dto.LikeStateDTO{Likes: count, Liked: like}, nil
}

// GetViewerLikes 返回该设备已点赞的帖子 id 集合，用于前端恢复点亮状态
func (l *likeServiceImpl) GetViewerLikes(ctx context.Context, viewerID string) (*dto.ViewerLikesDTO, error) {
	if viewerID == "" {
		return nil, ErrViewerMissing
	}
	ids, err := l.viewerLikeRepo.List(ctx, viewerID)
	if err != nil {
		log.ErrorContext(ctx, "查询设备点赞集合失败", "viewerID", viewerID, "err", err)
		return nil, UnExpectedError
	}
	return &dto.ViewerLikesDTO{PostIDs: ids}, nil
}
