package repository

import (
	"Herald/internal/pkg/consts"
	"Herald/internal/pkg/redis"
	"context"
	"strconv"
)

// ViewerLikeRepo 设备维度的已点赞集合，与帖子计数解耦存储
type ViewerLikeRepo interface {
	Add(ctx context.Context, viewerID string, postID uint64) error
	Remove(ctx context.Context, viewerID string, postID uint64) error
	List(ctx context.Context, viewerID string) ([]uint64, error)
}

type ViewerLikeRepoImpl struct{}

func NewViewerLikeRepo() ViewerLikeRepo {
	return &ViewerLikeRepoImpl{}
}

func (s *ViewerLikeRepoImpl) Add(ctx context.Context, viewerID string, postID uint64) error {
	return redis.SAdd(ctx, consts.ViewerLikedKey+viewerID, strconv.FormatUint(postID, 10))
}

func (s *ViewerLikeRepoImpl) Remove(ctx context.Context, viewerID string, postID uint64) error {
	return redis.SRem(ctx, consts.ViewerLikedKey+viewerID, strconv.FormatUint(postID, 10))
}

func (s *ViewerLikeRepoImpl) List(ctx context.Context, viewerID string) ([]uint64, error) {
	members, err := redis.SMembers(ctx, consts.ViewerLikedKey+viewerID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(members))
	for _, member := range members {
		id, parseErr := strconv.ParseUint(member, 10, 64)
		if parseErr != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
