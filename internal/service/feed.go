package service

import (
	"Herald/internal/pkg/consts"
	"Herald/internal/pkg/redis"
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

const (
	FeedEventPostCreated   = "post_created"
	FeedEventPostDeleted   = "post_deleted"
	FeedEventCommentAdded  = "comment_added"
	FeedEventLikesChanged  = "likes_changed"
)

// FeedEvent 写路径完成后发布到 Redis 总线，订阅端收到后重新下发完整快照
type FeedEvent struct {
	Type   string `json:"type"`
	PostID uint64 `json:"post_id"`
}

func publishFeedEvent(ctx context.Context, eventType string, postID uint64) {
	payload, err := json.Marshal(FeedEvent{Type: eventType, PostID: postID})
	if err != nil {
		return
	}
	if err = redis.Publish(ctx, consts.FeedChannel, string(payload)); err != nil {
		// 推送失败不影响写路径，订阅端下一次事件会补齐
		log.WarnContext(ctx, "发布动态事件失败", "type", eventType, "postID", postID, "err", err)
	}
}
