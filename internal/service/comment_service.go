package service

import (
	"Herald/internal/api/dto"
	"Herald/internal/model"
	"Herald/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

// AnonymousName 访客未填写昵称时的默认署名
const AnonymousName = "Anonymous"

// CommentService 评论服务，评论只增不改不删，随帖子一并删除
type CommentService interface {
	AddComment(ctx context.Context, postID uint64, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
}

type commentServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
}

func NewCommentService(postRepo repository.PostRepo, commentRepo repository.CommentRepo) CommentService {
	return &commentServiceImpl{postRepo: postRepo, commentRepo: commentRepo}
}

// AddComment 追加评论，正文为空时拒绝且不产生任何写入，昵称为空时署名 Anonymous
func (c *commentServiceImpl) AddComment(ctx context.Context, postID uint64, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrCommentEmpty
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = AnonymousName
	}
	post, err := c.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "查询帖子失败", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	comment := &model.PostComment{
		PostID:    postID,
		UserID:    userID,
		Name:      name,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err = c.commentRepo.CreateComment(ctx, comment); err != nil {
		log.ErrorContext(ctx, "创建评论失败", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	publishFeedEvent(ctx, FeedEventCommentAdded, postID)
	return toCommentDTO(comment), nil
}

// ListComments 按创建时间升序返回帖子的全部评论
func (c *commentServiceImpl) ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	post, err := c.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "查询帖子失败", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	comments, err := c.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "查询评论失败", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentDTO(comment))
	}
	return result, nil
}

func toCommentDTO(comment *model.PostComment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Name:      comment.Name,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
