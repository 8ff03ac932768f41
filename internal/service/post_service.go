package service

import (
	"Herald/internal/api/dto"
	"Herald/internal/model"
	"Herald/internal/pkg/consts"
	"Herald/internal/pkg/minio"
	"Herald/internal/pkg/redis"
	"Herald/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minTitleLen   = 5
	minContentLen = 20
)

// PostService 帖子服务，负责帖子的创建、查询与删除
type PostService interface {
	CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, titleQuery string) ([]*dto.PostDTO, error)
	DeletePost(ctx context.Context, postID uint64) error
	Snapshot(ctx context.Context) (*dto.FeedSnapshotDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{postRepo: postRepo}
}

// CreatePost 创建帖子，标题和正文去除首尾空白后校验长度，标签在创建时固定
func (p *postServiceImpl) CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if utf8.RuneCountInString(title) < minTitleLen {
		return nil, ErrTitleTooShort
	}
	if utf8.RuneCountInString(content) < minContentLen {
		return nil, ErrContentTooShort
	}
	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	post := &model.Post{
		Title:     title,
		Content:   content,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		Tags:      tags,
		CreatedAt: time.Now(),
	}
	if err := p.postRepo.CreatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "创建帖子失败", "err", err)
		return nil, UnExpectedError
	}
	// 图片已正式关联到帖子，从临时记录中移除，避免被清理任务误删
	if key := objectKeyOf(post.ImageURL); key != "" {
		if err := redis.HDel(ctx, consts.MediaTempKey, key); err != nil {
			log.WarnContext(ctx, "清除临时图片记录失败", "key", key, "err", err)
		}
	}
	publishFeedEvent(ctx, FeedEventPostCreated, post.ID)
	return toPostDTO(post), nil
}

func (p *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := p.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "查询帖子失败", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

// ListPosts 按创建时间倒序返回帖子列表，titleQuery 非空时按标题模糊过滤
func (p *postServiceImpl) ListPosts(ctx context.Context, titleQuery string) ([]*dto.PostDTO, error) {
	posts, err := p.postRepo.ListPosts(ctx, strings.TrimSpace(titleQuery))
	if err != nil {
		log.ErrorContext(ctx, "查询帖子列表失败", "err", err)
		return nil, UnExpectedError
	}
	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostDTO(post))
	}
	return result, nil
}

// DeletePost 硬删除帖子及其全部评论，随后异步清理对象存储中的配图
func (p *postServiceImpl) DeletePost(ctx context.Context, postID uint64) error {
	post, err := p.postRepo.GetPost(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "查询帖子失败", "postID", postID, "err", err)
		return UnExpectedError
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = p.postRepo.DeletePost(ctx, postID); err != nil {
		log.ErrorContext(ctx, "删除帖子失败", "postID", postID, "err", err)
		return UnExpectedError
	}
	if key := objectKeyOf(post.ImageURL); key != "" {
		go func() {
			if err := minio.DeleteFile(context.Background(), key); err != nil {
				log.Warn("删除帖子配图失败", "key", key, "err", err)
			}
		}()
	}
	publishFeedEvent(ctx, FeedEventPostDeleted, postID)
	return nil
}

// Snapshot 构建完整的动态快照，订阅端连接和每次事件后都会收到
func (p *postServiceImpl) Snapshot(ctx context.Context) (*dto.FeedSnapshotDTO, error) {
	posts, err := p.ListPosts(ctx, "")
	if err != nil {
		return nil, err
	}
	return &dto.FeedSnapshotDTO{Type: "snapshot", Posts: posts}, nil
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	comments := make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, toCommentDTO(&post.Comments[i]))
	}
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  resolveImageURL(post.ImageURL),
		Tags:      tags,
		Likes:     post.LikesCount,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		Comments:  comments,
	}
}

// resolveImageURL 把对象存储的 key 转换为可访问的 URL，外链原样返回
func resolveImageURL(s string) string {
	if s == "" || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return minio.GetPublicURL(s)
}

// objectKeyOf 仅当图片存放在自己的对象存储时返回其 key
func objectKeyOf(s string) string {
	if s == "" || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return ""
	}
	return s
}
