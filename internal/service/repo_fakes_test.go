package service

import (
	"Herald/internal/model"
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"
)

type fakePostRepo struct {
	mu     sync.Mutex
	nextID uint64
	posts  map[uint64]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*model.Post)}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	post.ID = f.nextID
	clone := *post
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	clone := *post
	return &clone, nil
}

func (f *fakePostRepo) ListPosts(_ context.Context, titleQuery string) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*model.Post
	for _, post := range f.posts {
		if titleQuery != "" && !strings.Contains(post.Title, titleQuery) {
			continue
		}
		clone := *post
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) IncrementLikes(_ context.Context, id uint64, delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	post.LikesCount += delta
	if post.LikesCount < 0 {
		post.LikesCount = 0
	}
	return post.LikesCount, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   uint64
	comments []*model.PostComment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *model.PostComment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	comment.ID = f.nextID
	clone := *comment
	f.comments = append(f.comments, &clone)
	return nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID uint64) ([]*model.PostComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*model.PostComment
	for _, comment := range f.comments {
		if comment.PostID == postID {
			clone := *comment
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (f *fakeCommentRepo) GetCommentCountByPostID(_ context.Context, postID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, comment := range f.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

type fakeViewerLikeRepo struct {
	mu   sync.Mutex
	sets map[string]map[uint64]struct{}
}

func newFakeViewerLikeRepo() *fakeViewerLikeRepo {
	return &fakeViewerLikeRepo{sets: make(map[string]map[uint64]struct{})}
}

func (f *fakeViewerLikeRepo) Add(_ context.Context, viewerID string, postID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.sets[viewerID]
	if !ok {
		set = make(map[uint64]struct{})
		f.sets[viewerID] = set
	}
	set[postID] = struct{}{}
	return nil
}

func (f *fakeViewerLikeRepo) Remove(_ context.Context, viewerID string, postID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sets[viewerID], postID)
	return nil
}

func (f *fakeViewerLikeRepo) List(_ context.Context, viewerID string) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0, len(f.sets[viewerID]))
	for id := range f.sets[viewerID] {
		ids = append(ids, id)
	}
	return ids, nil
}
