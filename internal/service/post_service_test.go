package service

import (
	"Herald/internal/api/dto"
	"Herald/internal/model"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(newFakePostRepo())
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &dto.PostCreateDTO{
		Title:   "嗨",
		Content: strings.Repeat("内容", 20),
	})
	assert.ErrorIs(t, err, ErrTitleTooShort)

	_, err = svc.CreatePost(ctx, &dto.PostCreateDTO{
		Title:   "开学典礼通知",
		Content: "太短了",
	})
	assert.ErrorIs(t, err, ErrContentTooShort)

	// 只有空白的标题不能靠填充通过校验
	_, err = svc.CreatePost(ctx, &dto.PostCreateDTO{
		Title:   "  a b  ",
		Content: strings.Repeat("内容", 20),
	})
	assert.ErrorIs(t, err, ErrTitleTooShort)
}

func TestCreatePostTrimsAndFreezesTags(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), &dto.PostCreateDTO{
		Title:   "  运动会安排  ",
		Content: "  " + strings.Repeat("本周五举行秋季运动会。", 5) + "  ",
		Tags:    []string{" 活动 ", "", "通知"},
	})
	require.NoError(t, err)
	assert.Equal(t, "运动会安排", post.Title)
	assert.Equal(t, []string{"活动", "通知"}, post.Tags)
	assert.Equal(t, 0, post.Likes)
	assert.NotEmpty(t, post.CreatedAt)

	stored, err := repo.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"活动", "通知"}, []string(stored.Tags))
}

func TestListPostsNewestFirst(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	base := time.Now()
	for i, title := range []string{"第一篇公告发布", "第二篇公告发布", "第三篇公告发布"} {
		require.NoError(t, repo.CreatePost(ctx, &model.Post{
			Title:     title,
			Content:   strings.Repeat("正文", 20),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	posts, err := svc.ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "第三篇公告发布", posts[0].Title)
	assert.Equal(t, "第一篇公告发布", posts[2].Title)
}

func TestListPostsTitleFilter(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	require.NoError(t, repo.CreatePost(ctx, &model.Post{Title: "秋季运动会", CreatedAt: time.Now()}))
	require.NoError(t, repo.CreatePost(ctx, &model.Post{Title: "期末考试安排", CreatedAt: time.Now()}))

	posts, err := svc.ListPosts(ctx, "运动会")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "秋季运动会", posts[0].Title)
}

func TestGetPostNotFound(t *testing.T) {
	svc := NewPostService(newFakePostRepo())
	_, err := svc.GetPost(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostRemovesPost(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	require.NoError(t, repo.CreatePost(ctx, &model.Post{Title: "即将撤下的公告", CreatedAt: time.Now()}))
	require.NoError(t, svc.DeletePost(ctx, 1))

	_, err := svc.GetPost(ctx, 1)
	assert.ErrorIs(t, err, ErrPostNotFound)

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Posts)

	assert.ErrorIs(t, svc.DeletePost(ctx, 1), ErrPostNotFound)
}

func TestSnapshotContainsAllPosts(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	require.NoError(t, repo.CreatePost(ctx, &model.Post{Title: "开学第一课", CreatedAt: time.Now()}))

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snapshot", snapshot.Type)
	require.Len(t, snapshot.Posts, 1)
	assert.NotNil(t, snapshot.Posts[0].Tags)
	assert.NotNil(t, snapshot.Posts[0].Comments)
}
