package service

import (
	"Herald/internal/model"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeFixture(t *testing.T) (LikeService, *fakePostRepo, *fakeViewerLikeRepo) {
	t.Helper()
	postRepo := newFakePostRepo()
	viewerRepo := newFakeViewerLikeRepo()
	require.NoError(t, postRepo.CreatePost(context.Background(), &model.Post{
		Title:     "校庆活动",
		CreatedAt: time.Now(),
	}))
	return NewLikeService(postRepo, viewerRepo), postRepo, viewerRepo
}

func TestToggleRoundTrip(t *testing.T) {
	svc, _, _ := newLikeFixture(t)
	ctx := context.Background()

	state, err := svc.Toggle(ctx, "viewer-a", 1, true)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Likes)
	assert.True(t, state.Liked)

	state, err = svc.Toggle(ctx, "viewer-a", 1, false)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Likes)
	assert.False(t, state.Liked)
}

func TestToggleRoundTripLeavesViewerSetUnchanged(t *testing.T) {
	svc, _, _ := newLikeFixture(t)
	ctx := context.Background()

	before, err := svc.GetViewerLikes(ctx, "viewer-a")
	require.NoError(t, err)
	assert.Empty(t, before.PostIDs)

	_, err = svc.Toggle(ctx, "viewer-a", 1, true)
	require.NoError(t, err)

	liked, err := svc.GetViewerLikes(ctx, "viewer-a")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, liked.PostIDs)

	_, err = svc.Toggle(ctx, "viewer-a", 1, false)
	require.NoError(t, err)

	after, err := svc.GetViewerLikes(ctx, "viewer-a")
	require.NoError(t, err)
	assert.Empty(t, after.PostIDs)
}

func TestViewerSetsAreIndependent(t *testing.T) {
	svc, _, _ := newLikeFixture(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "viewer-a", 1, true)
	require.NoError(t, err)

	other, err := svc.GetViewerLikes(ctx, "viewer-b")
	require.NoError(t, err)
	assert.Empty(t, other.PostIDs)
}

func TestToggleNeverGoesNegative(t *testing.T) {
	svc, _, _ := newLikeFixture(t)
	ctx := context.Background()

	state, err := svc.Toggle(ctx, "viewer-a", 1, false)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Likes)
}

func TestToggleMissingViewer(t *testing.T) {
	svc, _, _ := newLikeFixture(t)

	_, err := svc.Toggle(context.Background(), "", 1, true)
	assert.ErrorIs(t, err, ErrViewerMissing)

	_, err = svc.GetViewerLikes(context.Background(), "")
	assert.ErrorIs(t, err, ErrViewerMissing)
}

func TestTogglePostNotFound(t *testing.T) {
	svc, _, _ := newLikeFixture(t)

	_, err := svc.Toggle(context.Background(), "viewer-a", 999, true)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestConcurrentLikesAllCounted(t *testing.T) {
	svc, repo, _ := newLikeFixture(t)
	ctx := context.Background()

	const viewers = 10
	var wg sync.WaitGroup
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.Toggle(ctx, "viewer", 1, true)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	post, err := repo.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, viewers, post.LikesCount)
}
