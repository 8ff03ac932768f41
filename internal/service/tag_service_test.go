package service

import (
	"Herald/internal/api/dto"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longContent = "秋季运动会将于本周五上午八点在操场举行，请各班提前安排好入场顺序并组织学生准时参加，家长可凭邀请函入校观摩，雨天顺延至下周一。"

func TestSuggestShortContentSkipsModel(t *testing.T) {
	var calls int32
	svc := NewTagService(10*time.Millisecond, func(_ context.Context, _ string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"活动"}, nil
	})

	res, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: "s1", Content: "太短"})
	require.NoError(t, err)
	assert.Empty(t, res.Tags)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestSuggestReturnsModelTags(t *testing.T) {
	svc := NewTagService(10*time.Millisecond, func(_ context.Context, content string) ([]string, error) {
		assert.Equal(t, longContent, content)
		return []string{"运动会", "通知"}, nil
	})

	res, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: "s1", Content: "  " + longContent + "  "})
	require.NoError(t, err)
	assert.Equal(t, []string{"运动会", "通知"}, res.Tags)
}

func TestSuggestDebounceLastInputWins(t *testing.T) {
	var calls int32
	var lastContent atomic.Value
	svc := NewTagService(50*time.Millisecond, func(_ context.Context, content string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		lastContent.Store(content)
		return []string{"最终"}, nil
	})

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: "s1", Content: longContent + "旧"})
		firstDone <- err
	}()
	time.Sleep(10 * time.Millisecond)

	res, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: "s1", Content: longContent + "新"})
	require.NoError(t, err)
	assert.Equal(t, []string{"最终"}, res.Tags)

	assert.ErrorIs(t, <-firstDone, ErrSuggestionSuperseded)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, longContent+"新", lastContent.Load())
}

func TestSuggestModelFailureDegradesToEmpty(t *testing.T) {
	svc := NewTagService(10*time.Millisecond, func(_ context.Context, _ string) ([]string, error) {
		return nil, errors.New("模型超时")
	})

	res, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: "s1", Content: longContent})
	require.NoError(t, err)
	assert.Empty(t, res.Tags)
}

func TestSuggestSessionsAreIndependent(t *testing.T) {
	var calls int32
	svc := NewTagService(10*time.Millisecond, func(_ context.Context, _ string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{strings.Repeat("标", 1)}, nil
	})

	for _, session := range []string{"a", "b"} {
		res, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: session, Content: longContent})
		require.NoError(t, err)
		assert.Len(t, res.Tags, 1)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSuggestConcurrentSameSessionAllResolve(t *testing.T) {
	var calls int32
	svc := NewTagService(50*time.Millisecond, func(_ context.Context, _ string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"最终"}, nil
	})

	const writers = 5
	results := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_, err := svc.Suggest(ctx, &dto.TagSuggestReq{SessionID: "s1", Content: longContent})
			results <- err
		}()
	}

	var succeeded, superseded int
	for i := 0; i < writers; i++ {
		err := <-results
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSuggestionSuperseded):
			superseded++
		default:
			// 任何一个调用方挂到超时都意味着回调注册被旧请求覆盖了
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, writers-1, superseded)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSuggestSessionEvictedAfterResolve(t *testing.T) {
	svc := NewTagService(10*time.Millisecond, func(_ context.Context, _ string) ([]string, error) {
		return []string{"活动"}, nil
	})
	impl := svc.(*tagServiceImpl)

	_, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: "s1", Content: longContent})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		impl.mu.Lock()
		defer impl.mu.Unlock()
		return len(impl.sessions) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSuggestShortContentEvictsSession(t *testing.T) {
	svc := NewTagService(10*time.Millisecond, func(_ context.Context, _ string) ([]string, error) {
		return nil, nil
	})
	impl := svc.(*tagServiceImpl)

	_, err := svc.Suggest(context.Background(), &dto.TagSuggestReq{SessionID: "s1", Content: "太短"})
	require.NoError(t, err)

	impl.mu.Lock()
	defer impl.mu.Unlock()
	assert.Empty(t, impl.sessions)
}
