package service

import (
	"Herald/internal/api/dto"
	"Herald/internal/pkg/debounce"
	"context"
	log "log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// MinSuggestContentLen 正文不足该长度时不请求模型
const MinSuggestContentLen = 50

const suggestTimeout = 30 * time.Second

// SuggestFunc 实际调用模型的函数，注入以便替换
type SuggestFunc func(ctx context.Context, content string) ([]string, error)

// TagService 标签建议服务。同一 session 的连续输入在去抖窗口内合并，
// 只有窗口结束时的最后一版正文会发往模型，被取代的请求立刻返回
type TagService interface {
	Suggest(ctx context.Context, req *dto.TagSuggestReq) (*dto.TagSuggestDTO, error)
}

type tagServiceImpl struct {
	window time.Duration
	fetch  SuggestFunc

	mu       sync.Mutex
	sessions map[string]*suggestSession
}

type suggestSession struct {
	timer   *debounce.Timer
	pending chan suggestResult
}

type suggestResult struct {
	tags []string
	err  error
}

func NewTagService(window time.Duration, fetch SuggestFunc) TagService {
	return &tagServiceImpl{
		window:   window,
		fetch:    fetch,
		sessions: make(map[string]*suggestSession),
	}
}

func (t *tagServiceImpl) Suggest(ctx context.Context, req *dto.TagSuggestReq) (*dto.TagSuggestDTO, error) {
	content := strings.TrimSpace(req.Content)

	t.mu.Lock()
	sess := t.sessions[req.SessionID]
	if sess == nil {
		sess = &suggestSession{timer: debounce.NewTimer()}
		t.sessions[req.SessionID] = sess
	}
	// 新输入到达，之前还在等待的请求作废
	if sess.pending != nil {
		select {
		case sess.pending <- suggestResult{err: ErrSuggestionSuperseded}:
		default:
		}
		sess.pending = nil
	}
	if utf8.RuneCountInString(content) < MinSuggestContentLen {
		sess.timer.Cancel()
		delete(t.sessions, req.SessionID)
		t.mu.Unlock()
		return &dto.TagSuggestDTO{Tags: []string{}}, nil
	}
	ch := make(chan suggestResult, 1)
	sess.pending = ch

	// Schedule 必须在持锁期间完成：注册 pending 和注册回调是一个原子步骤，
	// 否则并发调用可能让旧回调覆盖新回调，新调用方将永远等不到结果
	sess.timer.Schedule(t.window, func() {
		fetchCtx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
		defer cancel()
		tags, err := t.fetch(fetchCtx, content)
		select {
		case ch <- suggestResult{tags: tags, err: err}:
		default:
		}
		t.mu.Lock()
		if sess.pending == ch {
			sess.pending = nil
			delete(t.sessions, req.SessionID)
		}
		t.mu.Unlock()
	})
	t.mu.Unlock()

	select {
	case res := <-ch:
		if res.err != nil {
			if res.err == ErrSuggestionSuperseded {
				return nil, res.err
			}
			// 建议失败不阻塞发布流程，降级为空结果
			log.WarnContext(ctx, "获取标签建议失败", "sessionID", req.SessionID, "err", res.err)
			return &dto.TagSuggestDTO{Tags: []string{}}, nil
		}
		if res.tags == nil {
			res.tags = []string{}
		}
		return &dto.TagSuggestDTO{Tags: res.tags}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
