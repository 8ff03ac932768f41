package handler

import (
	"Herald/internal/pkg/consts"
	"Herald/internal/pkg/redis"
	"Herald/internal/pkg/response"
	"Herald/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const feedWriteTimeout = 10 * time.Second

type FeedHandler struct {
	postSvc service.PostService
}

func NewFeedHandler(postSvc service.PostService) *FeedHandler {
	return &FeedHandler{postSvc: postSvc}
}

// Subscribe 动态订阅。连接建立后立即下发完整快照，
// 此后每次有写入事件都重新下发完整快照，客户端无需做增量合并
func (s *FeedHandler) Subscribe(c *gin.Context) {
	// 订阅失败就不升级连接，客户端收到普通错误响应后重试
	pubsub, err := redis.Subscribe(context.Background(), consts.FeedChannel)
	if err != nil {
		log.Error("订阅动态事件失败", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}
	defer func() {
		_ = pubsub.Close()
	}()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	if err = s.pushSnapshot(conn); err != nil {
		log.Warn("WS 下发初始快照失败", "err", err)
		return
	}

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(stopChan)
				return
			}
		}
	}()

	// 写循环：每个事件触发一次全量快照推送
	redisCh := pubsub.Channel()
	for {
		select {
		case <-redisCh:
			if err = s.pushSnapshot(conn); err != nil {
				log.Warn("WS 推送快照失败", "err", err)
				return
			}
		case <-stopChan:
			return
		}
	}
}

func (s *FeedHandler) pushSnapshot(conn *websocket.Conn) error {
	snapshot, err := s.postSvc.Snapshot(context.Background())
	if err != nil {
		return err
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
