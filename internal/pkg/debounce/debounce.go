package debounce

import (
	"sync"
	"time"
)

// Timer 可显式取消的延迟触发器：同一窗口内重复 Schedule 只保留最后一次
type Timer struct {
	mu sync.Mutex
	t  *time.Timer
}

func NewTimer() *Timer {
	return &Timer{}
}

// Schedule 取消尚未触发的任务并重新计时，delay 之后在独立 goroutine 中执行 fn
func (d *Timer) Schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
	d.t = time.AfterFunc(delay, fn)
}

// Cancel 取消当前待触发的任务，返回是否在触发前成功取消
func (d *Timer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t == nil {
		return false
	}
	stopped := d.t.Stop()
	d.t = nil
	return stopped
}
