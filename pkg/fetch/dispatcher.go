package fetch

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ReplaceWait Replace 等待被取消的请求退出的最长时间
const ReplaceWait = 50 * time.Millisecond

var (
	// ErrClosed Dispatcher 已关闭
	ErrClosed = errors.New("dispatcher closed")
	// ErrRateLimited 请求过于频繁
	ErrRateLimited = errors.New("too many requests, try again shortly")
	// ErrBusy 进行中的请求已达上限
	ErrBusy = errors.New("too many requests in flight")
)

// DispatcherConfig 调度器配置
type DispatcherConfig struct {
	// RequestsPerSecond 每秒最多发起的请求数
	RequestsPerSecond float64
	// Burst 突发请求数
	Burst int
	// MaxInFlight 同时进行的请求上限
	MaxInFlight int
}

// DefaultDispatcherConfig 默认配置
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		RequestsPerSecond: 2,
		Burst:             1,
		MaxInFlight:       4,
	}
}

// Result 抓取结果
type Result struct {
	URL  string
	Body string
	Err  error
}

// Task 一次进行中的抓取
// 结果只写入一次，写入后 Done 通道关闭
type Task struct {
	url    string
	cancel context.CancelFunc
	done   chan struct{}
	result Result
}

// Cancel 取消该次抓取
// 被取消的任务仍会写入结果（通常是 context.Canceled），可重复调用
func (t *Task) Cancel() {
	if t != nil && t.cancel != nil {
		t.cancel()
	}
}

// URL 返回请求的 URL
func (t *Task) URL() string {
	return t.url
}

// Done 返回抓取完成时关闭的通道
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Poll 非阻塞地查询结果
// 第二个返回值为 false 表示请求仍在进行中
func (t *Task) Poll() (Result, bool) {
	select {
	case <-t.done:
		return t.result, true
	default:
		return Result{}, false
	}
}

// Dispatcher 异步抓取调度器
// 每个请求在独立的 goroutine 中执行，Close 会取消所有进行中的请求并等待其退出
// 任务的 Done 通道关闭时其并发名额已归还
type Dispatcher struct {
	fetcher Fetcher
	limiter *rate.Limiter
	slots   *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	mu     sync.Mutex
	closed bool
}

// NewDispatcher 创建调度器
func NewDispatcher(fetcher Fetcher, cfg DispatcherConfig) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)

	var slots *semaphore.Weighted
	if cfg.MaxInFlight > 0 {
		slots = semaphore.NewWeighted(int64(cfg.MaxInFlight))
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Dispatcher{
		fetcher: fetcher,
		limiter: rate.NewLimiter(limit, burst),
		slots:   slots,
		ctx:     ctx,
		cancel:  cancel,
		group:   group,
	}
}

// Dispatch 发起一次异步抓取，立即返回
//
// 返回：
//   - *Task: 可轮询的任务
//   - error: ErrClosed / ErrRateLimited / ErrBusy
func (d *Dispatcher) Dispatch(url string) (*Task, error) {
	return d.Replace(nil, url)
}

// Replace 取消 old 并发起新的抓取
// old 被取消后最多等待 ReplaceWait 让其归还并发名额；
// 被限流或调度器已关闭时 old 保持不变。old 可以为 nil
func (d *Dispatcher) Replace(old *Task, url string) (*Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrClosed
	}
	if !d.limiter.Allow() {
		return nil, ErrRateLimited
	}

	if old != nil {
		old.Cancel()
		select {
		case <-old.Done():
		case <-time.After(ReplaceWait):
			log.Printf("[Fetch] replaced %s still running", old.URL())
		}
		log.Printf("[Fetch] replaced %s", old.URL())
	}

	if d.slots != nil && !d.slots.TryAcquire(1) {
		return nil, ErrBusy
	}

	taskCtx, cancel := context.WithCancel(d.ctx)
	task := &Task{url: url, cancel: cancel, done: make(chan struct{})}
	d.group.Go(func() error {
		defer cancel()
		body, err := d.fetcher.Fetch(taskCtx, url)
		task.result = Result{URL: url, Body: body, Err: err}
		d.release()
		close(task.done)
		if err != nil {
			log.Printf("[Fetch] %s failed: %v", url, err)
		}
		// 单个请求失败不影响其他请求
		return nil
	})

	log.Printf("[Fetch] dispatched %s", url)
	return task, nil
}

func (d *Dispatcher) release() {
	if d.slots != nil {
		d.slots.Release(1)
	}
}

// Close 取消所有进行中的请求并等待 goroutine 退出
// 可重复调用
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	return d.group.Wait()
}
