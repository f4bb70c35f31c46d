// Package fetch 提供页面抓取功能
//
// 抓取在后台 goroutine 中执行，帧循环通过 Task.Poll 非阻塞地获取结果，
// 请求进行中界面仍然可以继续动画和接收输入。
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// DefaultMaxBodyBytes 默认最多读取的响应体字节数
const DefaultMaxBodyBytes = 1 << 20

var (
	// ErrEmptyURL URL 为空
	ErrEmptyURL = errors.New("empty url")
)

// Fetcher 抓取 URL 并返回响应体
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// StatusError 非 2xx 响应
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// HTTPFetcher 基于 net/http 的 Fetcher 实现
// 超时策略由传入的 http.Client 决定
type HTTPFetcher struct {
	client       *http.Client
	maxBodyBytes int64
}

// NewHTTPFetcher 创建 HTTP 抓取器
// client 为 nil 时使用 http.DefaultClient
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{
		client:       client,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
}

// SetMaxBodyBytes 设置最多读取的响应体字节数（超出部分被截断）
func (f *HTTPFetcher) SetMaxBodyBytes(n int64) {
	f.maxBodyBytes = n
}

// Fetch 发起 GET 请求并返回响应体
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	url, err := NormalizeURL(rawURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading body of %s: %w", url, err)
	}

	log.Printf("[Fetch] GET %s -> %d (%d bytes)", url, resp.StatusCode, len(body))
	return string(body), nil
}

// NormalizeURL 去除首尾空白，缺少协议时补全 https://
func NormalizeURL(rawURL string) (string, error) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return "", ErrEmptyURL
	}
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}
	return url, nil
}
