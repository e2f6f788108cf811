// 包 fetch 封装 HTTP 客户端（代理/超时/可选重试），用于访问 JSON 接口与订阅。
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"
)

// DefaultUserAgent 可被 Options.UserAgent 或环境变量 PORTFOLIO_UA 覆盖。
const DefaultUserAgent = "go-portfolio/1.0 (+https://github.com/AlexWabita)"

// maxBody 限制单次响应体读取大小。
const maxBody = 8 << 20

// StatusError 表示非 2xx 响应。
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: http status %s", e.URL, e.Status)
}

// Client 为带可选重试的 HTTP 客户端。
type Client struct {
	http  *http.Client
	retry int
	ua    string
}

// Options 为客户端构造参数。Retry=0 表示只请求一次。
type Options struct {
	ProxyHTTP  string
	ProxyHTTPS string
	Timeout    time.Duration
	Retry      int
	UserAgent  string
}

// New 创建客户端，支持 http/https 代理与基础超时配置。
func New(opts Options) (*Client, error) {
	var httpsProxy, httpProxy *url.URL
	var err error
	if opts.ProxyHTTPS != "" {
		if httpsProxy, err = url.Parse(opts.ProxyHTTPS); err != nil {
			return nil, fmt.Errorf("parse https proxy: %w", err)
		}
	}
	if opts.ProxyHTTP != "" {
		if httpProxy, err = url.Parse(opts.ProxyHTTP); err != nil {
			return nil, fmt.Errorf("parse http proxy: %w", err)
		}
	}
	transport := &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			if req.URL.Scheme == "https" && httpsProxy != nil {
				return httpsProxy, nil
			}
			if req.URL.Scheme == "http" && httpProxy != nil {
				return httpProxy, nil
			}
			return http.ProxyFromEnvironment(req)
		},
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.Retry < 0 {
		opts.Retry = 0
	}
	ua := opts.UserAgent
	if v := os.Getenv("PORTFOLIO_UA"); v != "" {
		ua = v
	}
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &Client{
		http:  &http.Client{Transport: transport, Timeout: opts.Timeout},
		retry: opts.Retry,
		ua:    ua,
	}, nil
}

// Get 发起 GET 请求，仅在 2xx 时返回响应；其余状态码返回 *StatusError。
// 配置了 Retry 时对网络错误、5xx 与 429 按线性回退重试。
func (c *Client) Get(ctx context.Context, rawURL string, header ...http.Header) (*http.Response, error) {
	var lastErr error
	attempts := c.retry + 1
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(i) * 300 * time.Millisecond):
			}
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("new request: %w", err)
		}
		req.Header.Set("User-Agent", c.ua)
		for _, h := range header {
			for k, vs := range h {
				for _, v := range vs {
					req.Header.Add(k, v)
				}
			}
		}
		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}
		lastErr = &StatusError{URL: rawURL, Code: resp.StatusCode, Status: resp.Status}
		resp.Body.Close()
		if !retryable(resp.StatusCode) {
			break
		}
	}
	return nil, lastErr
}

// retryable 仅 5xx 与 429 可重试。
func retryable(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests
}

// GetJSON 请求并将 JSON 响应解码到 v。
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	resp, err := c.Get(ctx, rawURL, http.Header{"Accept": {"application/vnd.github+json, application/json"}})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}
