// 包 github 封装代码托管平台的只读 JSON 接口：
// - 严格接口（Profile/Repos/Repo/PinnedRepos/Languages/Stats）返回 error
// - 宽容接口（Fetch*）吞掉错误并返回 nil/空值，供渲染层直接分支
// 客户端在两次调用之间不保存任何状态，也不做缓存。
package github

import (
	"fmt"
	"net/url"
	"strings"

	"go-portfolio/internal/fetch"
)

const (
	DefaultBaseURL  = "https://api.github.com"
	DefaultUsername = "AlexWabita"
)

// DefaultPinned 为默认置顶仓库名单（平台没有置顶仓库接口，只能手工维护）。
var DefaultPinned = []string{
	"python-mastery-2026",
	"equalizer-apo-profiles",
}

// Options 为客户端构造参数；置顶名单在构造时固定，调用时不可更改。
type Options struct {
	BaseURL     string
	Username    string
	Pinned      []string
	Concurrency int // 置顶仓库并发抓取上限，<=0 表示不限制
}

// Client 为无状态的接口客户端。
type Client struct {
	fetch    *fetch.Client
	base     string
	user     string
	pinned   []string
	parallel int
}

// New 创建客户端并填充默认值。
func New(cl *fetch.Client, opts Options) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	user := strings.TrimSpace(opts.Username)
	if user == "" {
		user = DefaultUsername
	}
	pinned := opts.Pinned
	if pinned == nil {
		pinned = DefaultPinned
	}
	return &Client{
		fetch:    cl,
		base:     base,
		user:     user,
		pinned:   append([]string(nil), pinned...),
		parallel: opts.Concurrency,
	}
}

// Pinned 返回置顶名单副本。
func (c *Client) Pinned() []string { return append([]string(nil), c.pinned...) }

// Username 返回所查询的用户名。
func (c *Client) Username() string { return c.user }

func (c *Client) userURL() string {
	return fmt.Sprintf("%s/users/%s", c.base, url.PathEscape(c.user))
}

func (c *Client) reposURL(o ReposOptions) string {
	q := url.Values{}
	q.Set("sort", o.Sort)
	q.Set("per_page", fmt.Sprint(o.PerPage))
	q.Set("type", o.Type)
	return c.userURL() + "/repos?" + q.Encode()
}

func (c *Client) repoURL(name string) string {
	return fmt.Sprintf("%s/repos/%s/%s", c.base, url.PathEscape(c.user), url.PathEscape(name))
}

func (c *Client) languagesURL(name string) string {
	return c.repoURL(name) + "/languages"
}
