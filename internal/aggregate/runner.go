// 包 aggregate 负责主流程编排：
// - 读取文章存储的各类列表
// - 并发获取资料/仓库/置顶仓库/统计（宽容接口，单项失败不影响整体）
// - 可选读取站主博客订阅
// - 组装快照并导出
package aggregate

import (
	"context"
	"errors"
	"sync"

	"go-portfolio/internal/blog"
	"go-portfolio/internal/config"
	"go-portfolio/internal/export"
	"go-portfolio/internal/feeds"
	"go-portfolio/internal/fetch"
	"go-portfolio/internal/github"
	"go-portfolio/internal/logx"
	"go-portfolio/internal/model"
	"go-portfolio/internal/prefs"
)

// ThemeSource 提供当前主题。
type ThemeSource interface {
	Theme(ctx context.Context) (string, error)
}

// Runner 聚合执行器，持有配置/文章存储/接口客户端/偏好存储。
type Runner struct {
	cfg   *config.Config
	store *blog.Store
	gh    *github.Client
	fetch *fetch.Client
	prefs ThemeSource
}

// New 创建 Runner。prefs 可为 nil（此时使用默认主题）。
func New(cfg *config.Config, st *blog.Store, gh *github.Client, cl *fetch.Client, ps ThemeSource) *Runner {
	return &Runner{cfg: cfg, store: st, gh: gh, fetch: cl, prefs: ps}
}

// Run 执行一轮聚合并返回快照；远端失败只体现为快照中的空值。
func (r *Runner) Run(ctx context.Context) (model.Export, error) {
	if r.store == nil || r.gh == nil {
		return model.Export{}, errors.New("aggregate: store and github client required")
	}
	e := model.Export{
		Theme:      prefs.DefaultTheme,
		Articles:   r.store.All(),
		Featured:   r.store.Featured(),
		Popular:    r.store.Popular(blog.DefaultLimit),
		Recent:     r.store.Recent(blog.DefaultLimit),
		Categories: r.store.Categories(),
		Posts:      []model.FeedPost{},
	}
	if r.prefs != nil {
		if t, err := r.prefs.Theme(ctx); err != nil {
			logx.Warnf("读取主题失败，使用默认值：%v", err)
		} else {
			e.Theme = t
		}
	}
	logx.Infof("文章=%d，分类=%d", len(e.Articles), len(e.Categories)-1)

	opts := github.ReposOptions{
		Sort:    r.cfg.GitHub.Repos.Sort,
		PerPage: r.cfg.GitHub.Repos.PerPage,
		Type:    r.cfg.GitHub.Repos.Type,
	}
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		e.Profile = r.gh.FetchProfile(ctx)
	}()
	go func() {
		defer wg.Done()
		e.Repos = r.gh.FetchRepos(ctx, opts)
	}()
	go func() {
		defer wg.Done()
		e.Pinned = r.gh.FetchPinnedRepos(ctx)
	}()
	go func() {
		defer wg.Done()
		e.Stats = r.gh.FetchStats(ctx)
	}()
	wg.Wait()
	logx.Infof("资料=%v，仓库=%d，置顶=%d/%d，统计=%v",
		e.Profile != nil, len(e.Repos), len(e.Pinned), len(r.gh.Pinned()), e.Stats != nil)

	if r.cfg.Feed.Enabled && e.Profile != nil && e.Profile.Blog != nil && *e.Profile.Blog != "" {
		e.Posts = r.blogPosts(ctx, *e.Profile.Blog)
	}
	return e, ctx.Err()
}

// Export 执行一轮聚合并写入 cfg.Export。
func (r *Runner) Export(ctx context.Context) (model.Export, error) {
	e, err := r.Run(ctx)
	if err != nil {
		return e, err
	}
	export.Stamp(&e)
	if err := export.ToJSON(r.cfg.Export, e); err != nil {
		return e, err
	}
	logx.Infof("已导出 %s（build=%s）", r.cfg.Export, e.BuildID)
	return e, nil
}

func (r *Runner) blogPosts(ctx context.Context, site string) []model.FeedPost {
	feedURL, err := feeds.DiscoverFeed(ctx, r.fetch, site)
	if err != nil {
		logx.Warnf("发现博客订阅失败：%s 错误=%v", site, err)
		return []model.FeedPost{}
	}
	posts, err := feeds.ParseFeed(ctx, r.fetch, feedURL, r.cfg.Feed.MaxPosts)
	if err != nil {
		logx.Warnf("解析博客订阅失败：%s 错误=%v", feedURL, err)
		return []model.FeedPost{}
	}
	logx.Infof("博客订阅解析完成：%d", len(posts))
	return posts
}
