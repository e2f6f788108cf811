package github

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-portfolio/internal/logx"
	"go-portfolio/internal/model"
)

// statsPerPage 为统计时拉取的仓库数（单页，超出部分忽略）。
const statsPerPage = 100

var (
	allowedSorts = map[string]bool{"created": true, "updated": true, "pushed": true, "full_name": true}
	allowedTypes = map[string]bool{"all": true, "owner": true, "member": true}
)

// ReposOptions 为仓库列表参数；零值字段使用默认值 {updated, 6, owner}。
type ReposOptions struct {
	Sort    string
	PerPage int
	Type    string
}

// Validate 检查参数是否合法（零值字段按默认值处理）。
func (o ReposOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

func (o ReposOptions) withDefaults() (ReposOptions, error) {
	if o.Sort == "" {
		o.Sort = "updated"
	}
	if o.PerPage == 0 {
		o.PerPage = 6
	}
	if o.Type == "" {
		o.Type = "owner"
	}
	if !allowedSorts[o.Sort] {
		return o, fmt.Errorf("invalid sort %q", o.Sort)
	}
	if !allowedTypes[o.Type] {
		return o, fmt.Errorf("invalid type %q", o.Type)
	}
	if o.PerPage < 1 || o.PerPage > 100 {
		return o, fmt.Errorf("per_page %d out of range 1..100", o.PerPage)
	}
	return o, nil
}

// Profile 获取用户资料。
func (c *Client) Profile(ctx context.Context) (*model.Profile, error) {
	var u apiUser
	if err := c.fetch.GetJSON(ctx, c.userURL(), &u); err != nil {
		return nil, fmt.Errorf("fetch profile %s: %w", c.user, err)
	}
	return u.toModel(), nil
}

// Repos 获取单页仓库列表；参数非法时不发请求直接返回错误。
func (c *Client) Repos(ctx context.Context, opts ReposOptions) ([]model.Repository, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("repos options: %w", err)
	}
	var list []apiRepo
	if err := c.fetch.GetJSON(ctx, c.reposURL(o), &list); err != nil {
		return nil, fmt.Errorf("fetch repos %s: %w", c.user, err)
	}
	out := make([]model.Repository, 0, len(list))
	for _, r := range list {
		out = append(out, r.toModel())
	}
	return out, nil
}

// Repo 获取单个仓库。
func (c *Client) Repo(ctx context.Context, name string) (model.Repository, error) {
	var r apiRepo
	if err := c.fetch.GetJSON(ctx, c.repoURL(name), &r); err != nil {
		return model.Repository{}, fmt.Errorf("fetch repo %s/%s: %w", c.user, name, err)
	}
	return r.toModel(), nil
}

// PinnedRepos 并发抓取置顶名单中的每个仓库并按名单顺序收集。
// 单个失败不影响其他；返回成功的子集与所有失败合并后的错误（全部成功时为 nil）。
func (c *Client) PinnedRepos(ctx context.Context) ([]model.Repository, error) {
	type slot struct {
		repo model.Repository
		err  error
	}
	slots := make([]slot, len(c.pinned))
	limit := c.parallel
	if limit <= 0 || limit > len(c.pinned) {
		limit = len(c.pinned)
	}
	sem := make(chan struct{}, max(1, limit))
	var wg sync.WaitGroup
	for i, name := range c.pinned {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, name string) {
			defer wg.Done()
			defer func() { <-sem }()
			slots[i].repo, slots[i].err = c.Repo(ctx, name)
		}(i, name)
	}
	wg.Wait()

	out := make([]model.Repository, 0, len(slots))
	var errs []error
	for _, s := range slots {
		if s.err != nil {
			errs = append(errs, s.err)
			continue
		}
		out = append(out, s.repo)
	}
	return out, errors.Join(errs...)
}

// Languages 获取仓库的语言字节数分布。
func (c *Client) Languages(ctx context.Context, name string) (map[string]int, error) {
	langs := map[string]int{}
	if err := c.fetch.GetJSON(ctx, c.languagesURL(name), &langs); err != nil {
		return nil, fmt.Errorf("fetch languages %s/%s: %w", c.user, name, err)
	}
	if langs == nil {
		// 响应体为 null
		langs = map[string]int{}
	}
	return langs, nil
}

// Stats 并发获取资料与仓库列表（per_page=100）并计算统计。
// 只有资料失败才返回错误；仓库列表失败时按空列表计算。
func (c *Client) Stats(ctx context.Context) (*model.AggregateStats, error) {
	var (
		wg       sync.WaitGroup
		profile  *model.Profile
		repos    []model.Repository
		pErr     error
		reposErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, pErr = c.Profile(ctx)
	}()
	go func() {
		defer wg.Done()
		repos, reposErr = c.Repos(ctx, ReposOptions{PerPage: statsPerPage})
	}()
	wg.Wait()

	if pErr != nil {
		return nil, fmt.Errorf("stats: %w", pErr)
	}
	if reposErr != nil {
		logx.Warnf("统计时获取仓库列表失败，按空列表计算：%v", reposErr)
		repos = nil
	}
	return ComputeStats(profile, repos), nil
}
