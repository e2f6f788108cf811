package github

import (
	"context"

	"go-portfolio/internal/logx"
	"go-portfolio/internal/model"
)

// 宽容接口：错误只记录日志，调用方拿到的永远是正常值。
// 注意失败信号不对称：资料为 nil，列表为空切片，映射为空 map。

// FetchProfile 失败时返回 nil。
func (c *Client) FetchProfile(ctx context.Context) *model.Profile {
	p, err := c.Profile(ctx)
	if err != nil {
		logx.Warnf("获取用户资料失败：%v", err)
		return nil
	}
	return p
}

// FetchRepos 失败时返回空切片（非 nil）。
func (c *Client) FetchRepos(ctx context.Context, opts ReposOptions) []model.Repository {
	repos, err := c.Repos(ctx, opts)
	if err != nil {
		logx.Warnf("获取仓库列表失败：%v", err)
		return []model.Repository{}
	}
	return repos
}

// FetchPinnedRepos 返回抓取成功的置顶仓库，失败项被静默丢弃。
func (c *Client) FetchPinnedRepos(ctx context.Context) []model.Repository {
	repos, err := c.PinnedRepos(ctx)
	if err != nil {
		logx.Debugf("部分置顶仓库获取失败：%v", err)
	}
	return repos
}

// FetchRepoLanguages 失败时返回空 map（非 nil）。
func (c *Client) FetchRepoLanguages(ctx context.Context, name string) map[string]int {
	langs, err := c.Languages(ctx, name)
	if err != nil {
		logx.Warnf("获取仓库语言失败：%v", err)
		return map[string]int{}
	}
	return langs
}

// FetchStats 资料获取失败时返回 nil。
func (c *Client) FetchStats(ctx context.Context) *model.AggregateStats {
	st, err := c.Stats(ctx)
	if err != nil {
		logx.Warnf("获取统计失败：%v", err)
		return nil
	}
	return st
}
