// 包 config 负责加载与校验应用配置（settings.yaml），
// 对外提供结构体 Config 及默认值/合法性校验。
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"go-portfolio/internal/github"
	"go-portfolio/internal/schedule"
)

type Config struct {
	GitHub    GitHub `yaml:"GITHUB"`
	Articles  string `yaml:"ARTICLES"` // 文章 YAML 路径，空则使用内置文章
	Prefs     Prefs  `yaml:"PREFS"`
	Export    string `yaml:"EXPORT"`
	Schedule  string `yaml:"SCHEDULE"` // cron 表达式，-watch 模式使用
	Feed      Feed   `yaml:"FEED"`
	HTTP      HTTP   `yaml:"HTTP"`
	Proxy     Proxy  `yaml:"PROXY"`
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"` // text|json|pretty
	LogLocale string `yaml:"LOG_LOCALE"` // zh-CN|en
	LogColor  string `yaml:"LOG_COLOR"`  // auto|always|never
}

type GitHub struct {
	Username    string   `yaml:"username"`
	APIBase     string   `yaml:"api_base"`
	Pinned      []string `yaml:"pinned"` // 为空时使用内置置顶名单
	Repos       Repos    `yaml:"repos"`
	Concurrency int      `yaml:"concurrency"`
}

// Repos 为首页仓库列表参数。
type Repos struct {
	Sort    string `yaml:"sort"`
	PerPage int    `yaml:"per_page"`
	Type    string `yaml:"type"`
}

type Prefs struct {
	DSN string `yaml:"dsn"` // ./prefs.db
}

// FeedUnlimited 作为 FEED.max_posts 时表示不限制条数；0 表示默认值 5。
const FeedUnlimited = -1

// Feed 控制是否读取站主博客订阅。
type Feed struct {
	Enabled  bool `yaml:"enabled"`
	MaxPosts int  `yaml:"max_posts"`
}

type HTTP struct {
	Timeout   time.Duration `yaml:"timeout"`
	Retry     int           `yaml:"retry"` // 0 表示只请求一次
	UserAgent string        `yaml:"user_agent"`
}

type Proxy struct {
	HTTP  string `yaml:"http"`
	HTTPS string `yaml:"https"`
}

// Load 从文件读取 YAML 并反序列化为 Config，同时进行校验与默认值填充。
// path 为空时返回全部默认值。
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config %s: %w", path, err)
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// Validate 负责合法性检查与默认值设置。
func (c *Config) Validate() error {
	ro := github.ReposOptions{Sort: c.GitHub.Repos.Sort, PerPage: c.GitHub.Repos.PerPage, Type: c.GitHub.Repos.Type}
	if err := ro.Validate(); err != nil {
		return fmt.Errorf("GITHUB.repos: %w", err)
	}
	if c.HTTP.Retry < 0 {
		return errors.New("HTTP.retry must be >= 0")
	}
	if c.Feed.MaxPosts < FeedUnlimited {
		return errors.New("FEED.max_posts must be >= -1")
	}
	if c.GitHub.Repos.Sort == "" {
		c.GitHub.Repos.Sort = "updated"
	}
	if c.GitHub.Repos.PerPage == 0 {
		c.GitHub.Repos.PerPage = 6
	}
	if c.GitHub.Repos.Type == "" {
		c.GitHub.Repos.Type = "owner"
	}
	if c.GitHub.Concurrency <= 0 {
		c.GitHub.Concurrency = 4
	}
	if c.Prefs.DSN == "" {
		c.Prefs.DSN = "./prefs.db"
	}
	if c.Export == "" {
		c.Export = "data.json"
	}
	if c.Schedule == "" {
		c.Schedule = "@every 1h"
	}
	if err := schedule.Validate(c.Schedule); err != nil {
		return fmt.Errorf("SCHEDULE: %w", err)
	}
	if c.Feed.MaxPosts == 0 {
		c.Feed.MaxPosts = 5
	}
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = 20 * time.Second
	}
	if c.LogFormat == "" {
		c.LogFormat = "pretty"
	}
	if c.LogLocale == "" {
		c.LogLocale = "zh-CN"
	}
	if c.LogColor == "" {
		c.LogColor = "auto"
	}
	// 用户名/接口地址/置顶名单留空，由 github.New 填充默认值
	return nil
}
