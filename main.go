// 命令行入口：
// - 解析 flags 与 settings.yaml
// - 初始化日志、HTTP 客户端、文章存储、偏好存储
// - 生成内容快照 data.json；-watch 时按 SCHEDULE 周期重建；-theme 修改主题偏好
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio/internal/aggregate"
	"go-portfolio/internal/blog"
	"go-portfolio/internal/config"
	"go-portfolio/internal/fetch"
	"go-portfolio/internal/github"
	"go-portfolio/internal/logx"
	"go-portfolio/internal/prefs"
	"go-portfolio/internal/schedule"
)

func main() {
	var (
		configPath = flag.String("config", "settings.yaml", "path to settings.yaml (empty for defaults)")
		exportPath = flag.String("export", "", "override EXPORT path")
		watch      = flag.Bool("watch", false, "rebuild the snapshot on SCHEDULE until interrupted")
		theme      = flag.String("theme", "", "set theme preference: light|dark|toggle, then exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *exportPath != "" {
		cfg.Export = *exportPath
	}
	logx.Init(logx.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Locale: cfg.LogLocale, Color: cfg.LogColor})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ps, err := prefs.OpenSQLite(cfg.Prefs.DSN)
	if err != nil {
		log.Fatalf("open prefs: %v", err)
	}
	defer ps.Close()

	if *theme != "" {
		if err := applyTheme(ctx, ps, *theme); err != nil {
			logx.Errorf("设置主题失败：%v", err)
			os.Exit(1)
		}
		return
	}

	store, err := blog.Open(cfg.Articles)
	if err != nil {
		log.Fatalf("open articles: %v", err)
	}
	cl, err := fetch.New(fetch.Options{
		ProxyHTTP:  cfg.Proxy.HTTP,
		ProxyHTTPS: cfg.Proxy.HTTPS,
		Timeout:    cfg.HTTP.Timeout,
		Retry:      cfg.HTTP.Retry,
		UserAgent:  cfg.HTTP.UserAgent,
	})
	if err != nil {
		log.Fatalf("http client: %v", err)
	}
	gh := github.New(cl, github.Options{
		BaseURL:     cfg.GitHub.APIBase,
		Username:    cfg.GitHub.Username,
		Pinned:      cfg.GitHub.Pinned,
		Concurrency: cfg.GitHub.Concurrency,
	})
	run := aggregate.New(cfg, store, gh, cl, ps)

	logx.Infof("开始生成快照：用户=%s", gh.Username())
	if _, err := run.Export(ctx); err != nil {
		logx.Errorf("生成快照失败：%v", err)
		if !*watch {
			os.Exit(1)
		}
	}
	if !*watch {
		return
	}

	sch, err := schedule.New(cfg.Schedule, func(context.Context) {
		if _, err := run.Export(ctx); err != nil {
			logx.Errorf("定时生成快照失败：%v", err)
		}
	})
	if err != nil {
		log.Fatalf("schedule: %v", err)
	}
	sch.Start()
	<-ctx.Done()
	logx.Infof("收到退出信号，停止定时任务")
	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sch.Stop(stopCtx)
}

func applyTheme(ctx context.Context, ps *prefs.SQLite, v string) error {
	if v == "toggle" {
		next, err := ps.ToggleTheme(ctx)
		if err != nil {
			return err
		}
		logx.Infof("主题已切换为 %s", next)
		return nil
	}
	if err := ps.SetTheme(ctx, v); err != nil {
		return err
	}
	logx.Infof("主题已设置为 %s", v)
	return nil
}
