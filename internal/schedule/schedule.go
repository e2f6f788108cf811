// 包 schedule 基于 cron 表达式周期执行任务（-watch 模式重建快照）。
package schedule

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"go-portfolio/internal/logx"
)

// Scheduler 包装 cron.Cron；同一任务不会重叠执行。
type Scheduler struct {
	cron *cron.Cron
	spec string
	mu   sync.Mutex
}

// Validate 检查表达式（标准 5 段或 @every/@hourly 等描述符）。
func Validate(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// New 创建调度器并注册任务。
func New(spec string, task func(context.Context)) (*Scheduler, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}
	s := &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		spec: spec,
	}
	if _, err := s.cron.AddFunc(spec, func() { task(context.Background()) }); err != nil {
		return nil, fmt.Errorf("add cron entry: %w", err)
	}
	return s, nil
}

// Start 启动调度。
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cron.Start()
	logx.Infof("已启动定时任务：%s", s.spec)
}

// Stop 停止调度并等待正在执行的任务结束或 ctx 到期。
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	done := s.cron.Stop()
	s.mu.Unlock()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
