package schedule_test

import (
	"context"
	"testing"
	"time"

	"go-portfolio/internal/schedule"
)

func TestValidate(t *testing.T) {
	for _, s := range []string{"@every 1h", "@hourly", "*/5 * * * *", "0 3 * * 1"} {
		if err := schedule.Validate(s); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
	}
	for _, s := range []string{"", "every hour", "* * *", "61 * * * *"} {
		if err := schedule.Validate(s); err == nil {
			t.Fatalf("%q should be rejected", s)
		}
	}
}

func TestScheduler_RunsTask(t *testing.T) {
	ran := make(chan struct{}, 1)
	s, err := schedule.New("@every 1s", func(context.Context) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	s.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.Stop(ctx)
	}()
	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatalf("task did not run")
	}
}

func TestNew_BadSpec(t *testing.T) {
	if _, err := schedule.New("nope", func(context.Context) {}); err == nil {
		t.Fatalf("expect error")
	}
}
