package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Theme is the day or night look of the quiz screens.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// ThemeForHour returns ThemeDay for dayStart <= hour < dayEnd and ThemeNight otherwise.
func ThemeForHour(hour, dayStart, dayEnd int) Theme {
	if hour >= dayStart && hour < dayEnd {
		return ThemeDay
	}
	return ThemeNight
}

// ThemeConfig configures a ThemeWatcher.
type ThemeConfig struct {
	DayStartHour int
	DayEndHour   int
	RefreshSpec  string // cron spec, e.g. "@every 5m"
}

// ThemeWatcher tracks the time-of-day theme and notifies listeners when it flips.
type ThemeWatcher struct {
	cfg    ThemeConfig
	now    func() time.Time
	logger *zap.Logger

	mu        sync.RWMutex
	current   Theme
	listeners []func(Theme)
}

// NewThemeWatcher creates a watcher. A nil now uses time.Now.
func NewThemeWatcher(cfg ThemeConfig, now func() time.Time, logger *zap.Logger) *ThemeWatcher {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ThemeWatcher{
		cfg:     cfg,
		now:     now,
		logger:  logger,
		current: ThemeForHour(now().Hour(), cfg.DayStartHour, cfg.DayEndHour),
	}
}

// Current returns the theme computed at the last check.
func (w *ThemeWatcher) Current() Theme {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers fn to be called with the new theme after each flip.
func (w *ThemeWatcher) OnChange(fn func(Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, fn)
}

// Check recomputes the theme and notifies listeners if it changed.
func (w *ThemeWatcher) Check() {
	next := ThemeForHour(w.now().Hour(), w.cfg.DayStartHour, w.cfg.DayEndHour)

	w.mu.Lock()
	if next == w.current {
		w.mu.Unlock()
		return
	}
	w.current = next
	listeners := make([]func(Theme), len(w.listeners))
	copy(listeners, w.listeners)
	w.mu.Unlock()

	w.logger.Info("theme changed", zap.String("theme", string(next)))

	for _, fn := range listeners {
		fn(next)
	}
}

// Start runs the periodic check until ctx is cancelled.
func (w *ThemeWatcher) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.Local))

	if _, err := c.AddFunc(w.cfg.RefreshSpec, w.Check); err != nil {
		return fmt.Errorf("add theme cron job: %w", err)
	}

	c.Start()
	w.logger.Info("theme watcher started",
		zap.String("spec", w.cfg.RefreshSpec),
		zap.String("theme", string(w.Current())),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	w.logger.Info("theme watcher stopped")

	return nil
}
