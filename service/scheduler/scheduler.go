package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"youtube-trigger-sidecar/models"
)

// ErrUnknownTrigger is returned by RunOnce when no registered trigger
// matches the requested name.
var ErrUnknownTrigger = errors.New("unknown trigger")

// Trigger is one polling trigger evaluated on its own fixed interval.
// scheduledRun carries the instant the scheduler meant this cycle to fire so
// the trigger can derive its watermark; nil means unknown (manually
// requested cycle).
type Trigger interface {
	Name() string
	Interval() time.Duration
	Evaluate(ctx context.Context, scheduledRun *time.Time) (*models.TriggerEvent, error)
}

// Scheduler runs each registered trigger on its own ticker. Cycles of one
// trigger never overlap: the per-trigger loop is a single goroutine that
// evaluates synchronously.
type Scheduler struct {
	triggers     []Trigger
	logger       *slog.Logger
	cycleTimeout time.Duration
	stopChan     chan struct{}
	wg           sync.WaitGroup
	mu           sync.Mutex
	isRunning    bool
}

// Config holds scheduler configuration
type Config struct {
	CycleTimeout time.Duration
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		CycleTimeout: 5 * time.Minute,
	}
}

// NewScheduler creates a new trigger scheduler
func NewScheduler(triggers []Trigger, cfg Config, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CycleTimeout <= 0 {
		cfg.CycleTimeout = DefaultConfig().CycleTimeout
	}

	return &Scheduler{
		triggers:     triggers,
		logger:       logger,
		cycleTimeout: cfg.CycleTimeout,
		stopChan:     make(chan struct{}),
	}
}

// Start starts one polling loop per registered trigger
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		s.logger.Warn("Scheduler is already running")
		return
	}
	s.isRunning = true

	for _, trigger := range s.triggers {
		s.logger.Info("Starting polling trigger",
			"trigger", trigger.Name(),
			"interval", trigger.Interval())

		s.wg.Add(1)
		go s.runLoop(trigger)
	}
}

// Stop stops all polling loops and waits for in-flight cycles to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.mu.Unlock()

	s.logger.Info("Stopping trigger scheduler")
	close(s.stopChan)
	s.wg.Wait()
}

func (s *Scheduler) runLoop(trigger Trigger) {
	defer s.wg.Done()

	ticker := time.NewTicker(trigger.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case fireTime := <-ticker.C:
			// Passing the tick instant puts the trigger's watermark one
			// interval before this fire, so the window covers the span
			// since the previous fire.
			s.runCycle(trigger, &fireTime)
		}
	}
}

func (s *Scheduler) runCycle(trigger Trigger, scheduledRun *time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cycleTimeout)
	defer cancel()

	started := time.Now()
	event, err := trigger.Evaluate(ctx, scheduledRun)
	if err != nil {
		// Fatal for this cycle only; the next tick starts clean
		s.logger.Error("Poll cycle failed",
			"trigger", trigger.Name(),
			"duration", time.Since(started),
			"error", err)
		return
	}

	if event == nil {
		s.logger.Debug("Poll cycle found nothing new",
			"trigger", trigger.Name(),
			"duration", time.Since(started))
		return
	}

	s.logger.Info("Poll cycle emitted event",
		"trigger", trigger.Name(),
		"event_id", event.ID,
		"new_item_count", event.NewItemCount,
		"duration", time.Since(started))
}

// RunOnce evaluates one named trigger immediately, outside its schedule.
// A manual cycle has no scheduled fire instant, so the trigger falls back to
// its now-minus-interval watermark.
func (s *Scheduler) RunOnce(ctx context.Context, name string) (*models.TriggerEvent, error) {
	for _, trigger := range s.triggers {
		if trigger.Name() == name {
			return trigger.Evaluate(ctx, nil)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTrigger, name)
}

// TriggerNames lists the registered triggers
func (s *Scheduler) TriggerNames() []string {
	names := make([]string, 0, len(s.triggers))
	for _, trigger := range s.triggers {
		names = append(names, trigger.Name())
	}
	return names
}
