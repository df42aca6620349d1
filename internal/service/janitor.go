package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor periodically evicts quiz sessions that have been idle
// longer than the configured TTL.
type SessionJanitor struct {
	storage  QuizStorage
	ttl      time.Duration
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

func NewSessionJanitor(storage QuizStorage, ttl time.Duration, schedule string, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		storage:  storage,
		ttl:      ttl,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the cleanup on schedule until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) error {
	j.logger.Info("session janitor started", zap.String("schedule", j.schedule))

	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(j.schedule, func() { j.Sweep() }); err != nil {
		return err
	}

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")

	return nil
}

// Sweep evicts idle sessions once and returns how many were removed.
func (j *SessionJanitor) Sweep() int {
	evicted := j.storage.EvictIdle(j.now().Add(-j.ttl))
	if evicted > 0 {
		j.logger.Info("idle quiz sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("remaining", j.storage.Len()),
		)
	}
	return evicted
}
