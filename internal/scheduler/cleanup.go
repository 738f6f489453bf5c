package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"buildsmart_backend/internal/config"
	"buildsmart_backend/platform/logger"
)

const defaultCleanupInterval = time.Hour

// CleanupScheduler periodically enqueues the conversation cleanup task so
// abandoned conversations are removed after their retention window.
type CleanupScheduler struct {
	client   *asynq.Client
	queue    string
	log      *logger.Logger
	interval time.Duration
	maxAge   time.Duration
}

func NewCleanupScheduler(cfg *config.Config, log *logger.Logger) (*CleanupScheduler, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(cfg.RedisURL, cfg.RedisTLSInsecure)
	if err != nil {
		return nil, err
	}

	queue := cfg.AsynqQueue
	if queue == "" {
		queue = "default"
	}

	return &CleanupScheduler{
		client:   asynq.NewClient(opt),
		queue:    queue,
		log:      log,
		interval: defaultCleanupInterval,
		maxAge:   cfg.ConversationMaxAge,
	}, nil
}

func (s *CleanupScheduler) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *CleanupScheduler) Run(ctx context.Context) {
	if s == nil || s.client == nil {
		return
	}

	s.enqueue(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.enqueue(ctx)
		}
	}
}

func (s *CleanupScheduler) enqueue(ctx context.Context) {
	task, err := NewConversationCleanupTask(ConversationCleanupPayload{
		MaxAgeHours: int(s.maxAge / time.Hour),
	})
	if err != nil {
		s.log.Warn("cleanup task build failed", "error", err)
		return
	}

	if _, err := s.client.EnqueueContext(ctx, task, asynq.Queue(s.queue)); err != nil {
		s.log.Warn("cleanup task enqueue failed", "error", err)
	}
}
