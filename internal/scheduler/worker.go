package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"buildsmart_backend/internal/config"
	convrepo "buildsmart_backend/internal/conversations/repository"
	"buildsmart_backend/internal/email"
	"buildsmart_backend/internal/engine/estimate"
	estrepo "buildsmart_backend/internal/estimates/repository"
	"buildsmart_backend/platform/logger"
)

type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	estimates estrepo.Repository
	convs     convrepo.Repository
	sender    email.Sender
	log       *logger.Logger
	baseURL   string
}

func NewWorker(cfg *config.Config, pool *pgxpool.Pool, sender email.Sender, log *logger.Logger) (*Worker, error) {
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

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:    server,
		mux:       mux,
		estimates: estrepo.New(pool),
		convs:     convrepo.New(pool),
		sender:    sender,
		log:       log,
		baseURL:   strings.TrimRight(cfg.AppBaseURL, "/"),
	}

	mux.HandleFunc(TaskEstimateEmail, w.handleEstimateEmail)
	mux.HandleFunc(TaskConversationCleanup, w.handleConversationCleanup)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleEstimateEmail(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseEstimateEmailPayload(task)
	if err != nil {
		return err
	}
	if payload.Email == "" {
		return nil
	}

	estimateID, err := uuid.Parse(payload.EstimateID)
	if err != nil {
		return err
	}

	est, err := w.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return err
	}

	shareURL := fmt.Sprintf("%s/estimates/%s", w.baseURL, est.ShareToken)

	var attachments []email.Attachment
	if qr, qrErr := email.QRAttachment(shareURL); qrErr == nil {
		attachments = append(attachments, qr)
	} else {
		w.log.Warn("share QR generation failed", "estimate_id", est.ID.String(), "error", qrErr)
	}

	if err := w.sender.SendEstimateEmail(ctx, payload.Email, email.EstimateEmail{
		Summary:        est.Summary,
		ShareURL:       shareURL,
		TotalFormatted: "$" + estimate.FormatAmount(est.Total),
	}, attachments...); err != nil {
		return err
	}

	w.log.Info("estimate email sent", "estimate_id", est.ID.String())
	return nil
}

func (w *Worker) handleConversationCleanup(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseConversationCleanupPayload(task)
	if err != nil {
		return err
	}
	if payload.MaxAgeHours <= 0 {
		return nil
	}

	cutoff := time.Now().Add(-time.Duration(payload.MaxAgeHours) * time.Hour)
	deleted, err := w.convs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		w.log.Info("stale conversations deleted", "deleted", deleted)
	}
	return nil
}
