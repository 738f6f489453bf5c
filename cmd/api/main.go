package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"buildsmart_backend/internal/adapters"
	"buildsmart_backend/internal/agent"
	"buildsmart_backend/internal/config"
	"buildsmart_backend/internal/conversations"
	"buildsmart_backend/internal/engine"
	"buildsmart_backend/internal/engine/policy"
	"buildsmart_backend/internal/estimates"
	"buildsmart_backend/internal/events"
	apphttp "buildsmart_backend/internal/http"
	"buildsmart_backend/internal/http/router"
	"buildsmart_backend/internal/scheduler"
	"buildsmart_backend/internal/storage"
	"buildsmart_backend/migrations"
	"buildsmart_backend/platform/db"
	"buildsmart_backend/platform/logger"
	"buildsmart_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg.DatabaseURL, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	redisClient := newRedisClient(cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// Deterministic estimation engine, optionally with a pricing overlay
	eng, err := newEngine(cfg, log)
	if err != nil {
		log.Error("failed to load pricing policy", "error", err)
		panic("failed to load pricing policy: " + err.Error())
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	conversationsModule := conversations.NewModule(pool, redisClient, cfg.ConversationTTL, eng, eventBus, val, log)
	estimatesModule := estimates.NewModule(pool, eventBus, log, cfg.AppBaseURL)

	// Wire estimate finalization: conversations → estimates (breaks the cycle)
	finalizer := adapters.NewEstimateFinalizerAdapter(estimatesModule.Service())
	conversationsModule.SetFinalizer(finalizer)

	// Archive finalized estimates to object storage when MinIO is configured
	if cfg.MinIOEnabled {
		archive, err := storage.NewMinIOArchive(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL, cfg.MinIOBucketArchives)
		if err != nil {
			log.Error("failed to initialize estimate archive", "error", err)
			panic("failed to initialize estimate archive: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure archive bucket", 5, 2*time.Second, func() error {
			return archive.EnsureBucket(ctx)
		}); err != nil {
			log.Error("failed to ensure archive bucket exists", "error", err, "bucket", cfg.MinIOBucketArchives)
			panic("failed to ensure archive bucket exists: " + err.Error())
		}
		estimatesModule.SetArchiver(archive)
		log.Info("estimate archive initialized", "bucket", cfg.MinIOBucketArchives)
	}

	// Conversational responder rewrites engine replies when the agent is on
	if cfg.AgentEnabled {
		conversationsModule.SetResponder(agent.New(cfg.MoonshotAPIKey, cfg.MoonshotModel, log))
		log.Info("conversational responder enabled", "model", cfg.MoonshotModel)
	}

	// Queue estimate delivery emails through the scheduler worker
	if cfg.RedisURL != "" {
		schedClient, err := scheduler.NewClient(cfg)
		if err != nil {
			log.Error("failed to initialize scheduler client", "error", err)
			panic("failed to initialize scheduler client: " + err.Error())
		}
		defer schedClient.Close()

		eventBus.Subscribe(events.EstimateEmailRequested{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
			requested, ok := event.(events.EstimateEmailRequested)
			if !ok {
				return nil
			}
			return schedClient.EnqueueEstimateEmail(ctx, scheduler.EstimateEmailPayload{
				EstimateID: requested.EstimateID.String(),
				Email:      requested.Email,
				Phone:      requested.Phone,
			})
		}))
	} else {
		log.Warn("REDIS_URL not configured; estimate email delivery disabled")
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			conversationsModule,
			estimatesModule,
		},
	}

	ginEngine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- ginEngine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		eventBus.Wait()
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func newEngine(cfg *config.Config, log *logger.Logger) (*engine.Engine, error) {
	if cfg.PricingPolicyPath == "" {
		return engine.New(), nil
	}

	pol, err := policy.Load(cfg.PricingPolicyPath)
	if err != nil {
		return nil, err
	}
	log.Info("pricing policy overlay loaded", "path", cfg.PricingPolicyPath)
	return engine.New(engine.WithPolicy(pol)), nil
}

func newRedisClient(cfg *config.Config, log *logger.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not configured; conversation state cache disabled")
		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid REDIS_URL; conversation state cache disabled", "error", err)
		return nil
	}
	if opt.TLSConfig != nil && cfg.RedisTLSInsecure {
		opt.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return redis.NewClient(opt)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
