package cron

import (
	"context"
	"fmt"
	"time"

	"lexify/config"
	"lexify/services/tasks"
	"lexify/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// LedgerMaintainer is the part of the ledger service the worker drives.
type LedgerMaintainer interface {
	InvalidateFeed(ctx context.Context) error
	Reconcile(ctx context.Context) (int, error)
}

// RedisOpt returns the asynq connection for the queue database.
func RedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}

// NewMux routes ledger tasks to their handlers.
func NewMux(ledger LedgerMaintainer) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAdvicePosted, handleAdvicePosted(ledger))
	mux.HandleFunc(tasks.TypeLedgerReconcile, handleReconcile(ledger))
	return mux
}

// InitLedgerWorker starts the task server and the reconcile scheduler in the
// background. The returned func stops both.
func InitLedgerWorker(cfg *config.Config, ledger LedgerMaintainer) (func(), error) {
	logger := utils.GetLogger()
	redisOpts := RedisOpt(cfg)

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger:   logger.Sugar(),
			LogLevel: asynq.WarnLevel,
		},
	)

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Logger:   logger.Sugar(),
		LogLevel: asynq.WarnLevel,
	})
	entryID, err := scheduler.Register(cfg.ReconcileCron, tasks.NewReconcileTask())
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_CRON %q: %w", cfg.ReconcileCron, err)
	}
	logger.Info("[LedgerWorker] Reconcile scheduled", zap.String("cron", cfg.ReconcileCron), zap.String("entryID", entryID))

	mux := NewMux(ledger)

	// Start async worker with retry logic
	go func() {
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Start(mux); err != nil {
				logger.Error("[LedgerWorker] Failed to start worker",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Error("[LedgerWorker] Max retry attempts reached; background tasks disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
				continue
			}
			logger.Info("[LedgerWorker] Worker started")
			return
		}
	}()

	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}, nil
}

func handleAdvicePosted(ledger LedgerMaintainer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseAdvicePosted(task)
		if err != nil {
			utils.GetLogger().Error("[AdvicePosted] Invalid payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := ledger.InvalidateFeed(ctx); err != nil {
			utils.GetLogger().Error("[AdvicePosted] Feed invalidation failed",
				zap.String("questionID", p.QuestionID), zap.Error(err))
			return err
		}
		return nil
	}
}

func handleReconcile(ledger LedgerMaintainer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		linked, err := ledger.Reconcile(ctx)
		if err != nil {
			utils.GetLogger().Error("[Reconcile] Ledger reconcile failed", zap.Error(err))
			return err
		}
		if linked > 0 {
			utils.GetLogger().Info("[Reconcile] Linked orphaned advice", zap.Int("questions", linked))
		}
		return nil
	}
}
