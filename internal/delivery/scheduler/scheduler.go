// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"

	"sapphire/config"
	"sapphire/internal/delivery"
	"sapphire/internal/domain/lifecycle"
	"sapphire/internal/errors"
	"sapphire/internal/infra/metrics"
	"sapphire/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the cleanup scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Maintenance usecase.MaintenanceUsecase
	Metrics     *metrics.Metrics `optional:"true"`
}

// Scheduler purges expired tokens and OTPs on a cron schedule.
type Scheduler struct {
	cron        *cron.Cron
	schedule    string
	maintenance usecase.MaintenanceUsecase
	metrics     *metrics.Metrics
	logger      *slog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewScheduler builds the scheduler and registers its stop hook.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newScheduler(params.Cfg.Cleanup.Schedule, params.Maintenance, params.Metrics, params.Logger)
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return nil, errors.Wrapf(err, "invalid cleanup schedule %q", s.schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(schedule string, maintenance usecase.MaintenanceUsecase, m *metrics.Metrics, logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:        cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		schedule:    schedule,
		maintenance: maintenance,
		metrics:     m,
		logger:      logger.With(slog.String("component", "cleanup_scheduler")),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Serve starts the cron loop and blocks until the scheduler is stopped.
func (s *Scheduler) Serve(_ context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, s.RunOnce); err != nil {
		return errors.Wrap(err, "failed to schedule cleanup")
	}

	s.cron.Start()
	s.logger.Info("Cleanup scheduler started", slog.String("schedule", s.schedule))

	<-s.ctx.Done()

	return nil
}

// RunOnce performs a single purge.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(s.ctx, lifecycle.DefaultTimeout)
	defer cancel()

	result, err := s.maintenance.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("Cleanup run failed", slog.Any("error", err))

		return
	}

	if s.metrics != nil {
		s.metrics.CleanupRemoved("tokens", result.Tokens)
		s.metrics.CleanupRemoved("otps", result.OTPs)
	}

	if result.Tokens > 0 || result.OTPs > 0 {
		s.logger.Info("Cleanup run finished",
			slog.Int64("tokens_removed", result.Tokens),
			slog.Int64("otps_removed", result.OTPs),
		)
	}
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.cancel()

	// Wait for a running purge to finish.
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
	s.logger.Info("Cleanup scheduler stopped")

	return nil
}
