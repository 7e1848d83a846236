package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/config"
	"github.com/BeeeliB/waistless-app/internal/service/reporting"
)

// Scheduler runs the periodic household expense digest.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The digest schedule comes
// from config and runs in the configured timezone when it can be loaded.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Timezone); err != nil {
		logger.Warn("unknown timezone, scheduling in local time", zap.String("timezone", cfg.Timezone), zap.Error(err))
	} else {
		opts = append(opts, cron.WithLocation(loc))
	}

	return &Scheduler{
		cron:         cron.New(opts...),
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDigest); err != nil {
		s.logger.Error("failed to schedule household digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	digest, err := s.reportingSvc.GenerateDigest(ctx)
	if err != nil {
		s.logger.Error("failed to generate household digest", zap.Error(err))
		return
	}

	s.logger.Info("household digest generated", zap.String("digest", digest))
}
