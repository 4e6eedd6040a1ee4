package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/audit"
)

const auditTimeout = 10 * time.Minute

// AuditRunner is implemented by *audit.Auditor.
type AuditRunner interface {
	Run(ctx context.Context) (audit.Report, error)
}

type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler parses six-field specs (seconds first). A job still running when its next tick
// fires is skipped.
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.Named("cron"),
	}
}

// ScheduleAudit registers the outfit audit under spec.
func (s *Scheduler) ScheduleAudit(spec string, runner AuditRunner) error {
	if _, err := s.cron.AddFunc(spec, func() { s.runAudit(runner) }); err != nil {
		return err
	}
	s.logger.Info("outfit audit scheduled", zap.String("schedule", spec))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("cron scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop prevents new runs and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("cron scheduler stopped before running jobs finished")
	}
}

func (s *Scheduler) runAudit(runner AuditRunner) {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	start := time.Now()
	report, err := runner.Run(ctx)
	if err != nil {
		s.logger.Error("outfit audit failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return
	}
	s.logger.Info("outfit audit completed",
		zap.Int("checked", report.Checked),
		zap.Int("stale", report.Stale),
		zap.Duration("elapsed", time.Since(start)),
	)
}
