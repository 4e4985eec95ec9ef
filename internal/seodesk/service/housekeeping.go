package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/metrics"
)

const housekeepingJob = "housekeeping"

// HousekeepingService periodically purges invites that reached a terminal
// state longer than Retention ago. PENDING invites are never touched; their
// expiry is detected when they are used.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour; a zero retention disables purging.
func NewHousekeepingService(
	store store.Store,
	logger *slog.Logger,
	interval, retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:     store,
		Logger:    logger.With(slog.String("component", "housekeeping")),
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		slog.Duration("interval", s.Interval),
		slog.Duration("retention", s.Retention),
	)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	if _, err := s.PurgeInvites(context.Background(), time.Now()); err != nil {
		s.Logger.Error("failed to purge invites", slog.Any("error", err))
	}
}

// PurgeInvites deletes terminal invites last updated before now-Retention
// and returns how many were removed.
func (s *HousekeepingService) PurgeInvites(ctx context.Context, now time.Time) (int64, error) {
	if s.Retention <= 0 {
		return 0, nil
	}

	start := time.Now()
	n, err := s.Store.Invites().DeleteTerminalInvitesBefore(ctx, now.Add(-s.Retention).UTC())
	if err != nil {
		metrics.RecordJob(housekeepingJob, "failed", time.Since(start))
		return 0, err
	}
	metrics.RecordJob(housekeepingJob, "succeeded", time.Since(start))

	s.Logger.Info("housekeeping cleanup completed", slog.Int64("invites_deleted", n))
	return n, nil
}
