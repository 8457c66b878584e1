// filepath: internal/maintenance/service.go

// Package maintenance runs periodic cleanup over the clinic database:
// past appointments still marked scheduled or confirmed are flipped to
// no_show, expired refresh tokens are pruned, and activity-log entries
// past the retention window are dropped.
package maintenance

import (
	"time"

	"dentahub/internal/logging"
	"dentahub/internal/models"
)

// MinInterval is the minimum time between runs to prevent busy-looping.
const MinInterval = 1 * time.Minute

// ActivityRetentionDays is how long activity-log entries are kept
// before the worker prunes them.
const ActivityRetentionDays = 90

// Service provides the background worker for automated maintenance.
type Service struct {
	Deps     Dependencies
	interval time.Duration
	timer    *time.Timer
	stopCh   chan struct{}
}

// NewService creates a new maintenance service instance.
func NewService(deps Dependencies, interval time.Duration) *Service {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Service{
		Deps:     deps,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start kicks off the background maintenance service.
func (s *Service) Start() {
	logging.Log.Infof("Starting background maintenance service (interval %v).", s.interval)
	s.timer = time.NewTimer(0) // Fire immediately on start

	go func() {
		for {
			select {
			case <-s.timer.C:
				if _, err := Run(s.Deps); err != nil {
					logging.Log.Errorf("Maintenance run failed: %v", err)
				}
				s.timer.Reset(s.interval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background maintenance service.
func (s *Service) Stop() {
	logging.Log.Info("Stopping background maintenance service.")
	close(s.stopCh)
}

// Run executes all maintenance tasks once and reports what was done.
// Tasks are independent: a failing task is logged and the rest still run.
func Run(deps Dependencies) (*models.MaintenanceReport, error) {
	report := &models.MaintenanceReport{}

	today := time.Now().Format("2006-01-02")
	marked, err := deps.DB.MarkOverdueNoShows(today)
	if err != nil {
		logging.Log.Errorf("Maintenance: marking overdue appointments failed: %v", err)
	} else {
		report.NoShowsMarked = marked
		if marked > 0 {
			logging.Log.Infof("Maintenance: marked %d overdue appointments as no_show", marked)
		}
	}

	pruned, err := deps.DB.PruneExpiredRefreshTokens()
	if err != nil {
		logging.Log.Errorf("Maintenance: pruning refresh tokens failed: %v", err)
	} else {
		report.TokensPruned = pruned
		if pruned > 0 {
			logging.Log.Infof("Maintenance: pruned %d expired refresh tokens", pruned)
		}
	}

	dropped, err := deps.DB.PruneActivities(ActivityRetentionDays)
	if err != nil {
		logging.Log.Errorf("Maintenance: pruning activity log failed: %v", err)
	} else {
		report.ActivitiesPruned = dropped
		if dropped > 0 {
			logging.Log.Infof("Maintenance: pruned %d activity-log entries older than %d days", dropped, ActivityRetentionDays)
		}
	}

	return report, nil
}
