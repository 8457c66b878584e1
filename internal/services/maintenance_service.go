// filepath: internal/services/maintenance_service.go
package services

import (
	"time"

	"dentahub/internal/maintenance"
	"dentahub/internal/models"
	"dentahub/internal/repository"
)

var _ MaintenanceService = (*maintenanceService)(nil)

// maintenanceService manages the lifecycle of the background maintenance
// worker and provides a method for manual triggering.
type maintenanceService struct {
	worker     *maintenance.Service
	workerDeps maintenance.Dependencies
	interval   time.Duration
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(repo *repository.Repository, interval time.Duration) MaintenanceService {
	return &maintenanceService{
		workerDeps: maintenance.Dependencies{DB: repo},
		interval:   interval,
	}
}

// Start begins the background maintenance worker.
func (s *maintenanceService) Start() {
	s.worker = maintenance.NewService(s.workerDeps, s.interval)
	s.worker.Start()
}

// Stop terminates the background maintenance worker.
func (s *maintenanceService) Stop() {
	if s.worker != nil {
		s.worker.Stop()
	}
}

// RunNow manually runs the maintenance tasks once.
func (s *maintenanceService) RunNow() (*models.MaintenanceReport, error) {
	return maintenance.Run(s.workerDeps)
}
