// filepath: internal/services/backup_service.go
package services

import (
	"fmt"
	"os"

	"dentahub/internal/models"
	"dentahub/internal/repository"
)

type backupService struct {
	repo      *repository.Repository
	backupDir string
}

var _ BackupService = (*backupService)(nil)

// NewBackupService creates a new BackupService writing into backupDir.
func NewBackupService(repo *repository.Repository, backupDir string) BackupService {
	return &backupService{repo: repo, backupDir: backupDir}
}

func (s *backupService) CreateBackup(name string) (*models.BackupInfo, error) {
	return s.repo.Backup(s.backupDir, name, "manual")
}

func (s *backupService) Restore(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: backup file not found: %s", ErrValidation, path)
	}
	return s.repo.Restore(path)
}

func (s *backupService) GetBackups() ([]models.BackupInfo, error) {
	return s.repo.GetBackups()
}
