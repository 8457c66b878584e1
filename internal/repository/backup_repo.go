// filepath: internal/repository/backup_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dentahub/internal/logging"
	"dentahub/internal/models"
)

// Backup snapshots the live database into backupDir using VACUUM INTO,
// the engine's native online-backup primitive (consistent under WAL,
// unlike a raw file copy), and records a metadata row. An empty name
// yields "backup_<timestamp>" with colons replaced for filesystem
// compatibility.
func (s *Repository) Backup(backupDir, name, backupType string) (*models.BackupInfo, error) {
	if name == "" {
		name = "backup_" + strings.ReplaceAll(time.Now().UTC().Format(time.RFC3339), ":", "-")
	}
	if backupType == "" {
		backupType = "manual"
	}

	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(backupDir, name+filepath.Ext(s.dbPath))
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("backup file already exists: %s", path)
	}

	if _, err := s.DB().Exec("VACUUM INTO ?", path); err != nil {
		return nil, fmt.Errorf("failed to snapshot database: %w", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("backup written but unreadable: %w", err)
	}

	now := time.Now().UTC()
	result, err := s.DB().Exec(`
		INSERT INTO backups (backup_name, backup_type, file_path, size_bytes, status, completed_at)
		VALUES (?, ?, ?, ?, 'completed', ?)
	`, name, backupType, path, fi.Size(), now)
	if err != nil {
		// The file exists even if the metadata insert failed; surface
		// the error so the caller knows the record is missing.
		return nil, fmt.Errorf("backup written to %s but metadata insert failed: %w", path, err)
	}
	id, _ := result.LastInsertId()

	logging.Log.Infof("Backup created: %s (%d bytes)", path, fi.Size())
	return &models.BackupInfo{
		ID:          id,
		BackupName:  name,
		BackupType:  backupType,
		FilePath:    path,
		SizeBytes:   fi.Size(),
		Status:      "completed",
		CreatedAt:   now,
		CompletedAt: &now,
	}, nil
}

// Restore closes the live handle, copies the backup file over the live
// database path and reopens with the same pragmas as initial startup.
// The backup file is not validated before the overwrite; restoring a
// corrupt file destroys the live data.
func (s *Repository) Restore(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer src.Close()

	if err := s.DB().Close(); err != nil {
		return fmt.Errorf("failed to close live database: %w", err)
	}

	// Past this point the handle is gone; a copy failure leaves the
	// process without a database until Reopen succeeds.
	if err := copyFile(src, s.dbPath); err != nil {
		reopenErr := s.Reopen()
		if reopenErr != nil {
			return fmt.Errorf("restore copy failed (%v) and reopen failed: %w", err, reopenErr)
		}
		return fmt.Errorf("failed to copy backup over live database: %w", err)
	}

	// Stale WAL sidecars belong to the overwritten file.
	os.Remove(s.dbPath + "-wal")
	os.Remove(s.dbPath + "-shm")

	if err := s.Reopen(); err != nil {
		return fmt.Errorf("failed to reopen database after restore: %w", err)
	}

	logging.Log.Infof("Database restored from %s", path)
	return nil
}

func copyFile(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// GetBackups lists recorded backups, newest first.
func (s *Repository) GetBackups() ([]models.BackupInfo, error) {
	rows, err := s.DB().Query(`
		SELECT id, backup_name, backup_type, file_path, size_bytes, status, created_at, completed_at
		FROM backups ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	backups := make([]models.BackupInfo, 0)
	for rows.Next() {
		var b models.BackupInfo
		var completed sql.NullTime
		if err := rows.Scan(&b.ID, &b.BackupName, &b.BackupType, &b.FilePath, &b.SizeBytes,
			&b.Status, &b.CreatedAt, &completed); err != nil {
			return nil, err
		}
		if completed.Valid {
			t := completed.Time
			b.CompletedAt = &t
		}
		backups = append(backups, b)
	}
	return backups, rows.Err()
}
