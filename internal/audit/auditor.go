// filepath: internal/audit/auditor.go

// Package audit records mutating actions to the activity_logs table.
// Writes are fire-and-forget: a failed audit write is logged and dropped,
// never surfaced to the operation that triggered it.
package audit

import (
	"context"

	"dentahub/internal/logging"
	"dentahub/internal/repository"
	"dentahub/internal/services"
)

type dbAuditor struct {
	repo    *repository.Repository
	enabled bool
}

var _ services.Auditor = (*dbAuditor)(nil)

// NewDBAuditor creates an Auditor persisting to the repository. When
// enabled is false every call becomes a no-op.
func NewDBAuditor(repo *repository.Repository, enabled bool) services.Auditor {
	return &dbAuditor{repo: repo, enabled: enabled}
}

func (a *dbAuditor) Log(ctx context.Context, userID int64, action, entityType string, entityID *int64, oldValues, newValues interface{}) {
	if !a.enabled {
		return
	}
	if err := a.repo.InsertActivity(userID, action, entityType, entityID, oldValues, newValues); err != nil {
		logging.Log.Warnf("Audit: failed to record %s: %v", action, err)
	}
}
