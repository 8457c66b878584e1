// filepath: internal/repository/activity_repo.go
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"dentahub/internal/models"
)

// InsertActivity appends one activity log row. Old/new values are
// stored as JSON text, or NULL when nil.
func (s *Repository) InsertActivity(userID int64, action, entityType string, entityID *int64, oldValues, newValues interface{}) error {
	oldJSON, err := marshalNullable(oldValues)
	if err != nil {
		return err
	}
	newJSON, err := marshalNullable(newValues)
	if err != nil {
		return err
	}

	_, err = s.DB().Exec(`
		INSERT INTO activity_logs (user_id, action, entity_type, entity_id, old_values, new_values)
		VALUES (?, ?, ?, ?, ?, ?)
	`, userID, action, entityType, entityID, oldJSON, newJSON)
	return err
}

func marshalNullable(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// GetActivities lists recent activity log rows, newest first.
func (s *Repository) GetActivities(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.DB().Query(`
		SELECT id, user_id, action, entity_type, entity_id, old_values, new_values, created_at
		FROM activity_logs ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.ActivityLog, 0)
	for rows.Next() {
		var entry models.ActivityLog
		var oldValues, newValues sql.NullString
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.EntityType,
			&entry.EntityID, &oldValues, &newValues, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if oldValues.Valid {
			entry.OldValues = json.RawMessage(oldValues.String)
		}
		if newValues.Valid {
			entry.NewValues = json.RawMessage(newValues.String)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// PruneActivities removes activity rows older than the given number of
// days and returns how many were deleted.
func (s *Repository) PruneActivities(days int) (int, error) {
	result, err := s.DB().Exec(
		"DELETE FROM activity_logs WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return int(affected), nil
}
