// filepath: internal/repository/repair.go
package repository

import (
	"fmt"

	"dentahub/internal/logging"
)

// RepairAppointments removes appointments whose patient_id references
// no patients row and returns how many were deleted. With foreign keys
// enforced such rows cannot be inserted anymore, but databases restored
// from older backups can still carry them.
func (s *Repository) RepairAppointments() (int, error) {
	rows, err := s.DB().Query(`
		SELECT a.id, a.appointment_number, a.patient_id
		FROM appointments a
		LEFT JOIN patients p ON p.id = a.patient_id
		WHERE p.id IS NULL
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to scan for invalid appointments: %w", err)
	}
	invalid := 0
	for rows.Next() {
		var id, patientID int64
		var number string
		if err := rows.Scan(&id, &number, &patientID); err != nil {
			rows.Close()
			return 0, err
		}
		logging.Log.Warnf("Invalid appointment %s (id=%d) references missing patient %d", number, id, patientID)
		invalid++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	if invalid > 0 {
		// Re-evaluates the same anti-join; anything that grew a valid
		// patient in the meantime survives.
		result, err := s.DB().Exec(`
			DELETE FROM appointments
			WHERE id IN (
				SELECT a.id FROM appointments a
				LEFT JOIN patients p ON p.id = a.patient_id
				WHERE p.id IS NULL
			)
		`)
		if err != nil {
			return 0, fmt.Errorf("failed to delete invalid appointments: %w", err)
		}
		affected, _ := result.RowsAffected()
		invalid = int(affected)
		logging.Log.Infof("Repaired appointments table: removed %d invalid rows", invalid)
	}

	// Revalidate what remains by joining through to users for display
	// names; emitted at debug level as startup diagnostics.
	remaining, err := s.GetAppointments(AppointmentFilter{})
	if err != nil {
		return invalid, fmt.Errorf("failed to list appointments after repair: %w", err)
	}
	for _, apt := range remaining {
		logging.Log.Debugf("Appointment %s: %s with %s on %s %s [%s]",
			apt.AppointmentNumber, apt.PatientName, apt.DoctorName, apt.Date, apt.Time, apt.Status)
	}

	return invalid, nil
}
