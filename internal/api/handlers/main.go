// filepath: internal/api/handlers/main.go
package handlers

import (
	"dentahub/internal/config"
	"dentahub/internal/services"
	"dentahub/internal/services/auth"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// Depend on interfaces, not concrete structs
	Info        services.InfoService
	User        services.UserService
	Patient     services.PatientService
	Doctor      services.DoctorService
	Appointment services.AppointmentService
	Finance     services.FinanceService
	Report      services.ReportService
	Backup      services.BackupService
	Maintenance services.MaintenanceService
	Token       auth.TokenService
	Audit       services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	user services.UserService,
	patient services.PatientService,
	doctor services.DoctorService,
	appointment services.AppointmentService,
	finance services.FinanceService,
	report services.ReportService,
	backup services.BackupService,
	maintenance services.MaintenanceService,
	token auth.TokenService,
	audit services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:        info,
		User:        user,
		Patient:     patient,
		Doctor:      doctor,
		Appointment: appointment,
		Finance:     finance,
		Report:      report,
		Backup:      backup,
		Maintenance: maintenance,
		Token:       token,
		Audit:       audit,
		Cfg:         cfg,
	}
}
