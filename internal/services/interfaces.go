// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"dentahub/internal/config"
	"dentahub/internal/models"
	"dentahub/internal/repository"
)

// Auditor records one activity-log entry per mutating action. Entries
// are fire-and-forget: implementations must never propagate failures to
// the triggering business operation.
type Auditor interface {
	// Log records an event.
	// ctx: request context (for tracing, if available)
	// userID: acting user, 0 when unauthenticated/system
	// action: what happened (e.g. "appointment.create")
	// entityType/entityID: what was affected
	// oldValues/newValues: before/after snapshots, nil when not applicable
	Log(ctx context.Context, userID int64, action, entityType string, entityID *int64, oldValues, newValues interface{})
}

// InfoService exposes general service information.
type InfoService interface {
	GetInfo() models.Info
}

// UserService handles account management and the admin bootstrap.
type UserService interface {
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetUsers(role string) ([]models.User, error)
	CreateUser(payload models.UserCreatePayload) (*models.User, error)
	UpdateUser(id int64, payload models.UserUpdatePayload) (*models.User, error)
	DeleteUser(id int64) error
	UpdateUserPassword(email, password string) error
	InitializeAdminUser(cfg *config.Config) error
}

// PatientService handles patient profile management.
type PatientService interface {
	GetPatients() ([]models.Patient, error)
	GetPatient(id int64) (*models.Patient, error)
	GetPatientByUserID(userID int64) (*models.Patient, error)
	UpdatePatient(pat *models.Patient) error
}

// DoctorService handles doctor profile management.
type DoctorService interface {
	GetDoctors() ([]models.Doctor, error)
	GetDoctor(id int64) (*models.Doctor, error)
	GetDoctorByUserID(userID int64) (*models.Doctor, error)
	UpdateDoctor(doc *models.Doctor) error
}

// AppointmentService handles scheduling and the service catalogue.
type AppointmentService interface {
	CreateAppointment(payload models.AppointmentCreatePayload) (*models.Appointment, error)
	GetAppointment(id int64) (*models.Appointment, error)
	GetAppointments(filter repository.AppointmentFilter) ([]models.Appointment, error)
	UpdateAppointmentStatus(id int64, status string) (*models.Appointment, error)
	DeleteAppointment(id int64) error
	GetServices() ([]models.Service, error)
}

// FinanceService handles financial transactions.
type FinanceService interface {
	CreateTransaction(payload models.TransactionCreatePayload) (*models.FinancialTransaction, error)
	GetTransaction(id int64) (*models.FinancialTransaction, error)
	GetTransactions(patientID int64) ([]models.FinancialTransaction, error)
	UpdateTransactionStatus(id int64, status string) (*models.FinancialTransaction, error)
}

// ReportService backs the admin dashboard.
type ReportService interface {
	GetStats() models.StatsReport
	Search(query string, limit int) ([]models.SearchResult, error)
	GetActivities(limit int) ([]models.ActivityLog, error)
}

// BackupService handles database backup and restore.
type BackupService interface {
	CreateBackup(name string) (*models.BackupInfo, error)
	Restore(path string) error
	GetBackups() ([]models.BackupInfo, error)
}

// MaintenanceService manages the background maintenance worker.
type MaintenanceService interface {
	Start()
	Stop()
	RunNow() (*models.MaintenanceReport, error)
}
