// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"encoding/json"
	"time"
)

// User roles. Every account carries exactly one.
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RolePatient      = "patient"
	RoleReceptionist = "receptionist"
)

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Financial transaction types and payment statuses.
const (
	TransactionPayment = "payment"
	TransactionCharge  = "charge"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}

// User represents an account in the system. Doctors and patients carry
// an additional profile row (Doctor / Patient) keyed by UserID.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Omit from JSON responses
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	Gender       string    `json:"gender"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Doctor is the 1:1 profile extension of a User with role "doctor".
type Doctor struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	DoctorNumber    string  `json:"doctor_number"`
	Specialization  string  `json:"specialization"`
	LicenseNumber   string  `json:"license_number"`
	Qualification   string  `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`

	// Joined from users for display; not always populated.
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Patient is the 1:1 profile extension of a User with role "patient".
type Patient struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	PatientNumber     string `json:"patient_number"`
	InsuranceCompany  string `json:"insurance_company"`
	MedicalHistory    string `json:"medical_history"`
	Allergies         string `json:"allergies"`
	BloodType         string `json:"blood_type"`
	PreferredDoctorID *int64 `json:"preferred_doctor_id,omitempty"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Service is one entry of the dental service catalogue.
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

// Appointment references a Patient row (patients.id, not users.id).
type Appointment struct {
	ID                int64     `json:"id"`
	AppointmentNumber string    `json:"appointment_number"`
	PatientID         int64     `json:"patient_id"`
	DoctorID          int64     `json:"doctor_id"`
	ServiceID         *int64    `json:"service_id,omitempty"`
	Date              string    `json:"date"` // YYYY-MM-DD
	Time              string    `json:"time"` // HH:MM
	Status            string    `json:"status"`
	ChiefComplaint    string    `json:"chief_complaint"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`

	PatientName string `json:"patient_name,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
}

// FinancialTransaction is one payment or charge against a patient.
type FinancialTransaction struct {
	ID                int64     `json:"id"`
	TransactionNumber string    `json:"transaction_number"`
	PatientID         int64     `json:"patient_id"`
	TransactionType   string    `json:"transaction_type"`
	Amount            float64   `json:"amount"`
	PaymentMethod     string    `json:"payment_method"`
	PaymentStatus     string    `json:"payment_status"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"created_at"`

	PatientName string `json:"patient_name,omitempty"`
}

// BackupInfo is the metadata row recorded for each backup file produced.
type BackupInfo struct {
	ID          int64      `json:"id"`
	BackupName  string     `json:"backup_name"`
	BackupType  string     `json:"backup_type"`
	FilePath    string     `json:"file_path"`
	SizeBytes   int64      `json:"size_bytes"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ActivityLog records one mutating action with JSON before/after snapshots.
type ActivityLog struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type,omitempty"`
	EntityID   *int64          `json:"entity_id,omitempty"`
	OldValues  json.RawMessage `json:"old_values,omitempty" swaggertype:"object"`
	NewValues  json.RawMessage `json:"new_values,omitempty" swaggertype:"object"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SearchResult is one row of the global search response. Type tags the
// originating category: "patient", "appointment" or "transaction".
type SearchResult struct {
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// StatsReport maps table names to their row counts for the dashboard.
type StatsReport map[string]int

// MaintenanceReport summarizes one run of the maintenance worker.
type MaintenanceReport struct {
	NoShowsMarked    int `json:"no_shows_marked"`
	TokensPruned     int `json:"tokens_pruned"`
	ActivitiesPruned int `json:"activities_pruned"`
}

// UserCreatePayload is used for the POST /api/admin/user request.
type UserCreatePayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
}

// UserUpdatePayload is used for the PATCH /api/admin/user request.
// Nil pointers leave the current value untouched.
type UserUpdatePayload struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Address  *string `json:"address,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AppointmentCreatePayload is used for the POST /api/appointment request.
type AppointmentCreatePayload struct {
	PatientID      int64  `json:"patient_id"`
	DoctorID       int64  `json:"doctor_id"`
	ServiceID      *int64 `json:"service_id,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ChiefComplaint string `json:"chief_complaint"`
	Notes          string `json:"notes"`
}

// TransactionCreatePayload is used for the POST /api/transaction request.
type TransactionCreatePayload struct {
	PatientID       int64   `json:"patient_id"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentStatus   string  `json:"payment_status"`
	Description     string  `json:"description"`
}

// BackupRequest is used for the POST /api/admin/backup request.
type BackupRequest struct {
	Name string `json:"name,omitempty"`
}

// RestoreRequest is used for the POST /api/admin/backup/restore request.
type RestoreRequest struct {
	Path string `json:"path"`
}
