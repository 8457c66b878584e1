// filepath: internal/repository/seed.go
package repository

import (
	"fmt"

	"dentahub/internal/logging"
	"dentahub/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// CanonicalAdmin is the admin account guaranteed to exist after startup.
// The bootstrap mode in the config decides whether an existing row is
// left alone or reset to exactly these values on every boot.
var CanonicalAdmin = UserCreateArgs{
	Name:     "Clinic Administrator",
	Email:    "admin@dentahub.clinic",
	Password: "admin123",
	Phone:    "+1-555-0100",
	Role:     models.RoleAdmin,
	Gender:   "other",
	Address:  "12 Main Street",
}

// seedUsers is the fixed demo roster inserted into an empty database:
// the canonical admin, two doctors, three patients and a receptionist.
var seedUsers = []UserCreateArgs{
	CanonicalAdmin,
	{Name: "Dr. Sarah Mitchell", Email: "sarah.mitchell@dentahub.clinic", Password: "doctor123", Phone: "+1-555-0101", Role: models.RoleDoctor, Gender: "female", Address: "40 Elm Avenue"},
	{Name: "Dr. James Okafor", Email: "james.okafor@dentahub.clinic", Password: "doctor123", Phone: "+1-555-0102", Role: models.RoleDoctor, Gender: "male", Address: "7 Birch Road"},
	{Name: "Emily Carter", Email: "emily.carter@example.com", Password: "patient123", Phone: "+1-555-0103", Role: models.RolePatient, Gender: "female", Address: "3 Oak Lane"},
	{Name: "Miguel Alvarez", Email: "miguel.alvarez@example.com", Password: "patient123", Phone: "+1-555-0104", Role: models.RolePatient, Gender: "male", Address: "18 Cedar Court"},
	{Name: "Priya Nair", Email: "priya.nair@example.com", Password: "patient123", Phone: "+1-555-0105", Role: models.RolePatient, Gender: "female", Address: "92 Willow Drive"},
	{Name: "Tom Reilly", Email: "tom.reilly@dentahub.clinic", Password: "reception123", Phone: "+1-555-0106", Role: models.RoleReceptionist, Gender: "male", Address: "5 Harbor Street"},
}

var seedDoctors = map[string]DoctorCreateArgs{
	"sarah.mitchell@dentahub.clinic": {Specialization: "Orthodontics", LicenseNumber: "LIC-44821", Qualification: "DDS, MS Orthodontics", ExperienceYears: 12, ConsultationFee: 120},
	"james.okafor@dentahub.clinic":   {Specialization: "Endodontics", LicenseNumber: "LIC-51977", Qualification: "DMD", ExperienceYears: 8, ConsultationFee: 95},
}

var seedPatients = map[string]PatientCreateArgs{
	"emily.carter@example.com":   {InsuranceCompany: "DeltaCare", MedicalHistory: "Hypertension, controlled", Allergies: "Penicillin", BloodType: "A+"},
	"miguel.alvarez@example.com": {InsuranceCompany: "", MedicalHistory: "None", Allergies: "", BloodType: "O-"},
	"priya.nair@example.com":     {InsuranceCompany: "MetSmile", MedicalHistory: "Type 2 diabetes", Allergies: "Latex", BloodType: "B+"},
}

var seedServices = []models.Service{
	{Name: "Dental Checkup", Description: "Routine examination and consultation", Price: 50, DurationMin: 30},
	{Name: "Teeth Cleaning", Description: "Professional scaling and polishing", Price: 80, DurationMin: 45},
	{Name: "Tooth Filling", Description: "Composite filling, single surface", Price: 150, DurationMin: 60},
	{Name: "Root Canal", Description: "Root canal treatment, single canal", Price: 450, DurationMin: 90},
	{Name: "Tooth Extraction", Description: "Simple extraction", Price: 180, DurationMin: 45},
}

// Seed populates an empty database with the demo roster. It is a no-op
// when the users table already has rows; partial seed states are not
// reconciled beyond that coarse check. A non-empty adminPassword
// replaces the canonical admin password for the seeded row, so an
// operator-supplied password takes effect on first boot too.
func (s *Repository) Seed(adminPassword string) error {
	count, err := s.CountUsers()
	if err != nil {
		return fmt.Errorf("failed to check users table: %w", err)
	}
	if count > 0 {
		logging.Log.Debug("Seed: users table is not empty, skipping")
		return nil
	}

	logging.Log.Info("Empty database detected, seeding demo data...")

	// The user batch is atomic: either the whole roster lands or none
	// of it does. The dependent inserts below query generated IDs back
	// by email instead of assuming row positions.
	if err := s.seedUserBatch(adminPassword); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	userIDs := make(map[string]int64, len(seedUsers))
	for _, u := range seedUsers {
		user, err := s.GetUserByEmail(u.Email)
		if err != nil {
			return fmt.Errorf("failed to read back seeded user %s: %w", u.Email, err)
		}
		userIDs[u.Email] = user.ID
	}

	doctorIDs := make([]int64, 0, len(seedDoctors))
	for email, args := range seedDoctors {
		args.UserID = userIDs[email]
		doc, err := s.CreateDoctor(&args)
		if err != nil {
			return fmt.Errorf("failed to seed doctor profile for %s: %w", email, err)
		}
		doctorIDs = append(doctorIDs, doc.ID)
	}

	for email, args := range seedPatients {
		args.UserID = userIDs[email]
		if _, err := s.CreatePatient(&args); err != nil {
			return fmt.Errorf("failed to seed patient profile for %s: %w", email, err)
		}
	}

	if err := s.seedServiceCatalogue(); err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}

	if err := s.seedAppointmentsAndTransactions(doctorIDs); err != nil {
		return err
	}

	logging.Log.Info("Database seeding complete")
	return nil
}

func (s *Repository) seedUserBatch(adminPassword string) error {
	tx, err := s.DB().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (name, email, password_hash, phone, role, gender, address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for _, u := range seedUsers {
		if u.Email == CanonicalAdmin.Email && adminPassword != "" {
			u.Password = adminPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, u.Name, u.Email, string(hashed), u.Phone, u.Role, u.Gender, u.Address); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Repository) seedServiceCatalogue() error {
	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, svc := range seedServices {
		_, err := s.DB().Exec("INSERT INTO services (name, description, price, duration_min) VALUES (?, ?, ?, ?)",
			svc.Name, svc.Description, svc.Price, svc.DurationMin)
		if err != nil {
			return err
		}
	}
	return nil
}

// seedAppointmentsAndTransactions wipes any existing appointments and
// re-creates demo data against the patient IDs actually present. Both
// appointments and transactions use queried-back IDs; literal FKs in
// seed data broke as soon as IDs stopped starting at 1.
func (s *Repository) seedAppointmentsAndTransactions(doctorIDs []int64) error {
	if _, err := s.DB().Exec("DELETE FROM appointments"); err != nil {
		return fmt.Errorf("failed to clear appointments: %w", err)
	}

	patientIDs, err := s.GetPatientIDs()
	if err != nil {
		return fmt.Errorf("failed to query patient ids: %w", err)
	}
	if len(patientIDs) == 0 || len(doctorIDs) == 0 {
		logging.Log.Warn("Seed: no patients or doctors available, skipping appointments and transactions")
		return nil
	}

	services, err := s.GetServices()
	if err != nil {
		return fmt.Errorf("failed to query services: %w", err)
	}

	demoAppointments := []struct {
		date, time, complaint string
	}{
		{"2026-09-14", "09:30", "Sensitivity in upper left molar"},
		{"2026-09-15", "11:00", "Routine checkup"},
		{"2026-09-18", "14:15", "Chipped front tooth"},
	}
	for i, demo := range demoAppointments {
		if i >= len(patientIDs) {
			break
		}
		payload := &models.AppointmentCreatePayload{
			PatientID:      patientIDs[i],
			DoctorID:       doctorIDs[i%len(doctorIDs)],
			Date:           demo.date,
			Time:           demo.time,
			ChiefComplaint: demo.complaint,
		}
		if i < len(services) {
			payload.ServiceID = &services[i].ID
		}
		if _, err := s.CreateAppointment(payload); err != nil {
			return fmt.Errorf("failed to seed appointment: %w", err)
		}
	}

	demoTransactions := []models.TransactionCreatePayload{
		{TransactionType: models.TransactionCharge, Amount: 150, PaymentMethod: "card", PaymentStatus: models.PaymentPending, Description: "Composite filling"},
		{TransactionType: models.TransactionPayment, Amount: 80, PaymentMethod: "cash", PaymentStatus: models.PaymentCompleted, Description: "Teeth cleaning"},
		{TransactionType: models.TransactionPayment, Amount: 50, PaymentMethod: "card", PaymentStatus: models.PaymentCompleted, Description: "Checkup consultation"},
	}
	for i := range demoTransactions {
		if i >= len(patientIDs) {
			break
		}
		demoTransactions[i].PatientID = patientIDs[i]
		if _, err := s.CreateTransaction(&demoTransactions[i]); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	return nil
}
