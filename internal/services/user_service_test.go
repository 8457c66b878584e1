// filepath: internal/services/user_service_test.go
package services

import (
	"path/filepath"
	"testing"
	"time"

	"dentahub/internal/config"
	"dentahub/internal/db/migrations"
	"dentahub/internal/models"
	"dentahub/internal/repository"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupServiceTest creates a real repository backed by a temp database.
func setupServiceTest(t *testing.T) *repository.Repository {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	}

	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB(), "."); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	return repo
}

func TestCreateUserValidation(t *testing.T) {
	repo := setupServiceTest(t)
	svc := NewUserService(repo)

	cases := []struct {
		name    string
		payload models.UserCreatePayload
	}{
		{"empty name", models.UserCreatePayload{Email: "a@b.com", Password: "secret1", Role: models.RolePatient}},
		{"bad email", models.UserCreatePayload{Name: "A", Email: "not-an-email", Password: "secret1", Role: models.RolePatient}},
		{"short password", models.UserCreatePayload{Name: "A", Email: "a@b.com", Password: "abc", Role: models.RolePatient}},
		{"unknown role", models.UserCreatePayload{Name: "A", Email: "a@b.com", Password: "secret1", Role: "janitor"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(tc.payload)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateUserCreatesProfileRows(t *testing.T) {
	repo := setupServiceTest(t)
	svc := NewUserService(repo)

	doc, err := svc.CreateUser(models.UserCreatePayload{
		Name: "Dr. New", Email: "new.doc@example.com", Password: "secret1", Role: models.RoleDoctor,
	})
	require.NoError(t, err)
	profile, err := repo.GetDoctorByUserID(doc.ID)
	require.NoError(t, err)
	assert.Contains(t, profile.DoctorNumber, "DOC-")

	pat, err := svc.CreateUser(models.UserCreatePayload{
		Name: "New Patient", Email: "new.pat@example.com", Password: "secret1", Role: models.RolePatient,
	})
	require.NoError(t, err)
	pprofile, err := repo.GetPatientByUserID(pat.ID)
	require.NoError(t, err)
	assert.Contains(t, pprofile.PatientNumber, "PAT-")

	// Receptionists get no profile row.
	rec, err := svc.CreateUser(models.UserCreatePayload{
		Name: "Front Desk", Email: "desk@example.com", Password: "secret1", Role: models.RoleReceptionist,
	})
	require.NoError(t, err)
	_, err = repo.GetPatientByUserID(rec.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLastAdminGuard(t *testing.T) {
	repo := setupServiceTest(t)
	svc := NewUserService(repo)

	admin, err := svc.CreateUser(models.UserCreatePayload{
		Name: "Only Admin", Email: "only@example.com", Password: "secret1", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	err = svc.DeleteUser(admin.ID)
	assert.ErrorIs(t, err, ErrLastAdmin)

	patientRole := models.RolePatient
	_, err = svc.UpdateUser(admin.ID, models.UserUpdatePayload{Role: &patientRole})
	assert.ErrorIs(t, err, ErrLastAdmin)

	// With a second admin present, the first may go.
	_, err = svc.CreateUser(models.UserCreatePayload{
		Name: "Second Admin", Email: "second@example.com", Password: "secret1", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteUser(admin.ID))
}

func TestUpdateUserPasswordRevokesSessions(t *testing.T) {
	repo := setupServiceTest(t)
	svc := NewUserService(repo)

	user, err := svc.CreateUser(models.UserCreatePayload{
		Name: "Rotating", Email: "rotate@example.com", Password: "secret1", Role: models.RolePatient,
	})
	require.NoError(t, err)

	tokenHash := "deadbeefcafef00d"
	require.NoError(t, repo.StoreRefreshToken(user.ID, tokenHash, time.Now().Add(time.Hour)))
	_, err = repo.ValidateRefreshToken(tokenHash)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateUserPassword("rotate@example.com", "brand-new-pw"))

	_, err = repo.ValidateRefreshToken(tokenHash)
	assert.Error(t, err, "sessions issued before a password change must be dead")
}

func TestInitializeAdminUserUpsert(t *testing.T) {
	repo := setupServiceTest(t)
	svc := NewUserService(repo)
	cfg := &config.Config{}

	// Empty database: the canonical admin is created.
	require.NoError(t, svc.InitializeAdminUser(cfg))
	admin, err := repo.GetUserByEmail(repository.CanonicalAdmin.Email)
	require.NoError(t, err)
	assert.Equal(t, repository.CanonicalAdmin.Name, admin.Name)

	// Operator edits survive subsequent boots in upsert mode.
	admin.Phone = "+1-555-7777"
	admin.PasswordHash = ""
	require.NoError(t, repo.UpdateUser(admin))

	require.NoError(t, svc.InitializeAdminUser(cfg))
	kept, err := repo.GetUserByEmail(repository.CanonicalAdmin.Email)
	require.NoError(t, err)
	assert.Equal(t, "+1-555-7777", kept.Phone)
}

func TestInitializeAdminUserReset(t *testing.T) {
	repo := setupServiceTest(t)
	svc := NewUserService(repo)
	cfg := &config.Config{Admin: config.AdminConfig{BootstrapMode: "reset"}}

	require.NoError(t, svc.InitializeAdminUser(cfg))
	admin, err := repo.GetUserByEmail(repository.CanonicalAdmin.Email)
	require.NoError(t, err)

	// Tamper with the row; reset mode must restore canonical values.
	admin.Phone = "+1-555-0000"
	admin.Name = "Impostor"
	admin.PasswordHash = "hacked"
	require.NoError(t, repo.UpdateUser(admin))

	require.NoError(t, svc.InitializeAdminUser(cfg))
	restored, err := repo.GetUserByEmail(repository.CanonicalAdmin.Email)
	require.NoError(t, err)
	assert.Equal(t, repository.CanonicalAdmin.Name, restored.Name)
	assert.Equal(t, repository.CanonicalAdmin.Phone, restored.Phone)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(restored.PasswordHash), []byte(repository.CanonicalAdmin.Password)))
	assert.NotEqual(t, admin.ID, restored.ID, "reset recreates the row")
}

func TestInitializeAdminUserPasswordReset(t *testing.T) {
	repo := setupServiceTest(t)
	svc := NewUserService(repo)

	require.NoError(t, svc.InitializeAdminUser(&config.Config{}))

	// reset_pw only rewrites the password, nothing else.
	cfg := &config.Config{ResetAdminPassword: true, AdminPassword: "operator-pw"}
	require.NoError(t, svc.InitializeAdminUser(cfg))

	admin, err := repo.GetUserByEmail(repository.CanonicalAdmin.Email)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("operator-pw")))
	assert.Equal(t, repository.CanonicalAdmin.Name, admin.Name)
}
