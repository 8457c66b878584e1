// filepath: internal/repository/user_repo_test.go
package repository

import (
	"testing"

	"dentahub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCRUD(t *testing.T) {
	repo := setupTestDB(t)

	created, err := repo.CreateUser(&UserCreateArgs{
		Name: "Test Person", Email: "test@example.com", Password: "secret1",
		Phone: "+1-555-9999", Role: models.RolePatient, Gender: "other", Address: "1 Test Way",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))

	byEmail, err := repo.GetUserByEmail("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Person", byID.Name)

	// Duplicate email is rejected with a typed error.
	_, err = repo.CreateUser(&UserCreateArgs{
		Name: "Other", Email: "test@example.com", Password: "secret1", Role: models.RolePatient,
	})
	assert.ErrorIs(t, err, ErrUserExists)

	// Update without password change keeps the old hash working.
	byID.Name = "Renamed Person"
	byID.PasswordHash = ""
	require.NoError(t, repo.UpdateUser(byID))

	updated, err := repo.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Person", updated.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("secret1")))

	require.NoError(t, repo.UpdateUserPassword("test@example.com", "newsecret"))
	updated, err = repo.GetUserByEmail("test@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")))

	require.NoError(t, repo.DeleteUser(created.ID))
	_, err = repo.GetUserByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUsersFilteredByRole(t *testing.T) {
	repo := setupTestDB(t)
	require.NoError(t, repo.Seed(""))

	doctors, err := repo.GetUsers(models.RoleDoctor)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
	for _, u := range doctors {
		assert.Equal(t, models.RoleDoctor, u.Role)
	}

	all, err := repo.GetUsers("")
	require.NoError(t, err)
	assert.Len(t, all, len(seedUsers))

	admins, err := repo.GetAdminUsers()
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, CanonicalAdmin.Email, admins[0].Email)
}

func TestDeleteUserByEmail(t *testing.T) {
	repo := setupTestDB(t)

	deleted, err := repo.DeleteUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.CreateUser(&CanonicalAdmin)
	require.NoError(t, err)

	deleted, err = repo.DeleteUserByEmail(CanonicalAdmin.Email)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetUserByEmail(CanonicalAdmin.Email)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserCacheInvalidation(t *testing.T) {
	repo := setupTestDB(t)

	created, err := repo.CreateUser(&UserCreateArgs{
		Name: "Cache Test", Email: "cache@example.com", Password: "secret1", Role: models.RolePatient,
	})
	require.NoError(t, err)

	// Prime the cache.
	_, err = repo.GetUserByEmail("cache@example.com")
	require.NoError(t, err)

	created.Name = "Cache Test Renamed"
	created.PasswordHash = ""
	require.NoError(t, repo.UpdateUser(created))

	cached, err := repo.GetUserByEmail("cache@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Cache Test Renamed", cached.Name, "update must invalidate the cached entry")
}

func TestDeletingDoctorUserCascadesToProfile(t *testing.T) {
	repo := setupTestDB(t)

	user, err := repo.CreateUser(&UserCreateArgs{
		Name: "Dr. Cascade", Email: "cascade@example.com", Password: "secret1", Role: models.RoleDoctor,
	})
	require.NoError(t, err)
	doc, err := repo.CreateDoctor(&DoctorCreateArgs{UserID: user.ID, Specialization: "General"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(user.ID))

	_, err = repo.GetDoctor(doc.ID)
	assert.ErrorIs(t, err, ErrNotFound, "doctor profile must be removed with its user")
}
