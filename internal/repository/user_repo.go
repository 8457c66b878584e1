// filepath: internal/repository/user_repo.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"dentahub/internal/logging"
	"dentahub/internal/models"

	"github.com/Masterminds/squirrel"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned when trying to create a user whose email is taken.
var ErrUserExists = errors.New("user already exists")

// UserCreateArgs carries the plaintext password for creation; it is
// separate from models.User which only ever holds the hash.
type UserCreateArgs struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
	Gender   string
	Address  string
}

const userColumns = "id, name, email, password_hash, phone, role, gender, address, created_at, updated_at"

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone,
		&user.Role, &user.Gender, &user.Address, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email (the login key), using a
// cache for performance.
func (s *Repository) GetUserByEmail(email string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_email_%s", email)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByEmail: cache miss for '%s', querying DB", email)
	row := s.DB().QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email)
	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(cacheKey, user, 5*time.Minute)
	s.Cache.Set(fmt.Sprintf("user_by_id_%d", user.ID), user, 5*time.Minute)
	return user, nil
}

// GetUserByID retrieves a user by ID, using a cache for performance.
func (s *Repository) GetUserByID(id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_id_%d", id)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	row := s.DB().QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(cacheKey, user, 5*time.Minute)
	s.Cache.Set(fmt.Sprintf("user_by_email_%s", user.Email), user, 5*time.Minute)
	return user, nil
}

// CountUsers returns the number of rows in the users table.
func (s *Repository) CountUsers() (int, error) {
	var count int
	err := s.DB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// CreateUser creates a new user with a bcrypt-hashed password.
func (s *Repository) CreateUser(args *UserCreateArgs) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(args.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO users (name, email, password_hash, phone, role, gender, address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.DB().Exec(query, args.Name, args.Email, string(hashedPassword),
		args.Phone, args.Role, args.Gender, args.Address)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return nil, ErrUserExists
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateUser: user '%s' (%s) created with ID %d", args.Name, args.Role, id)
	return s.GetUserByID(id)
}

// UpdateUser persists name/phone/role/gender/address changes and,
// when user.PasswordHash is non-empty, re-hashes it as a new password.
func (s *Repository) UpdateUser(user *models.User) error {
	tx, err := s.DB().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE users
		SET name = ?, phone = ?, role = ?, gender = ?, address = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := tx.Exec(query, user.Name, user.Phone, user.Role, user.Gender, user.Address, user.ID); err != nil {
		return err
	}

	// The caller sets PasswordHash to the new plaintext password to
	// request a change; empty means keep the current hash.
	if user.PasswordHash != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := tx.Exec("UPDATE users SET password_hash = ? WHERE id = ?", string(hashedPassword), user.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateUserCache(user.ID, user.Email)
	return nil
}

// UpdateUserPassword updates a single user's password.
func (s *Repository) UpdateUserPassword(email, password string) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.DB().Exec("UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", string(hashedPassword), user.ID); err != nil {
		return err
	}

	s.invalidateUserCache(user.ID, user.Email)
	return nil
}

// GetUsers retrieves all users, optionally filtered by role.
func (s *Repository) GetUsers(role string) ([]models.User, error) {
	builder := s.Builder.Select(userColumns).From("users").OrderBy("id")
	if role != "" {
		builder = builder.Where(squirrel.Eq{"role": role})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// GetAdminUsers retrieves all users with the admin role.
func (s *Repository) GetAdminUsers() ([]models.User, error) {
	return s.GetUsers(models.RoleAdmin)
}

// DeleteUser deletes a user by ID. Doctor/patient profile rows cascade.
func (s *Repository) DeleteUser(id int64) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if _, err := s.DB().Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		return err
	}

	s.invalidateUserCache(user.ID, user.Email)
	return nil
}

// DeleteUserByEmail deletes a user by the unique email key. It reports
// whether a row was removed. Used by the admin reset bootstrap mode.
func (s *Repository) DeleteUserByEmail(email string) (bool, error) {
	result, err := s.DB().Exec("DELETE FROM users WHERE email = ?", email)
	if err != nil {
		return false, err
	}
	affected, _ := result.RowsAffected()

	if user, found := s.Cache.Get(fmt.Sprintf("user_by_email_%s", email)); found {
		s.invalidateUserCache(user.(*models.User).ID, email)
	}
	return affected > 0, nil
}

func (s *Repository) invalidateUserCache(id int64, email string) {
	s.Cache.Delete(fmt.Sprintf("user_by_email_%s", email))
	s.Cache.Delete(fmt.Sprintf("user_by_id_%d", id))
}
