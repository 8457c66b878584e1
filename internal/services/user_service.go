// filepath: internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"dentahub/internal/config"
	"dentahub/internal/logging"
	"dentahub/internal/models"
	"dentahub/internal/repository"
)

type userService struct {
	repo *repository.Repository
}

var _ UserService = (*userService)(nil)

// NewUserService creates a new UserService backed by the repository.
func NewUserService(repo *repository.Repository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetUserByEmail(email)
}

func (s *userService) GetUserByID(id int64) (*models.User, error) {
	return s.repo.GetUserByID(id)
}

func (s *userService) GetUsers(role string) ([]models.User, error) {
	return s.repo.GetUsers(role)
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleDoctor, models.RolePatient, models.RoleReceptionist:
		return true
	}
	return false
}

// CreateUser creates an account. Doctor and patient accounts also get an
// empty profile row so that scheduling can reference them immediately.
func (s *userService) CreateUser(payload models.UserCreatePayload) (*models.User, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(payload.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(payload.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if !validRole(payload.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, payload.Role)
	}

	user, err := s.repo.CreateUser(&repository.UserCreateArgs{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
		Role:     payload.Role,
		Gender:   payload.Gender,
		Address:  payload.Address,
	})
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleDoctor:
		if _, err := s.repo.CreateDoctor(&repository.DoctorCreateArgs{UserID: user.ID}); err != nil {
			return nil, fmt.Errorf("create doctor profile: %w", err)
		}
	case models.RolePatient:
		if _, err := s.repo.CreatePatient(&repository.PatientCreateArgs{UserID: user.ID}); err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
	}
	return user, nil
}

func (s *userService) UpdateUser(id int64, payload models.UserUpdatePayload) (*models.User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if payload.Role != nil && *payload.Role != user.Role {
		if !validRole(*payload.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *payload.Role)
		}
		if user.Role == models.RoleAdmin {
			if err := s.ensureNotLastAdmin(user.ID); err != nil {
				return nil, err
			}
		}
		user.Role = *payload.Role
	}
	if payload.Name != nil {
		user.Name = *payload.Name
	}
	if payload.Phone != nil {
		user.Phone = *payload.Phone
	}
	if payload.Gender != nil {
		user.Gender = *payload.Gender
	}
	if payload.Address != nil {
		user.Address = *payload.Address
	}
	user.PasswordHash = ""
	if payload.Password != nil {
		if len(*payload.Password) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
		}
		user.PasswordHash = *payload.Password
	}

	if err := s.repo.UpdateUser(user); err != nil {
		return nil, err
	}
	return s.repo.GetUserByID(id)
}

func (s *userService) DeleteUser(id int64) error {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		if err := s.ensureNotLastAdmin(id); err != nil {
			return err
		}
	}
	return s.repo.DeleteUser(id)
}

// ensureNotLastAdmin fails when id is the only admin account left.
func (s *userService) ensureNotLastAdmin(id int64) error {
	admins, err := s.repo.GetAdminUsers()
	if err != nil {
		return err
	}
	for _, a := range admins {
		if a.ID != id {
			return nil
		}
	}
	return ErrLastAdmin
}

func (s *userService) UpdateUserPassword(email, password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if err := s.repo.UpdateUserPassword(email, password); err != nil {
		return err
	}
	// A changed password revokes every live session for the account.
	if user, err := s.repo.GetUserByEmail(email); err == nil {
		s.repo.DeleteAllRefreshTokensForUser(user.ID)
	}
	return nil
}

// InitializeAdminUser guarantees the canonical administrator account exists
// after startup. Behavior depends on admin.bootstrap_mode:
//
//	"upsert" (default): create the account if missing, otherwise leave it
//	untouched unless a password reset was explicitly requested.
//	"reset": drop and recreate the account with canonical values.
func (s *userService) InitializeAdminUser(cfg *config.Config) error {
	admin := repository.CanonicalAdmin
	if cfg.AdminPassword != "" {
		admin.Password = cfg.AdminPassword
	}

	mode := cfg.Admin.BootstrapMode
	if mode == "" {
		mode = "upsert"
	}

	if mode == "reset" {
		deleted, err := s.repo.DeleteUserByEmail(admin.Email)
		if err != nil {
			return fmt.Errorf("reset admin user: %w", err)
		}
		if deleted {
			logging.Log.WithField("email", admin.Email).Warn("Admin account reset to canonical values")
		}
		_, err = s.repo.CreateUser(&admin)
		return err
	}

	_, err := s.repo.GetUserByEmail(admin.Email)
	if errors.Is(err, repository.ErrNotFound) {
		logging.Log.WithField("email", admin.Email).Info("Creating admin account")
		_, err = s.repo.CreateUser(&admin)
		return err
	}
	if err != nil {
		return err
	}

	if cfg.ResetAdminPassword {
		logging.Log.WithField("email", admin.Email).Warn("Resetting admin password on request")
		return s.repo.UpdateUserPassword(admin.Email, admin.Password)
	}
	return nil
}
