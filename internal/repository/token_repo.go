// filepath: internal/repository/token_repo.go
package repository

import (
	"database/sql"
	"errors"
	"time"

	"dentahub/internal/logging"
)

// ErrTokenNotFound is returned when a refresh token hash is not in the
// allow-list (revoked, expired and pruned, or never issued).
var ErrTokenNotFound = errors.New("refresh token not found")

// StoreRefreshToken records the hash of an issued refresh token.
func (s *Repository) StoreRefreshToken(userID int64, tokenHash string, expiry time.Time) error {
	_, err := s.DB().Exec(
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?, ?, ?)",
		userID, tokenHash, expiry.UTC(),
	)
	return err
}

// ValidateRefreshToken looks up a token hash and returns the owning
// user ID. Expired rows are treated as absent.
func (s *Repository) ValidateRefreshToken(tokenHash string) (int64, error) {
	var userID int64
	var expiresAt time.Time
	err := s.DB().QueryRow(
		"SELECT user_id, expires_at FROM refresh_tokens WHERE token_hash = ?",
		tokenHash,
	).Scan(&userID, &expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrTokenNotFound
		}
		return 0, err
	}
	if time.Now().After(expiresAt) {
		// Lazy cleanup; the maintenance worker prunes the rest.
		s.DeleteRefreshToken(tokenHash)
		return 0, ErrTokenNotFound
	}
	return userID, nil
}

// DeleteRefreshToken removes a single token hash (logout).
func (s *Repository) DeleteRefreshToken(tokenHash string) error {
	_, err := s.DB().Exec("DELETE FROM refresh_tokens WHERE token_hash = ?", tokenHash)
	return err
}

// DeleteAllRefreshTokensForUser revokes every session of a user.
func (s *Repository) DeleteAllRefreshTokensForUser(userID int64) {
	if _, err := s.DB().Exec("DELETE FROM refresh_tokens WHERE user_id = ?", userID); err != nil {
		logging.Log.Warnf("Failed to revoke refresh tokens for user %d: %v", userID, err)
	}
}

// PruneExpiredRefreshTokens removes rows past their expiry and returns
// how many were deleted.
func (s *Repository) PruneExpiredRefreshTokens() (int, error) {
	result, err := s.DB().Exec("DELETE FROM refresh_tokens WHERE expires_at < ?", time.Now().UTC())
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return int(affected), nil
}
