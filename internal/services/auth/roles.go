// filepath: internal/services/auth/roles.go
package auth

import "dentahub/internal/models"

// RoleStaff is granted in addition to the account's own role for every
// clinic employee, so that routes shared between doctors, receptionists
// and admins need a single check.
const RoleStaff = "staff"

// getUserRoles retrieves the effective roles for a given user.
func getUserRoles(user *models.User) []string {
	roles := []string{user.Role}
	switch user.Role {
	case models.RoleAdmin, models.RoleDoctor, models.RoleReceptionist:
		roles = append(roles, RoleStaff)
	}
	return roles
}
