// filepath: internal/repository/service_repo.go
package repository

import (
	"database/sql"

	"dentahub/internal/models"
)

// GetServices retrieves the dental service catalogue.
func (s *Repository) GetServices() ([]models.Service, error) {
	rows, err := s.DB().Query("SELECT id, name, description, price, duration_min FROM services ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &svc.DurationMin); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

// GetService retrieves one catalogue entry.
func (s *Repository) GetService(id int64) (*models.Service, error) {
	var svc models.Service
	err := s.DB().QueryRow("SELECT id, name, description, price, duration_min FROM services WHERE id = ?", id).
		Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &svc.DurationMin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}
