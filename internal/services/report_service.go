// filepath: internal/services/report_service.go
package services

import (
	"fmt"
	"strings"

	"dentahub/internal/models"
	"dentahub/internal/repository"
)

type reportService struct {
	repo *repository.Repository
}

var _ ReportService = (*reportService)(nil)

// NewReportService creates a new ReportService backed by the repository.
func NewReportService(repo *repository.Repository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) GetStats() models.StatsReport {
	return s.repo.TableCounts()
}

func (s *reportService) Search(query string, limit int) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	if limit <= 0 || limit > repository.DefaultSearchLimit {
		limit = repository.DefaultSearchLimit
	}
	return s.repo.GlobalSearch(query, limit)
}

func (s *reportService) GetActivities(limit int) ([]models.ActivityLog, error) {
	return s.repo.GetActivities(limit)
}
