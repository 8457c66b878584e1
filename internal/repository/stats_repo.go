// filepath: internal/repository/stats_repo.go
package repository

import (
	"fmt"

	"dentahub/internal/logging"
	"dentahub/internal/models"
)

// statsTables is the fixed list of tables the dashboard reports on.
var statsTables = []string{
	"users",
	"doctors",
	"patients",
	"services",
	"appointments",
	"financial_transactions",
	"activity_logs",
	"backups",
}

// TableCounts returns a row count per known table. A failing table is
// reported as 0 instead of failing the whole report, so one missing or
// renamed table cannot take down the dashboard.
func (s *Repository) TableCounts() models.StatsReport {
	report := make(models.StatsReport, len(statsTables))
	for _, table := range statsTables {
		var count int
		// Table names come from the fixed list above, never from input.
		err := s.DB().QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %q", table)).Scan(&count)
		if err != nil {
			logging.Log.Warnf("Stats: failed to count table %s: %v", table, err)
			count = 0
		}
		report[table] = count
	}
	return report
}
