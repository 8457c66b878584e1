// filepath: internal/repository/search_repo.go
package repository

import (
	"fmt"

	"dentahub/internal/models"

	"github.com/Masterminds/squirrel"
)

// DefaultSearchLimit is applied when the caller passes limit <= 0.
const DefaultSearchLimit = 50

// GlobalSearch runs three LIKE queries (patients, appointments,
// transactions) and concatenates the tagged results. Each category is
// capped at limit/4 rows; unused capacity is not redistributed. A
// failure in any category aborts the whole search.
func (s *Repository) GlobalSearch(query string, limit int) ([]models.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	perCategory := uint64(limit / 4)
	pattern := "%" + query + "%"

	results := make([]models.SearchResult, 0)

	patients, err := s.searchPatients(pattern, perCategory)
	if err != nil {
		return nil, fmt.Errorf("patient search failed: %w", err)
	}
	results = append(results, patients...)

	appointments, err := s.searchAppointments(pattern, perCategory)
	if err != nil {
		return nil, fmt.Errorf("appointment search failed: %w", err)
	}
	results = append(results, appointments...)

	transactions, err := s.searchTransactions(pattern, perCategory)
	if err != nil {
		return nil, fmt.Errorf("transaction search failed: %w", err)
	}
	results = append(results, transactions...)

	return results, nil
}

func (s *Repository) searchPatients(pattern string, limit uint64) ([]models.SearchResult, error) {
	builder := s.Builder.
		Select("p.id", "p.patient_number", "u.name", "u.email").
		From("patients p").
		Join("users u ON u.id = p.user_id").
		Where(squirrel.Or{
			squirrel.Like{"u.name": pattern},
			squirrel.Like{"u.email": pattern},
			squirrel.Like{"u.phone": pattern},
			squirrel.Like{"p.patient_number": pattern},
		}).
		OrderBy("p.id").
		Limit(limit)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB().Query(sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		var r models.SearchResult
		var email string
		if err := rows.Scan(&r.ID, &r.Number, &r.Title, &email); err != nil {
			return nil, err
		}
		r.Type = "patient"
		r.Subtitle = email
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Repository) searchAppointments(pattern string, limit uint64) ([]models.SearchResult, error) {
	builder := s.Builder.
		Select("a.id", "a.appointment_number", "u.name", "a.date || ' ' || a.time").
		From("appointments a").
		Join("patients p ON p.id = a.patient_id").
		Join("users u ON u.id = p.user_id").
		Where(squirrel.Or{
			squirrel.Like{"a.appointment_number": pattern},
			squirrel.Like{"u.name": pattern},
		}).
		OrderBy("a.id").
		Limit(limit)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB().Query(sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		var r models.SearchResult
		if err := rows.Scan(&r.ID, &r.Number, &r.Title, &r.Subtitle); err != nil {
			return nil, err
		}
		r.Type = "appointment"
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Repository) searchTransactions(pattern string, limit uint64) ([]models.SearchResult, error) {
	builder := s.Builder.
		Select("t.id", "t.transaction_number", "u.name", "t.transaction_type || ' ' || printf('%.2f', t.amount)").
		From("financial_transactions t").
		Join("patients p ON p.id = t.patient_id").
		Join("users u ON u.id = p.user_id").
		Where(squirrel.Or{
			squirrel.Like{"t.transaction_number": pattern},
			squirrel.Like{"u.name": pattern},
		}).
		OrderBy("t.id").
		Limit(limit)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB().Query(sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		var r models.SearchResult
		if err := rows.Scan(&r.ID, &r.Number, &r.Title, &r.Subtitle); err != nil {
			return nil, err
		}
		r.Type = "transaction"
		results = append(results, r)
	}
	return results, rows.Err()
}
