// filepath: internal/repository/transaction_repo.go
package repository

import (
	"database/sql"
	"fmt"

	"dentahub/internal/models"

	"github.com/Masterminds/squirrel"
)

const transactionColumns = `t.id, t.transaction_number, t.patient_id, t.transaction_type,
		t.amount, t.payment_method, t.payment_status, t.description, t.created_at, u.name`

const transactionJoins = `financial_transactions t
		JOIN patients p ON p.id = t.patient_id
		JOIN users u ON u.id = p.user_id`

func scanTransaction(row interface{ Scan(...interface{}) error }) (*models.FinancialTransaction, error) {
	var txn models.FinancialTransaction
	err := row.Scan(&txn.ID, &txn.TransactionNumber, &txn.PatientID, &txn.TransactionType,
		&txn.Amount, &txn.PaymentMethod, &txn.PaymentStatus, &txn.Description, &txn.CreatedAt,
		&txn.PatientName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// CreateTransaction inserts a financial transaction with a generated number.
func (s *Repository) CreateTransaction(payload *models.TransactionCreatePayload) (*models.FinancialTransaction, error) {
	query := `
		INSERT INTO financial_transactions (transaction_number, patient_id, transaction_type, amount, payment_method, payment_status, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.DB().Exec(query, newNumber("TXN"), payload.PatientID, payload.TransactionType,
		payload.Amount, payload.PaymentMethod, payload.PaymentStatus, payload.Description)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetTransaction(id)
}

// GetTransaction retrieves one transaction with the patient name joined in.
func (s *Repository) GetTransaction(id int64) (*models.FinancialTransaction, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE t.id = ?", transactionColumns, transactionJoins)
	return scanTransaction(s.DB().QueryRow(query, id))
}

// GetTransactions retrieves transactions, optionally for one patient,
// newest first.
func (s *Repository) GetTransactions(patientID int64) ([]models.FinancialTransaction, error) {
	builder := s.Builder.
		Select(transactionColumns).
		From(transactionJoins).
		OrderBy("t.created_at DESC", "t.id DESC")
	if patientID != 0 {
		builder = builder.Where(squirrel.Eq{"t.patient_id": patientID})
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

	transactions := make([]models.FinancialTransaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}

// UpdateTransactionStatus moves a transaction to a new payment status.
func (s *Repository) UpdateTransactionStatus(id int64, status string) error {
	result, err := s.DB().Exec("UPDATE financial_transactions SET payment_status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
