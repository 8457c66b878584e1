// filepath: internal/services/finance_service.go
package services

import (
	"fmt"

	"dentahub/internal/models"
	"dentahub/internal/repository"
)

type financeService struct {
	repo *repository.Repository
}

var _ FinanceService = (*financeService)(nil)

// NewFinanceService creates a new FinanceService backed by the repository.
func NewFinanceService(repo *repository.Repository) FinanceService {
	return &financeService{repo: repo}
}

func (s *financeService) CreateTransaction(payload models.TransactionCreatePayload) (*models.FinancialTransaction, error) {
	if payload.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if payload.TransactionType != models.TransactionPayment && payload.TransactionType != models.TransactionCharge {
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, payload.TransactionType)
	}
	if payload.PaymentStatus == "" {
		payload.PaymentStatus = models.PaymentPending
	}
	if payload.PaymentStatus != models.PaymentPending && payload.PaymentStatus != models.PaymentCompleted {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, payload.PaymentStatus)
	}
	if _, err := s.repo.GetPatient(payload.PatientID); err != nil {
		return nil, fmt.Errorf("patient %d: %w", payload.PatientID, err)
	}
	return s.repo.CreateTransaction(&payload)
}

func (s *financeService) GetTransaction(id int64) (*models.FinancialTransaction, error) {
	return s.repo.GetTransaction(id)
}

func (s *financeService) GetTransactions(patientID int64) ([]models.FinancialTransaction, error) {
	return s.repo.GetTransactions(patientID)
}

func (s *financeService) UpdateTransactionStatus(id int64, status string) (*models.FinancialTransaction, error) {
	if status != models.PaymentPending && status != models.PaymentCompleted {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}
	if err := s.repo.UpdateTransactionStatus(id, status); err != nil {
		return nil, err
	}
	return s.repo.GetTransaction(id)
}
