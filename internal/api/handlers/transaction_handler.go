// filepath: internal/api/handlers/transaction_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dentahub/internal/models"
)

// @Summary Create financial transaction
// @Tags Finance
// @Accept json
// @Produce json
// @Param transaction body models.TransactionCreatePayload true "New transaction"
// @Success 201 {object} models.FinancialTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Patient not found"
// @Router /transaction [post]
// @Security BearerAuth
func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload models.TransactionCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.Finance.CreateTransaction(payload)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "transaction.create", "transaction", &txn.ID, nil, txn)
	respondWithJSON(w, http.StatusCreated, txn)
}

// @Summary List financial transactions
// @Description List transactions, optionally filtered by patient.
// @Tags Finance
// @Produce json
// @Param patient_id query int false "Filter by patient ID"
// @Success 200 {array} models.FinancialTransaction
// @Failure 500 {object} ErrorResponse
// @Router /transactions [get]
// @Security BearerAuth
func (h *Handlers) GetTransactions(w http.ResponseWriter, r *http.Request) {
	var patientID int64
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			patientID = id
		}
	}

	txns, err := h.Finance.GetTransactions(patientID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, txns)
}

// @Summary Get financial transaction
// @Tags Finance
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.FinancialTransaction
// @Failure 404 {object} ErrorResponse
// @Router /transaction/{id} [get]
// @Security BearerAuth
func (h *Handlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}
	txn, err := h.Finance.GetTransaction(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, txn)
}

// @Summary Update payment status
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param status body statusUpdateRequest true "Target payment status"
// @Success 200 {object} models.FinancialTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transaction/{id}/status [patch]
// @Security BearerAuth
func (h *Handlers) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	before, err := h.Finance.GetTransaction(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	txn, err := h.Finance.UpdateTransactionStatus(id, req.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.Audit.Log(r.Context(), currentUserID(r), "transaction.status", "transaction", &id, before, txn)
	respondWithJSON(w, http.StatusOK, txn)
}
