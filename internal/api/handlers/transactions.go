package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvaneerd/investment-tracker-backend/internal/api/request"
	"github.com/mvaneerd/investment-tracker-backend/internal/api/response"
	"github.com/mvaneerd/investment-tracker-backend/internal/service"
	"github.com/mvaneerd/investment-tracker-backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// AllTransactions handles GET requests to retrieve all transactions, sorted
// by date descending. A storage failure degrades to an empty list.
//
// Endpoint: GET /api/transaction
// Response: 200 OK with array of Transaction
func (h *TransactionHandler) AllTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := h.transactionService.ListTransactions(r.Context())
	response.RespondJSON(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST requests to create a new transaction.
// Validates the request body and persists the record with a fresh id.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (date, assetType, ticker, amount, quantity)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to replace all mutable fields of a
// transaction. Updating an id that does not exist is a no-op, not an error.
//
// Endpoint: PUT /api/transaction/{uuid}
// Request Body: UpdateTransactionRequest (all fields required)
// Response: 200 OK with the submitted Transaction
// Error: 400 Bad Request if the id is invalid (validated by middleware) or validation fails
// Error: 500 Internal Server Error if the update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(r.Context(), transactionID, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
// Deleting an id that does not exist is a no-op, so repeated deletes are safe.
//
// Endpoint: DELETE /api/transaction/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the id is invalid (validated by middleware)
// Error: 500 Internal Server Error if the deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if err := h.transactionService.DeleteTransaction(r.Context(), transactionID); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
