package transfers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerkit/transfer-service/pkg/api"
	"github.com/ledgerkit/transfer-service/pkg/ledger"
	"github.com/ledgerkit/transfer-service/pkg/mapping"
)

// TransfersHandler holds the dependencies for transfer-related handlers.
type TransfersHandler struct {
	Service ledger.Service
}

// NewTransfersHandler creates a new TransfersHandler.
func NewTransfersHandler(service ledger.Service) *TransfersHandler {
	return &TransfersHandler{Service: service}
}

// RegisterRoutes mounts the transfer endpoints on the router.
func (h *TransfersHandler) RegisterRoutes(r chi.Router) {
	r.Post("/transfers", h.CreateTransfer)
	r.Get("/transfers/{transactionId}", h.GetTransferById)
	r.Post("/transfers/{transactionId}/reverse", h.ReverseTransferById)
	r.Get("/accounts/{accountId}/transfers", h.ListTransfersByAccountId)
}

// CreateTransfer handles the logic for moving value between two accounts.
func (h *TransfersHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var newTransfer api.NewTransfer
	if err := json.NewDecoder(r.Body).Decode(&newTransfer); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	createdTx, err := h.Service.Transfer(r.Context(), newTransfer.SenderID, newTransfer.ReceiverID, newTransfer.AmountInCents, newTransfer.Description)
	if err != nil {
		writeDomainError(w, err, "Failed to create transfer")
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiTransaction(createdTx))
}

// GetTransferById handles the logic for retrieving a transfer by its ID.
func (h *TransfersHandler) GetTransferById(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")

	view, err := h.Service.GetTransfer(r.Context(), transactionID)
	if err != nil {
		writeDomainError(w, err, "Failed to retrieve transfer")
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiTransferView(view))
}

// ReverseTransferById handles the logic for undoing a completed transfer.
func (h *TransfersHandler) ReverseTransferById(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")

	var reverse api.ReverseTransfer
	if err := json.NewDecoder(r.Body).Decode(&reverse); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	reversedTx, err := h.Service.Reverse(r.Context(), transactionID, reverse.RequesterID, reverse.Reason)
	if err != nil {
		writeDomainError(w, err, "Failed to reverse transfer")
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiTransaction(reversedTx))
}

// ListTransfersByAccountId handles the logic for retrieving all transfers an
// account took part in.
func (h *TransfersHandler) ListTransfersByAccountId(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")

	views, err := h.Service.ListTransfersForAccount(r.Context(), accountID)
	if err != nil {
		writeDomainError(w, err, "Failed to retrieve transfers")
		return
	}

	apiViews := make([]*api.TransferView, len(views))
	for i := range views {
		apiViews[i] = mapping.ToApiTransferView(&views[i])
	}

	writeJSON(w, http.StatusOK, apiViews)
}

// writeDomainError maps the engine's error kinds to HTTP statuses. The
// engine's messages are already user-facing, so they go out verbatim.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ledger.ErrInvalidOperation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ledger.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error(fallback, "error", err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
