package transfers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ledgerkit/transfer-service/pkg/api"
	"github.com/ledgerkit/transfer-service/pkg/ledger"
	ledger_mocks "github.com/ledgerkit/transfer-service/pkg/ledger/mocks"
	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service ledger.Service) http.Handler {
	router := chi.NewRouter()
	NewTransfersHandler(service).RegisterRoutes(router)
	return router
}

func TestCreateTransfer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		createdTx := &models.Transaction{
			ID:            uuid.New().String(),
			SenderID:      "a1",
			ReceiverID:    "b2",
			AmountInCents: 500,
			Status:        models.COMPLETED,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		mockService.On("Transfer", mock.Anything, "a1", "b2", int64(500), "rent").Return(createdTx, nil)

		body, _ := json.Marshal(api.NewTransfer{SenderID: "a1", ReceiverID: "b2", AmountInCents: 500, Description: "rent"})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got api.Transaction
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, createdTx.ID, got.ID)
		assert.Equal(t, api.TransactionStatus("COMPLETED"), got.Status)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		router := newTestRouter(ledger_mocks.NewService(t))

		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader([]byte("not json")))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Self Transfer", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		mockService.On("Transfer", mock.Anything, "a1", "a1", int64(100), "").
			Return(nil, &ledger.Error{Kind: ledger.ErrInvalidOperation, Message: "Cannot transfer to yourself"})

		body, _ := json.Marshal(api.NewTransfer{SenderID: "a1", ReceiverID: "a1", AmountInCents: 100})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Cannot transfer to yourself")
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		mockService.On("Transfer", mock.Anything, "a1", "b2", int64(10000), "").
			Return(nil, &ledger.Error{Kind: ledger.ErrInsufficientFunds, Message: "Insufficient balance"})

		body, _ := json.Marshal(api.NewTransfer{SenderID: "a1", ReceiverID: "b2", AmountInCents: 10000})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Lock Conflict", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		mockService.On("Transfer", mock.Anything, "a1", "b2", int64(100), "").
			Return(nil, &ledger.Error{Kind: ledger.ErrConflict, Message: "Transfer aborted by a lock conflict, try again"})

		body, _ := json.Marshal(api.NewTransfer{SenderID: "a1", ReceiverID: "b2", AmountInCents: 100})
		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestGetTransferById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		view := &models.TransferView{
			Transaction: models.Transaction{ID: "tx-1", SenderID: "a1", ReceiverID: "b2", AmountInCents: 500, Status: models.COMPLETED},
			Sender:      models.AccountSummary{ID: "a1", Email: "a@example.com", Name: "Alice"},
			Receiver:    models.AccountSummary{ID: "b2", Email: "b@example.com", Name: "Bob"},
		}
		mockService.On("GetTransfer", mock.Anything, "tx-1").Return(view, nil)

		req := httptest.NewRequest(http.MethodGet, "/transfers/tx-1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.TransferView
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "Alice", got.Sender.Name)
		assert.Equal(t, "Bob", got.Receiver.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		mockService.On("GetTransfer", mock.Anything, "missing").
			Return(nil, &ledger.Error{Kind: ledger.ErrNotFound, Message: "Transaction not found"})

		req := httptest.NewRequest(http.MethodGet, "/transfers/missing", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReverseTransferById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		reversedTx := &models.Transaction{ID: "tx-1", SenderID: "a1", ReceiverID: "b2", Status: models.REVERSED, ReversalReason: "Requested by user"}
		mockService.On("Reverse", mock.Anything, "tx-1", "a1", "").Return(reversedTx, nil)

		body, _ := json.Marshal(api.ReverseTransfer{RequesterID: "a1"})
		req := httptest.NewRequest(http.MethodPost, "/transfers/tx-1/reverse", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.Transaction
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, api.TransactionStatus("REVERSED"), got.Status)
		assert.Equal(t, "Requested by user", got.ReversalReason)
	})

	t.Run("Forbidden", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		mockService.On("Reverse", mock.Anything, "tx-1", "c3", "").
			Return(nil, &ledger.Error{Kind: ledger.ErrForbidden, Message: "You can only reverse your own transactions"})

		body, _ := json.Marshal(api.ReverseTransfer{RequesterID: "c3"})
		req := httptest.NewRequest(http.MethodPost, "/transfers/tx-1/reverse", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Already Reversed", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		mockService.On("Reverse", mock.Anything, "tx-1", "a1", "").
			Return(nil, &ledger.Error{Kind: ledger.ErrInvalidOperation, Message: "Only completed transactions can be reversed"})

		body, _ := json.Marshal(api.ReverseTransfer{RequesterID: "a1"})
		req := httptest.NewRequest(http.MethodPost, "/transfers/tx-1/reverse", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListTransfersByAccountId(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		views := []models.TransferView{
			{Transaction: models.Transaction{ID: "tx-2", SenderID: "a1", ReceiverID: "b2"}},
			{Transaction: models.Transaction{ID: "tx-1", SenderID: "b2", ReceiverID: "a1"}},
		}
		mockService.On("ListTransfersForAccount", mock.Anything, "a1").Return(views, nil)

		req := httptest.NewRequest(http.MethodGet, "/accounts/a1/transfers", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []api.TransferView
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, "tx-2", got[0].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		mockService := ledger_mocks.NewService(t)
		router := newTestRouter(mockService)

		mockService.On("ListTransfersForAccount", mock.Anything, "lonely").Return([]models.TransferView{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/accounts/lonely/transfers", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}
