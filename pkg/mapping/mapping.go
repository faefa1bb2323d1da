package mapping

import (
	"github.com/ledgerkit/transfer-service/pkg/api"
	"github.com/ledgerkit/transfer-service/pkg/models"
)

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		ID:             tx.ID,
		SenderID:       tx.SenderID,
		ReceiverID:     tx.ReceiverID,
		AmountInCents:  tx.AmountInCents,
		Description:    tx.Description,
		Status:         api.TransactionStatus(tx.Status),
		ReversalReason: tx.ReversalReason,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
}

// ToApiTransferView converts a domain TransferView to its API model.
func ToApiTransferView(view *models.TransferView) *api.TransferView {
	return &api.TransferView{
		Transaction: *ToApiTransaction(&view.Transaction),
		Sender:      ToApiAccountSummary(view.Sender),
		Receiver:    ToApiAccountSummary(view.Receiver),
	}
}

// ToApiAccountSummary converts a domain AccountSummary to its API model.
func ToApiAccountSummary(summary models.AccountSummary) api.AccountSummary {
	return api.AccountSummary{
		ID:    summary.ID,
		Email: summary.Email,
		Name:  summary.Name,
	}
}
