package response

import (
	"github.com/google/uuid"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/domain/sale"
)

type StkPushResponse struct {
	Status             string    `json:"status"`
	Message            string    `json:"message"`
	TransactionStatus  string    `json:"transaction_status"`
	ResultDescription  string    `json:"result_description"`
	SaleID             uuid.UUID `json:"sale_id"`
	MpesaReceiptNumber *string   `json:"mpesa_receipt_number"`
}

func NewStkPushResponse(resolved *payment.Transaction, outcome payment.Outcome, saleID uuid.UUID) StkPushResponse {
	resultDescription := ""
	if d := resolved.ResultDescription(); d != nil {
		resultDescription = *d
	}
	return StkPushResponse{
		Status:             "success",
		Message:            "STK Push initiated and transaction simulated.",
		TransactionStatus:  sale.StatusFromOutcome(outcome).String(),
		ResultDescription:  resultDescription,
		SaleID:             saleID,
		MpesaReceiptNumber: resolved.ReceiptNumber(),
	}
}
