package repository

import (
	"context"
	"time"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, t *payment.Transaction) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO payment_transactions
		     (id, mobile_no, amount, request_time, checkout_request_id, merchant_request_id,
		      response_code, response_description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID(), t.MobileNo(), t.Amount(), t.RequestTime(),
		t.CheckoutRequestID(), t.MerchantRequestID(),
		t.ResponseCode(), t.ResponseDescription(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment transaction", err)
	}
	return t.ID(), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*payment.Transaction, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT id, sale_id, mobile_no, amount, request_time, checkout_request_id,
		        merchant_request_id, response_code, response_description,
		        result_code, result_description, receipt_number
		 FROM payment_transactions
		 WHERE id = $1`,
		id,
	)

	var (
		txID                                 uuid.UUID
		saleID                               pgtype.UUID
		mobileNo                             string
		amount                               pgtype.Numeric
		requestTime                          time.Time
		checkoutRequestID, merchantRequestID uuid.UUID
		responseCode, responseDescription    string
		resultCode, resultDescription        pgtype.Text
		receiptNumber                        pgtype.Text
	)
	err := row.Scan(
		&txID, &saleID, &mobileNo, &amount, &requestTime, &checkoutRequestID,
		&merchantRequestID, &responseCode, &responseDescription,
		&resultCode, &resultDescription, &receiptNumber,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment transaction", err)
	}

	return payment.ReconstructTransaction(
		txID,
		pgconv.UUIDPtrFromPgtype(saleID),
		mobileNo,
		pgconv.DecimalFromNumeric(amount),
		requestTime,
		checkoutRequestID, merchantRequestID,
		responseCode, responseDescription,
		pgconv.StringPtrFromPgtype(resultCode),
		pgconv.StringPtrFromPgtype(resultDescription),
		pgconv.StringPtrFromPgtype(receiptNumber),
	), nil
}

// StoreResult writes the callback result exactly once. The WHERE result_code
// IS NULL guard is the write-once invariant; zero rows means some other
// resolution got there first and the stored result stands.
func (r *PaymentRepository) StoreResult(ctx context.Context, dbtx db.DBTX, t *payment.Transaction) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE payment_transactions
		 SET result_code = $2, result_description = $3, receipt_number = $4
		 WHERE id = $1 AND result_code IS NULL`,
		t.ID(), t.ResultCode(), t.ResultDescription(), t.ReceiptNumber(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to store payment result", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment transaction already resolved", nil, infra.KindConflict)
	}
	return nil
}

// LinkSale back-links the transaction to the sale it produced. Runs in the
// same transaction as the sale insert.
func (r *PaymentRepository) LinkSale(ctx context.Context, dbtx db.DBTX, paymentID, saleID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE payment_transactions SET sale_id = $2 WHERE id = $1`,
		paymentID, saleID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to link payment to sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment transaction not found", nil, infra.KindNotFound)
	}
	return nil
}
