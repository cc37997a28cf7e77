package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("payment amount must be positive")
	ErrInvalidMobileNo = errors.New("payment mobile number is required")
	ErrAlreadyResolved = errors.New("payment transaction is already resolved")
	ErrNotResolved     = errors.New("payment transaction is not resolved")
)

const (
	// Request acceptance codes returned synchronously by the provider.
	ResponseCodeAccepted        = "0"
	ResponseDescriptionAccepted = "Success. Request accepted for processing."
)

// Transaction models one mobile-money request/callback cycle. The request
// half is written at initiation; the result half is written exactly once
// when the simulated callback lands, and is immutable afterwards.
type Transaction struct {
	id                  uuid.UUID
	saleID              *uuid.UUID
	mobileNo            string
	amount              decimal.Decimal
	requestTime         time.Time
	checkoutRequestID   uuid.UUID
	merchantRequestID   uuid.UUID
	responseCode        string
	responseDescription string
	resultCode          *string
	resultDescription   *string
	receiptNumber       *string
}

func NewTransaction(mobileNo string, amount decimal.Decimal, now time.Time) (*Transaction, error) {
	if mobileNo == "" {
		return nil, ErrInvalidMobileNo
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return &Transaction{
		id:                  uuid.New(),
		mobileNo:            mobileNo,
		amount:              amount,
		requestTime:         now,
		checkoutRequestID:   uuid.New(),
		merchantRequestID:   uuid.New(),
		responseCode:        ResponseCodeAccepted,
		responseDescription: ResponseDescriptionAccepted,
	}, nil
}

func ReconstructTransaction(
	id uuid.UUID,
	saleID *uuid.UUID,
	mobileNo string,
	amount decimal.Decimal,
	requestTime time.Time,
	checkoutRequestID, merchantRequestID uuid.UUID,
	responseCode, responseDescription string,
	resultCode, resultDescription, receiptNumber *string,
) *Transaction {
	return &Transaction{
		id:                  id,
		saleID:              saleID,
		mobileNo:            mobileNo,
		amount:              amount,
		requestTime:         requestTime,
		checkoutRequestID:   checkoutRequestID,
		merchantRequestID:   merchantRequestID,
		responseCode:        responseCode,
		responseDescription: responseDescription,
		resultCode:          resultCode,
		resultDescription:   resultDescription,
		receiptNumber:       receiptNumber,
	}
}

// Resolve writes the result fields. It fails once they are set; persistence
// additionally guards the write with a compare-and-swap on result_code.
func (t *Transaction) Resolve(outcome Outcome, receipts ReceiptGenerator) error {
	if t.IsResolved() {
		return ErrAlreadyResolved
	}

	code := outcome.ResultCode()
	desc := outcome.ResultDescription()
	t.resultCode = &code
	t.resultDescription = &desc
	if outcome.IsSuccess() {
		receipt := receipts.Generate()
		t.receiptNumber = &receipt
	}
	return nil
}

func (t *Transaction) IsResolved() bool {
	return t.resultCode != nil
}

// Outcome maps the stored result code back to the settlement outcome.
func (t *Transaction) Outcome() (Outcome, error) {
	if !t.IsResolved() {
		return "", ErrNotResolved
	}
	switch *t.resultCode {
	case "0":
		return OutcomeSuccess, nil
	case "1001":
		return OutcomeInsufficientFunds, nil
	case "1032":
		return OutcomeCancelled, nil
	default:
		return OutcomeOtherError, nil
	}
}

func (t *Transaction) LinkSale(saleID uuid.UUID) {
	t.saleID = &saleID
}

func (t *Transaction) ID() uuid.UUID               { return t.id }
func (t *Transaction) SaleID() *uuid.UUID          { return t.saleID }
func (t *Transaction) MobileNo() string            { return t.mobileNo }
func (t *Transaction) Amount() decimal.Decimal     { return t.amount }
func (t *Transaction) RequestTime() time.Time      { return t.requestTime }
func (t *Transaction) CheckoutRequestID() uuid.UUID { return t.checkoutRequestID }
func (t *Transaction) MerchantRequestID() uuid.UUID { return t.merchantRequestID }
func (t *Transaction) ResponseCode() string        { return t.responseCode }
func (t *Transaction) ResponseDescription() string { return t.responseDescription }
func (t *Transaction) ResultCode() *string         { return t.resultCode }
func (t *Transaction) ResultDescription() *string  { return t.resultDescription }
func (t *Transaction) ReceiptNumber() *string      { return t.receiptNumber }
