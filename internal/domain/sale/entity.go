package sale

import (
	"errors"
	"strings"
	"time"

	"fuelpos/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("sale amount must be positive")
	ErrEmptySaleRef  = errors.New("sale reference is required")
	ErrInvalidStatus = errors.New("invalid transaction status")
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}

// StatusFromOutcome maps a settlement outcome to the sale status stored on
// the record.
func StatusFromOutcome(o payment.Outcome) Status {
	if o.IsSuccess() {
		return StatusSuccess
	}
	return StatusFailed
}

// Record is one point-of-sale entry. It is immutable once written except for
// a late receipt-code backfill, and always references the pump shift it was
// made under; the pump is derived from that shift, never from the caller.
type Record struct {
	id               uuid.UUID
	saleRef          string
	pumpShiftID      uuid.UUID
	pumpID           uuid.UUID
	attendantID      uuid.UUID
	saleTime         time.Time
	amount           decimal.Decimal
	customerMobileNo *string
	receiptCode      *string
	status           Status
}

func NewRecord(
	saleRef string,
	pumpShiftID, pumpID, attendantID uuid.UUID,
	amount decimal.Decimal,
	customerMobileNo *string,
	receiptCode *string,
	status Status,
	now time.Time,
) (*Record, error) {
	saleRef = strings.TrimSpace(saleRef)
	if saleRef == "" {
		return nil, ErrEmptySaleRef
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Record{
		id:               uuid.New(),
		saleRef:          saleRef,
		pumpShiftID:      pumpShiftID,
		pumpID:           pumpID,
		attendantID:      attendantID,
		saleTime:         now,
		amount:           amount,
		customerMobileNo: customerMobileNo,
		receiptCode:      receiptCode,
		status:           status,
	}, nil
}

func ReconstructRecord(
	id uuid.UUID,
	saleRef string,
	pumpShiftID, pumpID, attendantID uuid.UUID,
	saleTime time.Time,
	amount decimal.Decimal,
	customerMobileNo, receiptCode *string,
	status Status,
) *Record {
	return &Record{
		id:               id,
		saleRef:          saleRef,
		pumpShiftID:      pumpShiftID,
		pumpID:           pumpID,
		attendantID:      attendantID,
		saleTime:         saleTime,
		amount:           amount,
		customerMobileNo: customerMobileNo,
		receiptCode:      receiptCode,
		status:           status,
	}
}

func (r *Record) ID() uuid.UUID             { return r.id }
func (r *Record) SaleRef() string           { return r.saleRef }
func (r *Record) PumpShiftID() uuid.UUID    { return r.pumpShiftID }
func (r *Record) PumpID() uuid.UUID         { return r.pumpID }
func (r *Record) AttendantID() uuid.UUID    { return r.attendantID }
func (r *Record) SaleTime() time.Time       { return r.saleTime }
func (r *Record) Amount() decimal.Decimal   { return r.amount }
func (r *Record) CustomerMobileNo() *string { return r.customerMobileNo }
func (r *Record) ReceiptCode() *string      { return r.receiptCode }
func (r *Record) Status() Status            { return r.status }
