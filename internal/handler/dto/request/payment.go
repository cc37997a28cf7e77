package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StkPushRequest carries one pump-side checkout: the customer's mobile
// money prompt plus the sale it settles. The attendant comes from the
// authenticated session, never from the body.
type StkPushRequest struct {
	MobileNo    string          `json:"mobile_no" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	SaleRef     string          `json:"sale_ref" binding:"required"`
	PumpShiftID uuid.UUID       `json:"pump_shift_id" binding:"required"`
}
