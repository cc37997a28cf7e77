package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type PumpView struct {
	ID             uuid.UUID  `json:"id"`
	PumpNo         string     `json:"pump_no"`
	PumpName       string     `json:"pump_name"`
	IsShiftOpen    bool       `json:"is_shift_open"`
	CurrentShiftID *uuid.UUID `json:"current_shift_id,omitempty"`
}

type ShiftTemplateView struct {
	ID        uuid.UUID `json:"id"`
	ShiftName string    `json:"shift_name"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Username string    `json:"username"`
	MobileNo string    `json:"mobile_no"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// AuthorizedUserView carries what the auth middleware and login flow need.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// SaleReportRow is a sale denormalized across pump, attendant and shift
// template for report rendering.
type SaleReportRow struct {
	ID               uuid.UUID       `json:"sale_id"`
	SaleRef          string          `json:"sale_ref"`
	Amount           decimal.Decimal `json:"amount"`
	SaleTime         time.Time       `json:"sale_time"`
	CustomerMobileNo *string         `json:"customer_mobile_no,omitempty"`
	ReceiptCode      *string         `json:"receipt_code,omitempty"`
	Status           string          `json:"status"`
	PumpNo           string          `json:"pump_no"`
	PumpName         string          `json:"pump_name"`
	ShiftName        string          `json:"shift_name"`
	AttendantName    string          `json:"attendant_name"`
}

// SaleReportFilter narrows the report; nil fields are unconstrained.
// MobileNo matches by substring containment, not prefix.
type SaleReportFilter struct {
	PumpID      *uuid.UUID
	AttendantID *uuid.UUID
	MobileNo    *string
	ShiftID     *uuid.UUID
}

type FilterOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PumpFilterOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	No   string    `json:"no"`
}

type FilterOptions struct {
	Attendants []FilterOption     `json:"attendants"`
	Pumps      []PumpFilterOption `json:"pumps"`
	Shifts     []FilterOption     `json:"shifts"`
}
