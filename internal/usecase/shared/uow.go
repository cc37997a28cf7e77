package shared

import (
	"context"

	"github.com/google/uuid"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/domain/sale"
	"fuelpos/internal/domain/shift"
	"fuelpos/internal/domain/user"
	"fuelpos/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	PumpShifts() PumpShiftRepository
	Payments() PaymentRepository
	Sales() SaleRepository
	Users() UserRepository
	Settings() SettingRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PumpByID(ctx context.Context, id uuid.UUID) (*PumpSnapshot, error)
	ShiftTemplateByID(ctx context.Context, id uuid.UUID) (*ShiftTemplateSnapshot, error)
	PumpShiftByID(ctx context.Context, id uuid.UUID) (*PumpShiftSnapshot, error)
}

// Minimal snapshots for command-side validation
type PumpSnapshot struct {
	ID       uuid.UUID
	PumpNo   string
	PumpName string
	IsActive bool
}

type ShiftTemplateSnapshot struct {
	ID        uuid.UUID
	ShiftName string
}

type PumpShiftSnapshot struct {
	ID                 uuid.UUID
	PumpID             uuid.UUID
	ShiftID            uuid.UUID
	OpeningAttendantID uuid.UUID
	IsClosed           bool
}

type PumpShiftRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *shift.PumpShift) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shift.PumpShift, error)
	Close(ctx context.Context, dbtx db.DBTX, s *shift.PumpShift) error
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, t *payment.Transaction) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*payment.Transaction, error)
	StoreResult(ctx context.Context, dbtx db.DBTX, t *payment.Transaction) error
	LinkSale(ctx context.Context, dbtx db.DBTX, paymentID, saleID uuid.UUID) error
}

type SaleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rec *sale.Record) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error
}

type SettingRepository interface {
	Get(ctx context.Context, dbtx db.DBTX, key string) (string, error)
	Set(ctx context.Context, dbtx db.DBTX, key, value string) error
	All(ctx context.Context, dbtx db.DBTX) (map[string]string, error)
}
