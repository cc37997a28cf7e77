//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/domain/sale"
	"fuelpos/internal/domain/shift"
	"fuelpos/internal/domain/user"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/usecase/queries"
	"fuelpos/internal/usecase/shared"
)

// txFixture bundles one mock per repository port plus a unit of work whose
// Within simply invokes the callback against those mocks.
type txFixture struct {
	pumpShifts *mockPumpShiftRepo
	payments   *mockPaymentRepo
	sales      *mockSaleRepo
	users      *mockUserRepo
	settings   *mockSettingRepo
	reads      *mockCommandReads
}

func newTxFixture() *txFixture {
	return &txFixture{
		pumpShifts: &mockPumpShiftRepo{},
		payments:   &mockPaymentRepo{},
		sales:      &mockSaleRepo{},
		users:      &mockUserRepo{},
		settings:   &mockSettingRepo{},
		reads:      &mockCommandReads{},
	}
}

func (f *txFixture) uow() shared.UnitOfWork {
	return &stubUoW{f: f}
}

func (f *txFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.pumpShifts.AssertExpectations(t)
	f.payments.AssertExpectations(t)
	f.sales.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.settings.AssertExpectations(t)
	f.reads.AssertExpectations(t)
}

type stubUoW struct {
	f *txFixture
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &stubTx{f: u.f})
}

type stubTx struct {
	f *txFixture
}

func (t *stubTx) PumpShifts() shared.PumpShiftRepository { return t.f.pumpShifts }
func (t *stubTx) Payments() shared.PaymentRepository     { return t.f.payments }
func (t *stubTx) Sales() shared.SaleRepository           { return t.f.sales }
func (t *stubTx) Users() shared.UserRepository           { return t.f.users }
func (t *stubTx) Settings() shared.SettingRepository     { return t.f.settings }
func (t *stubTx) Reads() shared.CommandReads             { return t.f.reads }
func (t *stubTx) DB() db.DBTX                            { return nil }

type mockCommandReads struct {
	mock.Mock
}

func (m *mockCommandReads) PumpByID(ctx context.Context, id uuid.UUID) (*shared.PumpSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.PumpSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) ShiftTemplateByID(ctx context.Context, id uuid.UUID) (*shared.ShiftTemplateSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.ShiftTemplateSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) PumpShiftByID(ctx context.Context, id uuid.UUID) (*shared.PumpShiftSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.PumpShiftSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPumpShiftRepo struct {
	mock.Mock
}

func (m *mockPumpShiftRepo) Create(ctx context.Context, dbtx db.DBTX, s *shift.PumpShift) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, s)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockPumpShiftRepo) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shift.PumpShift, error) {
	args := m.Called(ctx, dbtx, id)
	if v := args.Get(0); v != nil {
		return v.(*shift.PumpShift), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPumpShiftRepo) Close(ctx context.Context, dbtx db.DBTX, s *shift.PumpShift) error {
	args := m.Called(ctx, dbtx, s)
	return args.Error(0)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, dbtx db.DBTX, t *payment.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, t)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*payment.Transaction, error) {
	args := m.Called(ctx, dbtx, id)
	if v := args.Get(0); v != nil {
		return v.(*payment.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) StoreResult(ctx context.Context, dbtx db.DBTX, t *payment.Transaction) error {
	args := m.Called(ctx, dbtx, t)
	return args.Error(0)
}

func (m *mockPaymentRepo) LinkSale(ctx context.Context, dbtx db.DBTX, paymentID, saleID uuid.UUID) error {
	args := m.Called(ctx, dbtx, paymentID, saleID)
	return args.Error(0)
}

type mockSaleRepo struct {
	mock.Mock
}

func (m *mockSaleRepo) Create(ctx context.Context, dbtx db.DBTX, rec *sale.Record) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, rec)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockUserRepo) SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error {
	args := m.Called(ctx, dbtx, id, active)
	return args.Error(0)
}

type mockSettingRepo struct {
	mock.Mock
}

func (m *mockSettingRepo) Get(ctx context.Context, dbtx db.DBTX, key string) (string, error) {
	args := m.Called(ctx, dbtx, key)
	return args.String(0), args.Error(1)
}

func (m *mockSettingRepo) Set(ctx context.Context, dbtx db.DBTX, key, value string) error {
	args := m.Called(ctx, dbtx, key, value)
	return args.Error(0)
}

func (m *mockSettingRepo) All(ctx context.Context, dbtx db.DBTX) (map[string]string, error) {
	args := m.Called(ctx, dbtx)
	if v := args.Get(0); v != nil {
		return v.(map[string]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserReadStore struct {
	mock.Mock
}

func (m *mockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.AuthorizedUserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, username)
	if v := args.Get(0); v != nil {
		return v.(*queries.AuthorizedUserView), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *mockUserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserReadStore) ListWithSales(ctx context.Context) ([]queries.FilterOption, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]queries.FilterOption), args.Error(1)
	}
	return nil, args.Error(1)
}
