//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/domain/sale"
	"fuelpos/internal/infra"
	"fuelpos/internal/pkg/clock"
	"fuelpos/internal/usecase/commands"
	"fuelpos/internal/usecase/shared"
)

func TestRecordSale(t *testing.T) {
	pumpID := uuid.New()
	pumpShiftID := uuid.New()
	attendantID := uuid.New()
	amount := decimal.NewFromInt(2000)

	shiftSnapshot := func() *shared.PumpShiftSnapshot {
		return &shared.PumpShiftSnapshot{
			ID:                 pumpShiftID,
			PumpID:             pumpID,
			ShiftID:            uuid.New(),
			OpeningAttendantID: attendantID,
		}
	}

	t.Run("records the sale and back-links the payment", func(t *testing.T) {
		f := newTxFixture()
		resolved := resolvedTransaction(t, payment.OutcomeSuccess)
		saleID := uuid.New()

		f.reads.On("PumpShiftByID", mock.Anything, pumpShiftID).Return(shiftSnapshot(), nil)
		f.sales.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(rec *sale.Record) bool {
			return rec.SaleRef() == "SALE-001" &&
				rec.PumpShiftID() == pumpShiftID &&
				rec.PumpID() == pumpID &&
				rec.AttendantID() == attendantID &&
				rec.Status() == sale.StatusSuccess &&
				rec.ReceiptCode() != nil
		})).Return(saleID, nil)
		f.payments.On("LinkSale", mock.Anything, mock.Anything, resolved.ID(), saleID).Return(nil)

		svc := commands.NewSaleCommands(f.uow(), clock.NewMockClock(testTime))
		id, err := svc.RecordSale(context.Background(), pumpShiftID, "SALE-001", attendantID, amount, resolved)

		require.NoError(t, err)
		assert.Equal(t, saleID, id)
		f.assertExpectations(t)
	})

	t.Run("failed payment is recorded as a failed sale", func(t *testing.T) {
		f := newTxFixture()
		resolved := resolvedTransaction(t, payment.OutcomeCancelled)

		f.reads.On("PumpShiftByID", mock.Anything, pumpShiftID).Return(shiftSnapshot(), nil)
		f.sales.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(rec *sale.Record) bool {
			return rec.Status() == sale.StatusFailed && rec.ReceiptCode() == nil
		})).Return(uuid.New(), nil)
		f.payments.On("LinkSale", mock.Anything, mock.Anything, resolved.ID(), mock.Anything).Return(nil)

		svc := commands.NewSaleCommands(f.uow(), clock.NewMockClock(testTime))
		_, err := svc.RecordSale(context.Background(), pumpShiftID, "SALE-002", attendantID, amount, resolved)

		require.NoError(t, err)
	})

	t.Run("rejects an unresolved payment", func(t *testing.T) {
		f := newTxFixture()
		pending, err := payment.NewTransaction("+254712345678", amount, testTime)
		require.NoError(t, err)

		svc := commands.NewSaleCommands(f.uow(), clock.NewMockClock(testTime))
		_, err = svc.RecordSale(context.Background(), pumpShiftID, "SALE-003", attendantID, amount, pending)

		assert.ErrorIs(t, err, commands.ErrPaymentUnresolved)
	})

	t.Run("rejects a nil payment", func(t *testing.T) {
		f := newTxFixture()
		svc := commands.NewSaleCommands(f.uow(), clock.NewMockClock(testTime))

		_, err := svc.RecordSale(context.Background(), pumpShiftID, "SALE-004", attendantID, amount, nil)

		assert.ErrorIs(t, err, commands.ErrPaymentUnresolved)
	})

	t.Run("unknown pump shift", func(t *testing.T) {
		f := newTxFixture()
		resolved := resolvedTransaction(t, payment.OutcomeSuccess)
		f.reads.On("PumpShiftByID", mock.Anything, pumpShiftID).
			Return(nil, infra.WrapRepoErr("pump shift not found", nil, infra.KindNotFound))

		svc := commands.NewSaleCommands(f.uow(), clock.NewMockClock(testTime))
		_, err := svc.RecordSale(context.Background(), pumpShiftID, "SALE-005", attendantID, amount, resolved)

		assert.ErrorIs(t, err, commands.ErrPumpShiftNotFound)
	})

	t.Run("duplicate sale reference", func(t *testing.T) {
		f := newTxFixture()
		resolved := resolvedTransaction(t, payment.OutcomeSuccess)
		f.reads.On("PumpShiftByID", mock.Anything, pumpShiftID).Return(shiftSnapshot(), nil)
		f.sales.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, infra.WrapRepoErr("sale ref exists", nil, infra.KindConflict))

		svc := commands.NewSaleCommands(f.uow(), clock.NewMockClock(testTime))
		_, err := svc.RecordSale(context.Background(), pumpShiftID, "SALE-001", attendantID, amount, resolved)

		assert.ErrorIs(t, err, commands.ErrDuplicateSaleRef)
		f.payments.AssertNotCalled(t, "LinkSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank sale reference", func(t *testing.T) {
		f := newTxFixture()
		resolved := resolvedTransaction(t, payment.OutcomeSuccess)
		f.reads.On("PumpShiftByID", mock.Anything, pumpShiftID).Return(shiftSnapshot(), nil)

		svc := commands.NewSaleCommands(f.uow(), clock.NewMockClock(testTime))
		_, err := svc.RecordSale(context.Background(), pumpShiftID, "   ", attendantID, amount, resolved)

		assert.ErrorIs(t, err, commands.ErrInvalidSale)
	})
}
