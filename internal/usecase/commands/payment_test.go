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
	"fuelpos/internal/infra"
	"fuelpos/internal/pkg/clock"
	"fuelpos/internal/usecase/commands"
)

func fixedServices(outcome payment.Outcome) payment.Services {
	return payment.Services{
		Outcomes: &payment.FixedOutcomePicker{Outcome: outcome},
		Receipts: payment.NewMpesaReceiptGenerator(),
	}
}

func resolvedTransaction(t *testing.T, outcome payment.Outcome) *payment.Transaction {
	t.Helper()
	tx, err := payment.NewTransaction("+254712345678", decimal.NewFromInt(500), testTime)
	require.NoError(t, err)
	require.NoError(t, tx.Resolve(outcome, payment.NewMpesaReceiptGenerator()))
	return tx
}

// expectNoDelaySetting makes the simulated callback fire immediately.
func expectNoDelaySetting(f *txFixture) {
	f.settings.On("Get", mock.Anything, mock.Anything, "mpesa_simulation_delay").
		Return("", infra.WrapRepoErr("setting not found", nil, infra.KindNotFound))
}

func TestInitiatePayment(t *testing.T) {
	t.Run("persists and acknowledges the request", func(t *testing.T) {
		f := newTxFixture()
		f.payments.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(tx *payment.Transaction) bool {
			return tx.MobileNo() == "+254712345678" &&
				tx.Amount().Equal(decimal.NewFromInt(1500)) &&
				!tx.IsResolved()
		})).Return(uuid.New(), nil)

		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeSuccess), 0, clock.NewMockClock(testTime))
		tx, err := svc.Initiate(context.Background(), "+254712345678", decimal.NewFromInt(1500))

		require.NoError(t, err)
		assert.Equal(t, payment.ResponseCodeAccepted, tx.ResponseCode())
		assert.NotEqual(t, uuid.Nil, tx.CheckoutRequestID())
		assert.False(t, tx.IsResolved())
		f.assertExpectations(t)
	})

	t.Run("rejects empty mobile number", func(t *testing.T) {
		f := newTxFixture()
		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeSuccess), 0, clock.NewMockClock(testTime))

		_, err := svc.Initiate(context.Background(), "", decimal.NewFromInt(100))

		assert.ErrorIs(t, err, commands.ErrInvalidPayment)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		f := newTxFixture()
		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeSuccess), 0, clock.NewMockClock(testTime))

		_, err := svc.Initiate(context.Background(), "+254712345678", decimal.Zero)

		assert.ErrorIs(t, err, commands.ErrInvalidPayment)
	})
}

func TestResolvePayment(t *testing.T) {
	t.Run("stores the drawn outcome", func(t *testing.T) {
		f := newTxFixture()
		expectNoDelaySetting(f)

		pending, err := payment.NewTransaction("+254712345678", decimal.NewFromInt(500), testTime)
		require.NoError(t, err)

		f.payments.On("FindByID", mock.Anything, mock.Anything, pending.ID()).Return(pending, nil)
		f.payments.On("StoreResult", mock.Anything, mock.Anything, pending).Return(nil)

		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeSuccess), 0, clock.NewMockClock(testTime))
		resolved, err := svc.Resolve(context.Background(), pending.ID())

		require.NoError(t, err)
		require.True(t, resolved.IsResolved())
		require.NotNil(t, resolved.ResultCode())
		assert.Equal(t, "0", *resolved.ResultCode())
		assert.NotNil(t, resolved.ReceiptNumber())
		f.assertExpectations(t)
	})

	t.Run("failed outcome carries no receipt", func(t *testing.T) {
		f := newTxFixture()
		expectNoDelaySetting(f)

		pending, err := payment.NewTransaction("+254712345678", decimal.NewFromInt(500), testTime)
		require.NoError(t, err)

		f.payments.On("FindByID", mock.Anything, mock.Anything, pending.ID()).Return(pending, nil)
		f.payments.On("StoreResult", mock.Anything, mock.Anything, pending).Return(nil)

		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeInsufficientFunds), 0, clock.NewMockClock(testTime))
		resolved, err := svc.Resolve(context.Background(), pending.ID())

		require.NoError(t, err)
		require.NotNil(t, resolved.ResultCode())
		assert.Equal(t, "1001", *resolved.ResultCode())
		assert.Nil(t, resolved.ReceiptNumber())
	})

	t.Run("already resolved returns the stored result untouched", func(t *testing.T) {
		f := newTxFixture()
		expectNoDelaySetting(f)

		stored := resolvedTransaction(t, payment.OutcomeCancelled)
		f.payments.On("FindByID", mock.Anything, mock.Anything, stored.ID()).Return(stored, nil)

		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeSuccess), 0, clock.NewMockClock(testTime))
		resolved, err := svc.Resolve(context.Background(), stored.ID())

		require.NoError(t, err)
		require.NotNil(t, resolved.ResultCode())
		assert.Equal(t, "1032", *resolved.ResultCode())
		f.payments.AssertNotCalled(t, "StoreResult", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		f := newTxFixture()
		expectNoDelaySetting(f)

		id := uuid.New()
		f.payments.On("FindByID", mock.Anything, mock.Anything, id).
			Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound))

		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeSuccess), 0, clock.NewMockClock(testTime))
		_, err := svc.Resolve(context.Background(), id)

		assert.ErrorIs(t, err, commands.ErrPaymentNotFound)
	})

	t.Run("losing the result race returns the winner", func(t *testing.T) {
		f := newTxFixture()
		expectNoDelaySetting(f)

		pending, err := payment.NewTransaction("+254712345678", decimal.NewFromInt(500), testTime)
		require.NoError(t, err)
		winner := resolvedTransaction(t, payment.OutcomeSuccess)

		f.payments.On("FindByID", mock.Anything, mock.Anything, pending.ID()).Return(pending, nil).Once()
		f.payments.On("StoreResult", mock.Anything, mock.Anything, pending).
			Return(infra.WrapRepoErr("result already stored", nil, infra.KindConflict))
		f.payments.On("FindByID", mock.Anything, mock.Anything, pending.ID()).Return(winner, nil).Once()

		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeCancelled), 0, clock.NewMockClock(testTime))
		resolved, err := svc.Resolve(context.Background(), pending.ID())

		require.NoError(t, err)
		assert.Same(t, winner, resolved)
		f.assertExpectations(t)
	})

	t.Run("unparsable delay setting falls back to the configured delay", func(t *testing.T) {
		f := newTxFixture()
		f.settings.On("Get", mock.Anything, mock.Anything, "mpesa_simulation_delay").
			Return("soon", nil)

		pending, err := payment.NewTransaction("+254712345678", decimal.NewFromInt(500), testTime)
		require.NoError(t, err)
		f.payments.On("FindByID", mock.Anything, mock.Anything, pending.ID()).Return(pending, nil)
		f.payments.On("StoreResult", mock.Anything, mock.Anything, pending).Return(nil)

		svc := commands.NewPaymentCommands(f.uow(), fixedServices(payment.OutcomeSuccess), 0, clock.NewMockClock(testTime))
		resolved, err := svc.Resolve(context.Background(), pending.ID())

		require.NoError(t, err)
		assert.True(t, resolved.IsResolved())
	})
}
