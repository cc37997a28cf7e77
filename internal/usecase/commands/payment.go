package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/infra"
	"fuelpos/internal/pkg/clock"
	"fuelpos/internal/pkg/errs"
	"fuelpos/internal/usecase/shared"
)

var (
	ErrPaymentNotFound   = errs.New("payment transaction not found")
	ErrInvalidPayment    = errs.New("invalid payment request")
	ErrPaymentUnresolved = errs.New("payment transaction not resolved")
)

type PaymentCommands interface {
	Initiate(ctx context.Context, mobileNo string, amount decimal.Decimal) (*payment.Transaction, error)
	Resolve(ctx context.Context, transactionID uuid.UUID) (*payment.Transaction, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	services payment.Services
	delay    time.Duration
	clock    clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, services payment.Services, delay time.Duration, clock clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		services: services,
		delay:    delay,
		clock:    clock,
	}
}

// Initiate records the request half of the transaction and acknowledges it
// the way the provider would, before any callback has landed.
func (p *paymentCommandsImpl) Initiate(ctx context.Context, mobileNo string, amount decimal.Decimal) (*payment.Transaction, error) {
	t, err := payment.NewTransaction(mobileNo, amount, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPayment)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Payments().Create(ctx, tx.DB(), t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

const simulationDelayKey = "mpesa_simulation_delay"

// simulationDelay prefers the runtime setting over the configured default.
func (p *paymentCommandsImpl) simulationDelay(ctx context.Context) time.Duration {
	delay := p.delay
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		raw, err := tx.Settings().Get(ctx, tx.DB(), simulationDelayKey)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		parsed, parseErr := time.ParseDuration(raw)
		if parseErr != nil {
			slog.Warn("unparseable simulation delay setting", "value", raw)
			return nil
		}
		delay = parsed
		return nil
	})
	if err != nil {
		slog.Warn("failed to read simulation delay setting", "error", err.Error())
	}
	return delay
}

// Resolve waits out the simulated callback latency, draws an outcome and
// stores it. Storage is a compare-and-swap on the unresolved row, so a
// racing resolve loses cleanly and the stored outcome is returned instead.
func (p *paymentCommandsImpl) Resolve(ctx context.Context, transactionID uuid.UUID) (*payment.Transaction, error) {
	if delay := p.simulationDelay(ctx); delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	var resolved *payment.Transaction
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Payments().FindByID(ctx, tx.DB(), transactionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		if t.IsResolved() {
			resolved = t
			return nil
		}

		if err := t.Resolve(p.services.Outcomes.Pick(), p.services.Receipts); err != nil {
			return err
		}

		if err := tx.Payments().StoreResult(ctx, tx.DB(), t); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the race; reload the winning result.
				stored, findErr := tx.Payments().FindByID(ctx, tx.DB(), transactionID)
				if findErr != nil {
					return findErr
				}
				resolved = stored
				return nil
			}
			return err
		}
		resolved = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}
