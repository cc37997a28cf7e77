package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/domain/sale"
	"fuelpos/internal/infra"
	"fuelpos/internal/pkg/clock"
	"fuelpos/internal/pkg/errs"
	"fuelpos/internal/usecase/shared"
)

var (
	ErrDuplicateSaleRef = errs.New("duplicate sale reference")
	ErrInvalidSale      = errs.New("invalid sale")
)

type SaleCommands interface {
	RecordSale(ctx context.Context, pumpShiftID uuid.UUID, saleRef string, attendantID uuid.UUID, amount decimal.Decimal, resolved *payment.Transaction) (uuid.UUID, error)
}

type saleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSaleCommands(uow shared.UnitOfWork, clock clock.Clock) SaleCommands {
	return &saleCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// RecordSale writes the sale against its pump shift and back-links the
// payment in the same transaction. The pump is taken from the shift, never
// from the caller.
func (s *saleCommandsImpl) RecordSale(
	ctx context.Context,
	pumpShiftID uuid.UUID,
	saleRef string,
	attendantID uuid.UUID,
	amount decimal.Decimal,
	resolved *payment.Transaction,
) (uuid.UUID, error) {
	if resolved == nil || !resolved.IsResolved() {
		return uuid.Nil, ErrPaymentUnresolved
	}

	outcome, err := resolved.Outcome()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidSale)
	}

	mobileNo := resolved.MobileNo()

	var saleID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pumpShift, err := tx.Reads().PumpShiftByID(ctx, pumpShiftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPumpShiftNotFound
			}
			return err
		}

		record, err := sale.NewRecord(
			saleRef,
			pumpShift.ID,
			pumpShift.PumpID,
			attendantID,
			amount,
			&mobileNo,
			resolved.ReceiptNumber(),
			sale.StatusFromOutcome(outcome),
			s.clock.Now(),
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidSale)
		}

		id, err := tx.Sales().Create(ctx, tx.DB(), record)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDuplicateSaleRef
			}
			return err
		}

		if err := tx.Payments().LinkSale(ctx, tx.DB(), resolved.ID(), id); err != nil {
			return err
		}
		saleID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return saleID, nil
}
