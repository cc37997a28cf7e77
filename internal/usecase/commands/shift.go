package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"fuelpos/internal/domain/shift"
	reqdto "fuelpos/internal/handler/dto/request"
	"fuelpos/internal/infra"
	"fuelpos/internal/pkg/clock"
	"fuelpos/internal/pkg/errs"
	"fuelpos/internal/usecase/shared"
)

var (
	ErrPumpNotFound           = errs.New("pump not found")
	ErrPumpInactive           = errs.New("pump inactive")
	ErrShiftTemplateNotFound  = errs.New("shift template not found")
	ErrPumpShiftNotFound      = errs.New("pump shift not found")
	ErrShiftAlreadyOpen       = errs.New("pump already has an open shift")
	ErrShiftAlreadyClosed     = errs.New("pump shift already closed")
	ErrInvalidMeterReading    = errs.New("invalid meter reading")
	ErrMeterReadingRegression = errs.New("closing meter reading below opening")
)

type ShiftCommands interface {
	OpenShift(ctx context.Context, req reqdto.OpenShiftRequest, attendantID uuid.UUID) (uuid.UUID, error)
	CloseShift(ctx context.Context, req reqdto.CloseShiftRequest, attendantID uuid.UUID) error
}

type shiftCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewShiftCommands(uow shared.UnitOfWork, clock clock.Clock) ShiftCommands {
	return &shiftCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (s *shiftCommandsImpl) OpenShift(ctx context.Context, req reqdto.OpenShiftRequest, attendantID uuid.UUID) (uuid.UUID, error) {
	opening, err := req.Reading()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidMeterReading)
	}

	var pumpShiftID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pump, err := tx.Reads().PumpByID(ctx, req.PumpID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPumpNotFound
			}
			return err
		}
		if !pump.IsActive {
			return ErrPumpInactive
		}

		if _, err := tx.Reads().ShiftTemplateByID(ctx, req.ShiftID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftTemplateNotFound
			}
			return err
		}

		entity := shift.NewPumpShift(req.PumpID, req.ShiftID, attendantID, opening, s.clock.Now())
		// The partial unique index surfaces a concurrent open as a conflict.
		id, err := tx.PumpShifts().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrShiftAlreadyOpen
			}
			return err
		}
		pumpShiftID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return pumpShiftID, nil
}

func (s *shiftCommandsImpl) CloseShift(ctx context.Context, req reqdto.CloseShiftRequest, attendantID uuid.UUID) error {
	closing, err := req.Reading()
	if err != nil {
		return errs.Mark(err, ErrInvalidMeterReading)
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.PumpShifts().FindByID(ctx, tx.DB(), req.PumpShiftID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPumpShiftNotFound
			}
			return err
		}

		if err := entity.Close(attendantID, closing, s.clock.Now()); err != nil {
			switch {
			case errors.Is(err, shift.ErrAlreadyClosed):
				return ErrShiftAlreadyClosed
			case errors.Is(err, shift.ErrMeterReadingRegression):
				return ErrMeterReadingRegression
			default:
				return err
			}
		}

		if err := tx.PumpShifts().Close(ctx, tx.DB(), entity); err != nil {
			// A concurrent close wins the compare-and-swap; the shift is
			// closed either way.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrShiftAlreadyClosed
			}
			return err
		}
		return nil
	})
}
