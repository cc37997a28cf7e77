package repository

import (
	"context"
	"time"

	"fuelpos/internal/domain/shift"
	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PumpShiftRepository struct{}

func NewPumpShiftRepository() *PumpShiftRepository {
	return &PumpShiftRepository{}
}

// Create inserts a new open pump shift. The partial unique index on
// (pump_id) WHERE NOT is_closed turns a concurrent second open into a
// KindConflict error here.
func (r *PumpShiftRepository) Create(ctx context.Context, dbtx db.DBTX, s *shift.PumpShift) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO pump_shifts
		     (id, pump_id, shift_id, opening_attendant_id, opening_time, opening_meter_reading, is_closed)
		 VALUES ($1, $2, $3, $4, $5, $6, false)`,
		s.ID(), s.PumpID(), s.ShiftID(), s.OpeningAttendantID(),
		s.OpeningTime(), s.OpeningMeterReading().Value(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pump shift", err)
	}
	return s.ID(), nil
}

func (r *PumpShiftRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shift.PumpShift, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT id, pump_id, shift_id, opening_attendant_id, opening_time, opening_meter_reading,
		        closing_attendant_id, closing_time, closing_meter_reading, is_closed
		 FROM pump_shifts
		 WHERE id = $1`,
		id,
	)

	var (
		shiftID, pumpID, templateID, openingAttendantID uuid.UUID
		openingTime                                     time.Time
		openingReading                                  pgtype.Numeric
		closingAttendantID                              pgtype.UUID
		closingTime                                     pgtype.Timestamptz
		closingReading                                  pgtype.Numeric
		isClosed                                        bool
	)
	err := row.Scan(
		&shiftID, &pumpID, &templateID, &openingAttendantID, &openingTime, &openingReading,
		&closingAttendantID, &closingTime, &closingReading, &isClosed,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pump shift not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pump shift", err)
	}

	opening, err := shift.NewMeterReading(pgconv.DecimalFromNumeric(openingReading))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored opening meter reading", err)
	}

	var closing *shift.MeterReading
	if closingReading.Valid {
		c, err := shift.NewMeterReading(pgconv.DecimalFromNumeric(closingReading))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored closing meter reading", err)
		}
		closing = &c
	}

	return shift.ReconstructPumpShift(
		shiftID, pumpID, templateID, openingAttendantID,
		openingTime, opening,
		pgconv.UUIDPtrFromPgtype(closingAttendantID),
		pgconv.TimePtrFromPgtype(closingTime),
		closing,
		isClosed,
	), nil
}

// Close persists the closing half of the shift. The WHERE NOT is_closed
// guard makes the open -> closed transition a compare-and-swap: zero rows on
// an existing shift means another request already closed it.
func (r *PumpShiftRepository) Close(ctx context.Context, dbtx db.DBTX, s *shift.PumpShift) error {
	var closingReading any
	if cr := s.ClosingMeterReading(); cr != nil {
		closingReading = cr.Value()
	}

	tag, err := dbtx.Exec(ctx,
		`UPDATE pump_shifts
		 SET closing_attendant_id = $2, closing_time = $3, closing_meter_reading = $4, is_closed = true
		 WHERE id = $1 AND NOT is_closed`,
		s.ID(), s.ClosingAttendantID(), s.ClosingTime(), closingReading,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to close pump shift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pump shift already closed", nil, infra.KindConflict)
	}
	return nil
}
