package uow

import (
	"context"

	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/pkg/pgconv"
	"fuelpos/internal/usecase/shared"

	"github.com/google/uuid"
)

type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) PumpByID(ctx context.Context, id uuid.UUID) (*shared.PumpSnapshot, error) {
	row := r.dbtx.QueryRow(ctx,
		`SELECT id, pump_no, pump_name, is_active FROM pumps WHERE id = $1`,
		id,
	)

	var s shared.PumpSnapshot
	if err := row.Scan(&s.ID, &s.PumpNo, &s.PumpName, &s.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pump not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read pump", err)
	}
	return &s, nil
}

func (r *commandReads) ShiftTemplateByID(ctx context.Context, id uuid.UUID) (*shared.ShiftTemplateSnapshot, error) {
	row := r.dbtx.QueryRow(ctx,
		`SELECT id, shift_name FROM shifts WHERE id = $1`,
		id,
	)

	var s shared.ShiftTemplateSnapshot
	if err := row.Scan(&s.ID, &s.ShiftName); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shift template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read shift template", err)
	}
	return &s, nil
}

func (r *commandReads) PumpShiftByID(ctx context.Context, id uuid.UUID) (*shared.PumpShiftSnapshot, error) {
	row := r.dbtx.QueryRow(ctx,
		`SELECT id, pump_id, shift_id, opening_attendant_id, is_closed
		 FROM pump_shifts WHERE id = $1`,
		id,
	)

	var s shared.PumpShiftSnapshot
	if err := row.Scan(&s.ID, &s.PumpID, &s.ShiftID, &s.OpeningAttendantID, &s.IsClosed); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pump shift not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read pump shift", err)
	}
	return &s, nil
}
