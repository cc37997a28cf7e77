package readstore

import (
	"context"

	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/usecase/queries"
)

type ShiftTemplateReadStore struct {
	db db.DBTX
}

func NewShiftTemplateReadStore(dbtx db.DBTX) *ShiftTemplateReadStore {
	return &ShiftTemplateReadStore{db: dbtx}
}

func (r *ShiftTemplateReadStore) List(ctx context.Context) ([]*queries.ShiftTemplateView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, shift_name FROM shifts ORDER BY shift_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shift templates", err)
	}
	defer rows.Close()

	var shifts []*queries.ShiftTemplateView
	for rows.Next() {
		var v queries.ShiftTemplateView
		if err := rows.Scan(&v.ID, &v.ShiftName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shift template", err)
		}
		shifts = append(shifts, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shift templates", err)
	}
	return shifts, nil
}
