package readstore

import (
	"context"

	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/pkg/pgconv"
	"fuelpos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PumpReadStore struct {
	db db.DBTX
}

func NewPumpReadStore(dbtx db.DBTX) *PumpReadStore {
	return &PumpReadStore{db: dbtx}
}

// ListActive returns active pumps with their current open shift, if any.
// The LEFT JOIN leans on the partial unique index: a pump has at most one
// open pump_shifts row.
func (r *PumpReadStore) ListActive(ctx context.Context) ([]*queries.PumpView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.pump_no, p.pump_name, ps.id
		 FROM pumps p
		 LEFT JOIN pump_shifts ps ON ps.pump_id = p.id AND NOT ps.is_closed
		 WHERE p.is_active
		 ORDER BY p.pump_no`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pumps", err)
	}
	defer rows.Close()

	var pumps []*queries.PumpView
	for rows.Next() {
		var (
			id               uuid.UUID
			pumpNo, pumpName string
			openShiftID      pgtype.UUID
		)
		if err := rows.Scan(&id, &pumpNo, &pumpName, &openShiftID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pump", err)
		}
		pumps = append(pumps, &queries.PumpView{
			ID:             id,
			PumpNo:         pumpNo,
			PumpName:       pumpName,
			IsShiftOpen:    openShiftID.Valid,
			CurrentShiftID: pgconv.UUIDPtrFromPgtype(openShiftID),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pumps", err)
	}
	return pumps, nil
}

func (r *PumpReadStore) ListAllOptions(ctx context.Context) ([]queries.PumpFilterOption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, pump_name, pump_no FROM pumps ORDER BY pump_no`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pump options", err)
	}
	defer rows.Close()

	var opts []queries.PumpFilterOption
	for rows.Next() {
		var o queries.PumpFilterOption
		if err := rows.Scan(&o.ID, &o.Name, &o.No); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pump option", err)
		}
		opts = append(opts, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pump options", err)
	}
	return opts, nil
}
