package readstore

import (
	"context"
	"fmt"
	"strings"

	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/pkg/pgconv"
	"fuelpos/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SaleReadStore struct {
	db db.DBTX
}

func NewSaleReadStore(dbtx db.DBTX) *SaleReadStore {
	return &SaleReadStore{db: dbtx}
}

const saleReportBase = `
SELECT s.id, s.sale_ref, s.amount, s.sale_time,
       s.customer_mobile_no, s.receipt_code, s.status,
       p.pump_no, p.pump_name, sh.shift_name, u.full_name
FROM sales_records s
JOIN pumps p ON p.id = s.pump_id
JOIN pump_shifts ps ON ps.id = s.pump_shift_id
JOIN shifts sh ON sh.id = ps.shift_id
JOIN users u ON u.id = s.attendant_id`

// Report returns sales newest first, narrowed by whatever filter fields
// are set. The mobile number filter matches anywhere in the stored value.
func (r *SaleReadStore) Report(ctx context.Context, filter queries.SaleReportFilter) ([]*queries.SaleReportRow, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.PumpID != nil {
		conds = append(conds, "s.pump_id = "+arg(*filter.PumpID))
	}
	if filter.AttendantID != nil {
		conds = append(conds, "s.attendant_id = "+arg(*filter.AttendantID))
	}
	if filter.ShiftID != nil {
		conds = append(conds, "ps.shift_id = "+arg(*filter.ShiftID))
	}
	if filter.MobileNo != nil {
		conds = append(conds, "s.customer_mobile_no ILIKE '%' || "+arg(*filter.MobileNo)+" || '%'")
	}

	query := saleReportBase
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY s.sale_time DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query sales report", err)
	}
	defer rows.Close()

	var report []*queries.SaleReportRow
	for rows.Next() {
		var (
			row    queries.SaleReportRow
			amount pgtype.Numeric
		)
		if err := rows.Scan(
			&row.ID, &row.SaleRef, &amount, &row.SaleTime,
			&row.CustomerMobileNo, &row.ReceiptCode, &row.Status,
			&row.PumpNo, &row.PumpName, &row.ShiftName, &row.AttendantName,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale report row", err)
		}
		row.Amount = pgconv.DecimalFromNumeric(amount)
		report = append(report, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sales report", err)
	}
	return report, nil
}
