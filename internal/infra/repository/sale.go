package repository

import (
	"context"

	"fuelpos/internal/domain/sale"
	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"

	"github.com/google/uuid"
)

type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// Create inserts the sale record. A duplicate external sale reference trips
// the unique constraint and surfaces as KindConflict.
func (r *SaleRepository) Create(ctx context.Context, dbtx db.DBTX, rec *sale.Record) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO sales_records
		     (id, sale_ref, pump_shift_id, pump_id, attendant_id, sale_time, amount,
		      customer_mobile_no, receipt_code, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID(), rec.SaleRef(), rec.PumpShiftID(), rec.PumpID(), rec.AttendantID(),
		rec.SaleTime(), rec.Amount(), rec.CustomerMobileNo(), rec.ReceiptCode(),
		rec.Status().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create sale record", err)
	}
	return rec.ID(), nil
}
