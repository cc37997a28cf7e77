package queries

import (
	"context"
)

type SaleQueries interface {
	Report(ctx context.Context, filter SaleReportFilter) ([]*SaleReportRow, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
}

type SaleReadStore interface {
	Report(ctx context.Context, filter SaleReportFilter) ([]*SaleReportRow, error)
}

type saleQueriesImpl struct {
	sales  SaleReadStore
	users  UserReadStore
	pumps  PumpReadStore
	shifts ShiftTemplateReadStore
}

func NewSaleQueries(sales SaleReadStore, users UserReadStore, pumps PumpReadStore, shifts ShiftTemplateReadStore) SaleQueries {
	return &saleQueriesImpl{
		sales:  sales,
		users:  users,
		pumps:  pumps,
		shifts: shifts,
	}
}

func (q *saleQueriesImpl) Report(ctx context.Context, filter SaleReportFilter) ([]*SaleReportRow, error) {
	rows, err := q.sales.Report(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*SaleReportRow{}
	}
	return rows, nil
}

// FilterOptions gathers the picker values for the report screen: attendants
// that have sold, every pump, and every shift template.
func (q *saleQueriesImpl) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	attendants, err := q.users.ListWithSales(ctx)
	if err != nil {
		return nil, err
	}

	pumps, err := q.pumps.ListAllOptions(ctx)
	if err != nil {
		return nil, err
	}

	templates, err := q.shifts.List(ctx)
	if err != nil {
		return nil, err
	}
	shiftOpts := make([]FilterOption, 0, len(templates))
	for _, t := range templates {
		shiftOpts = append(shiftOpts, FilterOption{ID: t.ID, Name: t.ShiftName})
	}

	if attendants == nil {
		attendants = []FilterOption{}
	}
	if pumps == nil {
		pumps = []PumpFilterOption{}
	}

	return &FilterOptions{
		Attendants: attendants,
		Pumps:      pumps,
		Shifts:     shiftOpts,
	}, nil
}
