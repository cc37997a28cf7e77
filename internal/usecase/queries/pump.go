package queries

import (
	"context"
)

type PumpQueries interface {
	ListActive(ctx context.Context) ([]*PumpView, error)
}

type PumpReadStore interface {
	ListActive(ctx context.Context) ([]*PumpView, error)
	ListAllOptions(ctx context.Context) ([]PumpFilterOption, error)
}

type pumpQueriesImpl struct {
	readStore PumpReadStore
}

func NewPumpQueries(readStore PumpReadStore) PumpQueries {
	return &pumpQueriesImpl{readStore: readStore}
}

func (q *pumpQueriesImpl) ListActive(ctx context.Context) ([]*PumpView, error) {
	return q.readStore.ListActive(ctx)
}
