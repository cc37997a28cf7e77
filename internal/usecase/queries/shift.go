package queries

import (
	"context"
)

type ShiftTemplateQueries interface {
	List(ctx context.Context) ([]*ShiftTemplateView, error)
}

type ShiftTemplateReadStore interface {
	List(ctx context.Context) ([]*ShiftTemplateView, error)
}

type shiftTemplateQueriesImpl struct {
	readStore ShiftTemplateReadStore
}

func NewShiftTemplateQueries(readStore ShiftTemplateReadStore) ShiftTemplateQueries {
	return &shiftTemplateQueriesImpl{readStore: readStore}
}

func (q *shiftTemplateQueriesImpl) List(ctx context.Context) ([]*ShiftTemplateView, error) {
	return q.readStore.List(ctx)
}
