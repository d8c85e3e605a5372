package memory

import (
	"context"
	"time"

	"github.com/findash/backend/internal/domain/statement"
)

// statementPtr constrains P to be *S and a statement.Record
type statementPtr[S any] interface {
	*S
	statement.Record
	Stamp(time.Time)
}

// StatementStore is a statement.Repository for one statement type
type StatementStore[S any, P statementPtr[S]] struct {
	items *Collection[S]
	now   func() time.Time
}

func newStatementStore[S any, P statementPtr[S]](clone func(S) S, now func() time.Time) *StatementStore[S, P] {
	return &StatementStore[S, P]{
		items: NewCollection(func(s *S) string { return P(s).GetID() }, clone),
		now:   now,
	}
}

// FindAll returns every statement in insertion order
func (st *StatementStore[S, P]) FindAll(ctx context.Context) []S {
	return st.items.All()
}

// FindFiltered returns the statements passing filter, in insertion order.
// Duplicate (topic, period) pairs are all returned.
func (st *StatementStore[S, P]) FindFiltered(ctx context.Context, filter statement.Filter) []S {
	return st.items.Filter(func(s *S) bool {
		r := P(s)
		return filter.Matches(r.StatementTopic(), r.StatementPeriod())
	})
}

// FindByID returns the statement with the given ID
func (st *StatementStore[S, P]) FindByID(ctx context.Context, id string) (S, bool) {
	return st.items.Get(id)
}

// Create assigns an ID and timestamps, fills defaults and stores s
func (st *StatementStore[S, P]) Create(ctx context.Context, s S) (S, error) {
	r := P(&s)
	if err := statement.Prepare(r); err != nil {
		var zero S
		return zero, err
	}
	r.Stamp(st.now())
	return st.items.Insert(s), nil
}

// Update patches the stored statement atomically. A rejected patch leaves
// the record unchanged.
func (st *StatementStore[S, P]) Update(ctx context.Context, id string, patch statement.Patch) (S, bool, error) {
	return st.items.Update(id, func(s *S) error {
		r := P(s)
		if err := statement.ApplyPatch(r, patch); err != nil {
			return err
		}
		r.Touch(st.now())
		return nil
	})
}

// Count returns the number of stored statements
func (st *StatementStore[S, P]) Count(ctx context.Context) int {
	return st.items.Len()
}

var (
	_ statement.ProfitLossRepository   = (*StatementStore[statement.ProfitLossStatement, *statement.ProfitLossStatement])(nil)
	_ statement.BalanceSheetRepository = (*StatementStore[statement.BalanceSheet, *statement.BalanceSheet])(nil)
	_ statement.CashFlowRepository     = (*StatementStore[statement.CashFlowStatement, *statement.CashFlowStatement])(nil)
)
