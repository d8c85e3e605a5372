package statement

import "context"

// Repository stores statements of one type. Absence is reported through the
// boolean result, never as an error.
type Repository[S any] interface {
	FindAll(ctx context.Context) []S
	FindFiltered(ctx context.Context, filter Filter) []S
	FindByID(ctx context.Context, id string) (S, bool)
	Create(ctx context.Context, s S) (S, error)
	// Update applies patch to the stored record atomically. It returns
	// false when id does not exist; the error reports an invalid patch.
	Update(ctx context.Context, id string, patch Patch) (S, bool, error)
	Count(ctx context.Context) int
}

// ProfitLossRepository stores profit and loss statements
type ProfitLossRepository = Repository[ProfitLossStatement]

// BalanceSheetRepository stores balance sheets
type BalanceSheetRepository = Repository[BalanceSheet]

// CashFlowRepository stores cash flow statements
type CashFlowRepository = Repository[CashFlowStatement]
