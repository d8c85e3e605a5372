package report

import (
	"sort"

	"github.com/findash/backend/internal/domain/shared/valueobject"
	"github.com/findash/backend/internal/domain/statement"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// displayPlaces is the rounding applied to derived percentages and ratios
const displayPlaces = 2

// CalcChange returns the percentage change from previous to current,
// relative to |previous|. It returns zero when previous is zero.
func CalcChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred)
}

// Metric is a figure from the latest period alongside the previous period
type Metric struct {
	Value    decimal.Decimal  `json:"value"`
	Previous *decimal.Decimal `json:"previous,omitempty"`
	Change   decimal.Decimal  `json:"change"`
}

func newMetric(latest string, previous *string) Metric {
	m := Metric{Value: valueobject.AmountOrZero(latest), Change: decimal.Zero}
	if previous != nil {
		p := valueobject.AmountOrZero(*previous)
		m.Previous = &p
		m.Change = CalcChange(m.Value, p).Round(displayPlaces)
	}
	return m
}

// ratio returns num/den*scale rounded for display, or zero when den is zero
func ratio(num, den, scale decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(scale).Round(displayPlaces)
}

type recordPtr[S any] interface {
	*S
	statement.Record
}

// ByPeriodDesc returns a copy of rows sorted latest period first. Rows with
// equal periods keep their relative order.
func ByPeriodDesc[S any, P recordPtr[S]](rows []S) []S {
	out := make([]S, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return P(&out[j]).StatementPeriod().Before(P(&out[i]).StatementPeriod())
	})
	return out
}

// LatestTwo returns the latest statement and, when there is one, the
// statement before it. latest is nil for an empty input.
func LatestTwo[S any, P recordPtr[S]](rows []S) (latest, previous *S) {
	sorted := ByPeriodDesc[S, P](rows)
	if len(sorted) > 0 {
		latest = &sorted[0]
	}
	if len(sorted) > 1 {
		previous = &sorted[1]
	}
	return latest, previous
}

// pick returns a pointer to field of s, or nil when s is nil
func pick[S any](s *S, field func(*S) string) *string {
	if s == nil {
		return nil
	}
	v := field(s)
	return &v
}

// ProfitLossSummary holds the dashboard figures for a topic's income statements
type ProfitLossSummary struct {
	Topic           string           `json:"topic"`
	Period          statement.Period `json:"period"`
	PreviousPeriod  statement.Period `json:"previousPeriod,omitempty"`
	Revenue         Metric           `json:"revenue"`
	GrossProfit     Metric           `json:"grossProfit"`
	OperatingIncome Metric           `json:"operatingIncome"`
	NetIncome       Metric           `json:"netIncome"`
	TotalExpenses   decimal.Decimal  `json:"totalExpenses"`
	GrossMargin     decimal.Decimal  `json:"grossMargin"`
	NetMargin       decimal.Decimal  `json:"netMargin"`
}

// SummarizeProfitLoss derives the summary from one topic's statements. It
// returns nil for an empty input.
func SummarizeProfitLoss(rows []statement.ProfitLossStatement) *ProfitLossSummary {
	latest, prev := LatestTwo(rows)
	if latest == nil {
		return nil
	}

	sum := &ProfitLossSummary{
		Topic:  latest.Topic,
		Period: latest.Period,
		Revenue: newMetric(latest.TotalRevenue,
			pick(prev, func(s *statement.ProfitLossStatement) string { return s.TotalRevenue })),
		GrossProfit: newMetric(latest.GrossProfit,
			pick(prev, func(s *statement.ProfitLossStatement) string { return s.GrossProfit })),
		OperatingIncome: newMetric(latest.OperatingIncome,
			pick(prev, func(s *statement.ProfitLossStatement) string { return s.OperatingIncome })),
		NetIncome: newMetric(latest.NetIncome,
			pick(prev, func(s *statement.ProfitLossStatement) string { return s.NetIncome })),
	}
	if prev != nil {
		sum.PreviousPeriod = prev.Period
	}

	// latest period only, never summed across the range
	sum.TotalExpenses = valueobject.AmountOrZero(latest.CostOfGoodsSold).
		Add(valueobject.AmountOrZero(latest.OperatingExpenses)).
		Add(valueobject.AmountOrZero(latest.OtherExpenses)).
		Add(valueobject.AmountOrZero(latest.TaxExpense))
	sum.GrossMargin = ratio(sum.GrossProfit.Value, sum.Revenue.Value, hundred)
	sum.NetMargin = ratio(sum.NetIncome.Value, sum.Revenue.Value, hundred)
	return sum
}

// BalanceSheetSummary holds the dashboard figures for a topic's balance sheets
type BalanceSheetSummary struct {
	Topic              string           `json:"topic"`
	Period             statement.Period `json:"period"`
	PreviousPeriod     statement.Period `json:"previousPeriod,omitempty"`
	TotalAssets        Metric           `json:"totalAssets"`
	TotalLiabilities   Metric           `json:"totalLiabilities"`
	ShareholdersEquity Metric           `json:"shareholdersEquity"`
	WorkingCapital     decimal.Decimal  `json:"workingCapital"`
	CurrentRatio       decimal.Decimal  `json:"currentRatio"`
	DebtToEquity       decimal.Decimal  `json:"debtToEquity"`
}

// SummarizeBalanceSheet derives the summary from one topic's balance sheets.
// It returns nil for an empty input.
func SummarizeBalanceSheet(rows []statement.BalanceSheet) *BalanceSheetSummary {
	latest, prev := LatestTwo(rows)
	if latest == nil {
		return nil
	}

	sum := &BalanceSheetSummary{
		Topic:  latest.Topic,
		Period: latest.Period,
		TotalAssets: newMetric(latest.TotalAssets,
			pick(prev, func(s *statement.BalanceSheet) string { return s.TotalAssets })),
		TotalLiabilities: newMetric(latest.TotalLiabilities,
			pick(prev, func(s *statement.BalanceSheet) string { return s.TotalLiabilities })),
		ShareholdersEquity: newMetric(latest.ShareholdersEquity,
			pick(prev, func(s *statement.BalanceSheet) string { return s.ShareholdersEquity })),
	}
	if prev != nil {
		sum.PreviousPeriod = prev.Period
	}

	currentAssets := valueobject.AmountOrZero(latest.CurrentAssets)
	currentLiabilities := valueobject.AmountOrZero(latest.CurrentLiabilities)
	sum.WorkingCapital = currentAssets.Sub(currentLiabilities)
	sum.CurrentRatio = ratio(currentAssets, currentLiabilities, decimal.NewFromInt(1))
	sum.DebtToEquity = ratio(sum.TotalLiabilities.Value, sum.ShareholdersEquity.Value, decimal.NewFromInt(1))
	return sum
}

// CashFlowSummary holds the dashboard figures for a topic's cash flow statements
type CashFlowSummary struct {
	Topic             string           `json:"topic"`
	Period            statement.Period `json:"period"`
	PreviousPeriod    statement.Period `json:"previousPeriod,omitempty"`
	OperatingCashFlow Metric           `json:"operatingCashFlow"`
	InvestingCashFlow Metric           `json:"investingCashFlow"`
	FinancingCashFlow Metric           `json:"financingCashFlow"`
	FreeCashFlow      decimal.Decimal  `json:"freeCashFlow"`
	EndingCashBalance decimal.Decimal  `json:"endingCashBalance"`
}

// SummarizeCashFlow derives the summary from one topic's cash flow
// statements. It returns nil for an empty input.
func SummarizeCashFlow(rows []statement.CashFlowStatement) *CashFlowSummary {
	latest, prev := LatestTwo(rows)
	if latest == nil {
		return nil
	}

	sum := &CashFlowSummary{
		Topic:  latest.Topic,
		Period: latest.Period,
		OperatingCashFlow: newMetric(latest.OperatingCashFlow,
			pick(prev, func(s *statement.CashFlowStatement) string { return s.OperatingCashFlow })),
		InvestingCashFlow: newMetric(latest.InvestingCashFlow,
			pick(prev, func(s *statement.CashFlowStatement) string { return s.InvestingCashFlow })),
		FinancingCashFlow: newMetric(latest.FinancingCashFlow,
			pick(prev, func(s *statement.CashFlowStatement) string { return s.FinancingCashFlow })),
		EndingCashBalance: valueobject.AmountOrZero(latest.EndingCashBalance),
	}
	if prev != nil {
		sum.PreviousPeriod = prev.Period
	}

	// capital expenditures may be recorded as outflows (negative) or magnitudes
	capex := valueobject.AmountOrZero(latest.CapitalExpenditures).Abs()
	sum.FreeCashFlow = sum.OperatingCashFlow.Value.Sub(capex)
	return sum
}
