package memory

import (
	"context"
	"time"

	"github.com/findash/backend/internal/domain/statement"
)

// Storage owns every collection of the dashboard. Create one per process
// and inject it where repositories are needed.
type Storage struct {
	now func() time.Time

	profitLoss    *StatementStore[statement.ProfitLossStatement, *statement.ProfitLossStatement]
	balanceSheets *StatementStore[statement.BalanceSheet, *statement.BalanceSheet]
	cashFlows     *StatementStore[statement.CashFlowStatement, *statement.CashFlowStatement]
	plAccounts    *PlAccountStore
	ioMappings    *IoMappingStore
	companies     *CompanyStore
	users         *UserStore
	market        *MarketStore
}

// Option configures a Storage
type Option func(*Storage)

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStorage creates an empty storage
func NewStorage(opts ...Option) *Storage {
	s := &Storage{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	s.profitLoss = newStatementStore[statement.ProfitLossStatement, *statement.ProfitLossStatement](statement.CloneProfitLoss, s.now)
	s.balanceSheets = newStatementStore[statement.BalanceSheet, *statement.BalanceSheet](statement.CloneBalanceSheet, s.now)
	s.cashFlows = newStatementStore[statement.CashFlowStatement, *statement.CashFlowStatement](statement.CloneCashFlow, s.now)
	s.plAccounts = newPlAccountStore(s.now)
	s.ioMappings = newIoMappingStore(s.now)
	s.companies = newCompanyStore(s.now)
	s.users = newUserStore(s.now)
	s.market = newMarketStore(s.now)
	return s
}

// ProfitLoss returns the profit and loss statement repository
func (s *Storage) ProfitLoss() *StatementStore[statement.ProfitLossStatement, *statement.ProfitLossStatement] {
	return s.profitLoss
}

// BalanceSheets returns the balance sheet repository
func (s *Storage) BalanceSheets() *StatementStore[statement.BalanceSheet, *statement.BalanceSheet] {
	return s.balanceSheets
}

// CashFlows returns the cash flow statement repository
func (s *Storage) CashFlows() *StatementStore[statement.CashFlowStatement, *statement.CashFlowStatement] {
	return s.cashFlows
}

// PlAccounts returns the P&L account repository
func (s *Storage) PlAccounts() *PlAccountStore { return s.plAccounts }

// IoMappings returns the IO mapping repository
func (s *Storage) IoMappings() *IoMappingStore { return s.ioMappings }

// Companies returns the company repository
func (s *Storage) Companies() *CompanyStore { return s.companies }

// Users returns the user repository
func (s *Storage) Users() *UserStore { return s.users }

// Market returns the KPI data repository
func (s *Storage) Market() *MarketStore { return s.market }

// Counts returns the number of records per collection, keyed by API resource name
func (s *Storage) Counts(ctx context.Context) map[string]int {
	return map[string]int{
		string(statement.KindProfitLoss):   s.profitLoss.Count(ctx),
		string(statement.KindBalanceSheet): s.balanceSheets.Count(ctx),
		string(statement.KindCashFlow):     s.cashFlows.Count(ctx),
		"pl-accounts":                      s.plAccounts.items.Len(),
		"io-mappings":                      s.ioMappings.items.Len(),
		"companies":                        s.companies.items.Len(),
		"users":                            s.users.items.Len(),
		"market-data":                      s.market.marketData.Len(),
		"business-news":                    s.market.news.Len(),
		"company-metrics":                  s.market.metrics.Len(),
		"economic-indicators":              s.market.indicators.Len(),
	}
}
