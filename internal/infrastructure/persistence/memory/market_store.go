package memory

import (
	"context"
	"strings"
	"time"

	"github.com/findash/backend/internal/domain/market"
)

// CompanyStore is the in-memory market.CompanyRepository
type CompanyStore struct {
	items *Collection[market.Company]
	now   func() time.Time
}

func newCompanyStore(now func() time.Time) *CompanyStore {
	return &CompanyStore{
		items: NewCollection(func(c *market.Company) string { return c.ID }, nil),
		now:   now,
	}
}

// FindAll returns every company in insertion order
func (s *CompanyStore) FindAll(ctx context.Context) []market.Company {
	return s.items.All()
}

// FindByID returns the company with the given ID
func (s *CompanyStore) FindByID(ctx context.Context, id string) (market.Company, bool) {
	return s.items.Get(id)
}

// Search matches name or code, ignoring case
func (s *CompanyStore) Search(ctx context.Context, query string) []market.Company {
	query = strings.TrimSpace(query)
	return s.items.Filter(func(c *market.Company) bool {
		return containsFold(c.Name, query) || containsFold(c.Code, query)
	})
}

// Create stores a new company
func (s *CompanyStore) Create(ctx context.Context, c market.Company) market.Company {
	c.Stamp(s.now())
	return s.items.Insert(c)
}

// Update merges patch over the stored company
func (s *CompanyStore) Update(ctx context.Context, id string, patch market.CompanyPatch) (market.Company, bool) {
	c, ok, _ := s.items.Update(id, func(c *market.Company) error {
		patch.Apply(c)
		c.Touch(s.now())
		return nil
	})
	return c, ok
}

// Delete removes the company
func (s *CompanyStore) Delete(ctx context.Context, id string) bool {
	return s.items.Delete(id)
}

// MarketStore holds the read-mostly KPI collections
type MarketStore struct {
	marketData *Collection[market.MarketData]
	news       *Collection[market.BusinessNews]
	metrics    *Collection[market.CompanyMetrics]
	indicators *Collection[market.EconomicIndicator]
	now        func() time.Time
}

func newMarketStore(now func() time.Time) *MarketStore {
	return &MarketStore{
		marketData: NewCollection(func(m *market.MarketData) string { return m.ID }, nil),
		news:       NewCollection(func(n *market.BusinessNews) string { return n.ID }, nil),
		metrics:    NewCollection(func(m *market.CompanyMetrics) string { return m.ID }, nil),
		indicators: NewCollection(func(i *market.EconomicIndicator) string { return i.ID }, nil),
		now:        now,
	}
}

// FindAllMarketData returns every quote in insertion order
func (s *MarketStore) FindAllMarketData(ctx context.Context) []market.MarketData {
	return s.marketData.All()
}

// FindMarketDataBySymbol returns the first quote for symbol
func (s *MarketStore) FindMarketDataBySymbol(ctx context.Context, symbol string) (market.MarketData, bool) {
	return s.marketData.Find(func(m *market.MarketData) bool {
		return m.Symbol == symbol
	})
}

// FindBusinessNews returns news in the given category, or all news when
// category is empty or "all"
func (s *MarketStore) FindBusinessNews(ctx context.Context, category string) []market.BusinessNews {
	if category == "" || category == market.AllCategories {
		return s.news.All()
	}
	return s.news.Filter(func(n *market.BusinessNews) bool {
		return n.Category == category
	})
}

// FindAllCompanyMetrics returns every metrics record in insertion order
func (s *MarketStore) FindAllCompanyMetrics(ctx context.Context) []market.CompanyMetrics {
	return s.metrics.All()
}

// FindCompanyMetricsBySymbol returns the first metrics record for symbol
func (s *MarketStore) FindCompanyMetricsBySymbol(ctx context.Context, symbol string) (market.CompanyMetrics, bool) {
	return s.metrics.Find(func(m *market.CompanyMetrics) bool {
		return m.Symbol == symbol
	})
}

// FindAllEconomicIndicators returns every indicator in insertion order
func (s *MarketStore) FindAllEconomicIndicators(ctx context.Context) []market.EconomicIndicator {
	return s.indicators.All()
}

// AddMarketData stores a quote
func (s *MarketStore) AddMarketData(ctx context.Context, m market.MarketData) market.MarketData {
	m.Stamp(s.now())
	return s.marketData.Insert(m)
}

// AddBusinessNews stores a headline
func (s *MarketStore) AddBusinessNews(ctx context.Context, n market.BusinessNews) market.BusinessNews {
	n.Stamp(s.now())
	return s.news.Insert(n)
}

// AddCompanyMetrics stores a metrics record
func (s *MarketStore) AddCompanyMetrics(ctx context.Context, m market.CompanyMetrics) market.CompanyMetrics {
	m.Stamp(s.now())
	return s.metrics.Insert(m)
}

// AddEconomicIndicator stores an indicator
func (s *MarketStore) AddEconomicIndicator(ctx context.Context, i market.EconomicIndicator) market.EconomicIndicator {
	i.Stamp(s.now())
	return s.indicators.Insert(i)
}

var (
	_ market.CompanyRepository = (*CompanyStore)(nil)
	_ market.Repository        = (*MarketStore)(nil)
)
