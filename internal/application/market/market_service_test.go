package market

import (
	"context"
	"testing"

	"github.com/findash/backend/internal/domain/market"
	"github.com/findash/backend/internal/domain/shared"
	"github.com/findash/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMarketRepository is a mock implementation of market.Repository
type MockMarketRepository struct {
	mock.Mock
}

func (m *MockMarketRepository) FindAllMarketData(ctx context.Context) []market.MarketData {
	return m.Called(ctx).Get(0).([]market.MarketData)
}

func (m *MockMarketRepository) FindMarketDataBySymbol(ctx context.Context, symbol string) (market.MarketData, bool) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.MarketData), args.Bool(1)
}

func (m *MockMarketRepository) FindBusinessNews(ctx context.Context, category string) []market.BusinessNews {
	return m.Called(ctx, category).Get(0).([]market.BusinessNews)
}

func (m *MockMarketRepository) FindAllCompanyMetrics(ctx context.Context) []market.CompanyMetrics {
	return m.Called(ctx).Get(0).([]market.CompanyMetrics)
}

func (m *MockMarketRepository) FindCompanyMetricsBySymbol(ctx context.Context, symbol string) (market.CompanyMetrics, bool) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.CompanyMetrics), args.Bool(1)
}

func (m *MockMarketRepository) FindAllEconomicIndicators(ctx context.Context) []market.EconomicIndicator {
	return m.Called(ctx).Get(0).([]market.EconomicIndicator)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, code, de.Code)
}

func TestMarketService_GetMarketData(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMarketRepository)
	repo.On("FindMarketDataBySymbol", mock.Anything, "PTT").Return(market.MarketData{Symbol: "PTT", Price: "34.25"}, true)
	repo.On("FindMarketDataBySymbol", mock.Anything, "NOPE").Return(market.MarketData{}, false)
	svc := NewMarketService(nil, repo, nil)

	got, err := svc.GetMarketData(ctx, "PTT")
	require.NoError(t, err)
	assert.Equal(t, "34.25", got.Price)

	_, err = svc.GetMarketData(ctx, "NOPE")
	assertCode(t, err, "NOT_FOUND")
	repo.AssertExpectations(t)
}

func TestMarketService_GetCompanyMetrics(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMarketRepository)
	repo.On("FindCompanyMetricsBySymbol", mock.Anything, "AOT").Return(market.CompanyMetrics{Symbol: "AOT"}, true)
	repo.On("FindCompanyMetricsBySymbol", mock.Anything, "XXX").Return(market.CompanyMetrics{}, false)
	svc := NewMarketService(nil, repo, nil)

	_, err := svc.GetCompanyMetrics(ctx, "AOT")
	assert.NoError(t, err)
	_, err = svc.GetCompanyMetrics(ctx, "XXX")
	assertCode(t, err, "NOT_FOUND")
}

func TestMarketService_SeededReads(t *testing.T) {
	ctx := context.Background()
	store, err := memory.NewSeededStorage(ctx, "")
	require.NoError(t, err)
	svc := NewMarketService(store.Companies(), store.Market(), nil)

	assert.Len(t, svc.ListMarketData(ctx), 5)
	assert.Len(t, svc.ListBusinessNews(ctx, "all"), 5)
	assert.Len(t, svc.ListBusinessNews(ctx, "market"), 1)
	assert.Len(t, svc.ListCompanyMetrics(ctx), 3)
	assert.Len(t, svc.ListEconomicIndicators(ctx), 5)
}

func TestMarketService_CompanyLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStorage()
	svc := NewMarketService(store.Companies(), store.Market(), nil)

	c := svc.CreateCompany(ctx, CreateCompanyRequest{Name: "Acme Trading", Code: "ACM"})
	assert.Empty(t, c.Industry)

	industry := "Wholesale"
	updated, err := svc.UpdateCompany(ctx, c.ID, UpdateCompanyRequest{Industry: &industry})
	require.NoError(t, err)
	assert.Equal(t, "Wholesale", updated.Industry)
	assert.Equal(t, "Acme Trading", updated.Name)

	found, err := svc.SearchCompanies(ctx, "acm")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	_, err = svc.SearchCompanies(ctx, "")
	assertCode(t, err, "INVALID_INPUT")

	require.NoError(t, svc.DeleteCompany(ctx, c.ID))
	assertCode(t, svc.DeleteCompany(ctx, c.ID), "NOT_FOUND")
	_, err = svc.GetCompany(ctx, c.ID)
	assertCode(t, err, "NOT_FOUND")
}
