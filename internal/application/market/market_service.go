// Package market serves the company directory and the dashboard KPI data.
package market

import (
	"context"
	"strings"

	"github.com/findash/backend/internal/domain/market"
	"github.com/findash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrQueryRequired is returned by search when the query is blank
var ErrQueryRequired = shared.NewDomainError("INVALID_INPUT", "Search query is required")

// CreateCompanyRequest holds the fields of a new company
type CreateCompanyRequest struct {
	Name        string
	Code        string
	Industry    string
	Description string
}

// UpdateCompanyRequest holds the fields to change on a company
type UpdateCompanyRequest struct {
	Name        *string
	Code        *string
	Industry    *string
	Description *string
}

// MarketService handles company directory and KPI read operations
type MarketService struct {
	companies market.CompanyRepository
	kpis      market.Repository
	logger    *zap.Logger
}

// NewMarketService creates a new MarketService
func NewMarketService(companies market.CompanyRepository, kpis market.Repository, logger *zap.Logger) *MarketService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketService{
		companies: companies,
		kpis:      kpis,
		logger:    logger,
	}
}

// ===================== Companies =====================

// ListCompanies returns every company
func (s *MarketService) ListCompanies(ctx context.Context) []market.Company {
	return s.companies.FindAll(ctx)
}

// GetCompany returns one company
func (s *MarketService) GetCompany(ctx context.Context, id string) (market.Company, error) {
	c, ok := s.companies.FindByID(ctx, id)
	if !ok {
		return market.Company{}, shared.NewNotFoundError("Company")
	}
	return c, nil
}

// SearchCompanies returns companies whose name or code contains query
func (s *MarketService) SearchCompanies(ctx context.Context, query string) ([]market.Company, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}
	return s.companies.Search(ctx, query), nil
}

// CreateCompany stores a new company
func (s *MarketService) CreateCompany(ctx context.Context, req CreateCompanyRequest) market.Company {
	c := s.companies.Create(ctx, market.Company{
		Name:        req.Name,
		Code:        req.Code,
		Industry:    req.Industry,
		Description: req.Description,
	})
	s.logger.Info("company created", zap.String("id", c.ID), zap.String("code", c.Code))
	return c
}

// UpdateCompany changes a company
func (s *MarketService) UpdateCompany(ctx context.Context, id string, req UpdateCompanyRequest) (market.Company, error) {
	c, ok := s.companies.Update(ctx, id, market.CompanyPatch{
		Name:        req.Name,
		Code:        req.Code,
		Industry:    req.Industry,
		Description: req.Description,
	})
	if !ok {
		return market.Company{}, shared.NewNotFoundError("Company")
	}
	return c, nil
}

// DeleteCompany removes a company
func (s *MarketService) DeleteCompany(ctx context.Context, id string) error {
	if !s.companies.Delete(ctx, id) {
		return shared.NewNotFoundError("Company")
	}
	s.logger.Info("company deleted", zap.String("id", id))
	return nil
}

// ===================== KPI data =====================

// ListMarketData returns every quote
func (s *MarketService) ListMarketData(ctx context.Context) []market.MarketData {
	return s.kpis.FindAllMarketData(ctx)
}

// GetMarketData returns the quote for symbol
func (s *MarketService) GetMarketData(ctx context.Context, symbol string) (market.MarketData, error) {
	m, ok := s.kpis.FindMarketDataBySymbol(ctx, symbol)
	if !ok {
		return market.MarketData{}, shared.NewNotFoundError("Market data")
	}
	return m, nil
}

// ListBusinessNews returns news in category, or all news for "" and "all"
func (s *MarketService) ListBusinessNews(ctx context.Context, category string) []market.BusinessNews {
	return s.kpis.FindBusinessNews(ctx, category)
}

// ListCompanyMetrics returns every metrics record
func (s *MarketService) ListCompanyMetrics(ctx context.Context) []market.CompanyMetrics {
	return s.kpis.FindAllCompanyMetrics(ctx)
}

// GetCompanyMetrics returns the metrics for symbol
func (s *MarketService) GetCompanyMetrics(ctx context.Context, symbol string) (market.CompanyMetrics, error) {
	m, ok := s.kpis.FindCompanyMetricsBySymbol(ctx, symbol)
	if !ok {
		return market.CompanyMetrics{}, shared.NewNotFoundError("Company metrics")
	}
	return m, nil
}

// ListEconomicIndicators returns every indicator
func (s *MarketService) ListEconomicIndicators(ctx context.Context) []market.EconomicIndicator {
	return s.kpis.FindAllEconomicIndicators(ctx)
}
