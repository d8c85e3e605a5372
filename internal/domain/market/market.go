// Package market holds the dashboard's KPI data: market quotes, business
// news, company metrics, economic indicators and the company directory.
package market

import (
	"context"

	"github.com/findash/backend/internal/domain/shared"
)

// AllCategories is the news category sentinel meaning "no filter"
const AllCategories = "all"

// Company is an entry in the company directory
type Company struct {
	shared.BaseEntity `yaml:",inline"`
	Name              string `json:"name" yaml:"name"`
	Code              string `json:"code" yaml:"code"`
	Industry          string `json:"industry" yaml:"industry"`
	Description       string `json:"description" yaml:"description"`
}

// CompanyPatch is a partial update of a Company
type CompanyPatch struct {
	Name        *string
	Code        *string
	Industry    *string
	Description *string
}

// Apply merges the patch over c
func (p CompanyPatch) Apply(c *Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
}

// MarketData is the latest quote for a listed symbol
type MarketData struct {
	shared.BaseEntity `yaml:",inline"`
	Symbol            string `json:"symbol" yaml:"symbol"`
	Name              string `json:"name" yaml:"name"`
	Price             string `json:"price" yaml:"price"`
	Change            string `json:"change" yaml:"change"`
	ChangePercent     string `json:"changePercent" yaml:"changePercent"`
	Volume            string `json:"volume" yaml:"volume"`
	MarketCap         string `json:"marketCap" yaml:"marketCap"`
}

// BusinessNews is a news headline shown on the dashboard
type BusinessNews struct {
	shared.BaseEntity `yaml:",inline"`
	Title             string `json:"title" yaml:"title"`
	Summary           string `json:"summary" yaml:"summary"`
	Category          string `json:"category" yaml:"category"`
	Source            string `json:"source" yaml:"source"`
	URL               string `json:"url" yaml:"url"`
	PublishedAt       string `json:"publishedAt" yaml:"publishedAt"`
}

// CompanyMetrics are headline operating figures for a listed company
type CompanyMetrics struct {
	shared.BaseEntity `yaml:",inline"`
	Symbol            string `json:"symbol" yaml:"symbol"`
	CompanyName       string `json:"companyName" yaml:"companyName"`
	Revenue           string `json:"revenue" yaml:"revenue"`
	Profit            string `json:"profit" yaml:"profit"`
	GrowthRate        string `json:"growthRate" yaml:"growthRate"`
	MarketShare       string `json:"marketShare" yaml:"marketShare"`
	Employees         int    `json:"employees" yaml:"employees"`
}

// EconomicIndicator is a macroeconomic series value
type EconomicIndicator struct {
	shared.BaseEntity `yaml:",inline"`
	Name              string `json:"name" yaml:"name"`
	Value             string `json:"value" yaml:"value"`
	PreviousValue     string `json:"previousValue" yaml:"previousValue"`
	Unit              string `json:"unit" yaml:"unit"`
	Period            string `json:"period" yaml:"period"`
}

// CompanyRepository stores the company directory
type CompanyRepository interface {
	FindAll(ctx context.Context) []Company
	FindByID(ctx context.Context, id string) (Company, bool)
	// Search returns companies whose name or code contains query, ignoring case
	Search(ctx context.Context, query string) []Company
	Create(ctx context.Context, c Company) Company
	Update(ctx context.Context, id string, patch CompanyPatch) (Company, bool)
	Delete(ctx context.Context, id string) bool
}

// Repository is the read side of the KPI data
type Repository interface {
	FindAllMarketData(ctx context.Context) []MarketData
	FindMarketDataBySymbol(ctx context.Context, symbol string) (MarketData, bool)
	FindBusinessNews(ctx context.Context, category string) []BusinessNews
	FindAllCompanyMetrics(ctx context.Context) []CompanyMetrics
	FindCompanyMetricsBySymbol(ctx context.Context, symbol string) (CompanyMetrics, bool)
	FindAllEconomicIndicators(ctx context.Context) []EconomicIndicator
}
