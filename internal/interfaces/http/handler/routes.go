package handler

import (
	"github.com/findash/backend/internal/interfaces/http/router"
)

// StatementRoutes creates the route groups for the three statement resources
func StatementRoutes(h *ReportHandler) []*router.DomainGroup {
	profitLoss := router.NewDomainGroup("/profit-loss")
	profitLoss.GET("", h.ListProfitLoss)
	profitLoss.GET("/summary", h.ProfitLossSummary)
	profitLoss.GET("/topics", h.ProfitLossTopics)
	profitLoss.PUT("/:id", h.UpdateProfitLoss)

	balanceSheet := router.NewDomainGroup("/balance-sheet")
	balanceSheet.GET("", h.ListBalanceSheets)
	balanceSheet.GET("/summary", h.BalanceSheetSummary)
	balanceSheet.GET("/topics", h.BalanceSheetTopics)
	balanceSheet.PUT("/:id", h.UpdateBalanceSheet)

	cashFlow := router.NewDomainGroup("/cash-flow")
	cashFlow.GET("", h.ListCashFlows)
	cashFlow.GET("/summary", h.CashFlowSummary)
	cashFlow.GET("/topics", h.CashFlowTopics)
	cashFlow.PUT("/:id", h.UpdateCashFlow)

	return []*router.DomainGroup{profitLoss, balanceSheet, cashFlow}
}

// LedgerRoutes creates the route groups for P&L accounts and IO mappings
func LedgerRoutes(h *LedgerHandler) []*router.DomainGroup {
	accounts := router.NewDomainGroup("/pl-accounts")
	accounts.GET("", h.ListPlAccounts)
	accounts.POST("", h.CreatePlAccount)
	accounts.GET("/search", h.SearchPlAccounts)
	accounts.GET("/:id", h.GetPlAccount)
	accounts.PUT("/:id", h.UpdatePlAccount)
	accounts.DELETE("/:id", h.DeletePlAccount)

	mappings := router.NewDomainGroup("/io-mappings")
	mappings.GET("", h.ListIoMappings)
	mappings.POST("", h.CreateIoMapping)
	mappings.GET("/:id", h.GetIoMapping)
	mappings.PUT("/:id", h.UpdateIoMapping)
	mappings.DELETE("/:id", h.DeleteIoMapping)

	return []*router.DomainGroup{accounts, mappings}
}

// CompanyRoutes creates the route group for the company directory
func CompanyRoutes(h *CompanyHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/companies")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/search", h.Search)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	return group
}

// MarketRoutes creates the route groups for the read-only KPI resources
func MarketRoutes(h *MarketHandler) []*router.DomainGroup {
	marketData := router.NewDomainGroup("/market-data")
	marketData.GET("", h.ListMarketData)
	marketData.GET("/:symbol", h.GetMarketData)

	news := router.NewDomainGroup("/business-news")
	news.GET("", h.ListBusinessNews)

	metrics := router.NewDomainGroup("/company-metrics")
	metrics.GET("", h.ListCompanyMetrics)
	metrics.GET("/:symbol", h.GetCompanyMetrics)

	indicators := router.NewDomainGroup("/economic-indicators")
	indicators.GET("", h.ListEconomicIndicators)

	return []*router.DomainGroup{marketData, news, metrics, indicators}
}

// SystemRoutes creates the route group for service information
func SystemRoutes(h *SystemHandler) *router.DomainGroup {
	group := router.NewDomainGroup("/system")
	group.GET("/info", h.GetSystemInfo)
	group.GET("/ping", h.Ping)
	return group
}
