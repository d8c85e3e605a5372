package handler

import (
	marketapp "github.com/findash/backend/internal/application/market"
	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// MarketHandler serves the read-only dashboard KPI resources
type MarketHandler struct {
	BaseHandler
	marketService *marketapp.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService *marketapp.MarketService) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// ListMarketData godoc
//
//	@ID			listMarketData
//	@Summary	List market quotes
//	@Tags		market-data
//	@Produce	json
//	@Success	200	{array}	market.MarketData
//	@Router		/market-data [get]
func (h *MarketHandler) ListMarketData(c *gin.Context) {
	h.Success(c, dto.NonNil(h.marketService.ListMarketData(c.Request.Context())))
}

// GetMarketData godoc
//
//	@ID			getMarketData
//	@Summary	Get the quote for a symbol
//	@Tags		market-data
//	@Produce	json
//	@Param		symbol	path		string	true	"Ticker symbol"
//	@Success	200		{object}	market.MarketData
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/market-data/{symbol} [get]
func (h *MarketHandler) GetMarketData(c *gin.Context) {
	data, err := h.marketService.GetMarketData(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, data)
}

// ListBusinessNews godoc
//
//	@ID			listBusinessNews
//	@Summary	List business news
//	@Tags		business-news
//	@Produce	json
//	@Param		category	query	string	false	"Exact category, or \"all\""
//	@Success	200			{array}	market.BusinessNews
//	@Router		/business-news [get]
func (h *MarketHandler) ListBusinessNews(c *gin.Context) {
	h.Success(c, dto.NonNil(h.marketService.ListBusinessNews(c.Request.Context(), c.Query("category"))))
}

// ListCompanyMetrics godoc
//
//	@ID			listCompanyMetrics
//	@Summary	List company metrics
//	@Tags		company-metrics
//	@Produce	json
//	@Success	200	{array}	market.CompanyMetrics
//	@Router		/company-metrics [get]
func (h *MarketHandler) ListCompanyMetrics(c *gin.Context) {
	h.Success(c, dto.NonNil(h.marketService.ListCompanyMetrics(c.Request.Context())))
}

// GetCompanyMetrics godoc
//
//	@ID			getCompanyMetrics
//	@Summary	Get the metrics for a symbol
//	@Tags		company-metrics
//	@Produce	json
//	@Param		symbol	path		string	true	"Ticker symbol"
//	@Success	200		{object}	market.CompanyMetrics
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/company-metrics/{symbol} [get]
func (h *MarketHandler) GetCompanyMetrics(c *gin.Context) {
	metrics, err := h.marketService.GetCompanyMetrics(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, metrics)
}

// ListEconomicIndicators godoc
//
//	@ID			listEconomicIndicators
//	@Summary	List economic indicators
//	@Tags		economic-indicators
//	@Produce	json
//	@Success	200	{array}	market.EconomicIndicator
//	@Router		/economic-indicators [get]
func (h *MarketHandler) ListEconomicIndicators(c *gin.Context) {
	h.Success(c, dto.NonNil(h.marketService.ListEconomicIndicators(c.Request.Context())))
}
