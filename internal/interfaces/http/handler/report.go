package handler

import (
	reportapp "github.com/findash/backend/internal/application/report"
	"github.com/findash/backend/internal/domain/statement"
	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the profit and loss, balance sheet and cash flow
// resources
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) bindQuery(c *gin.Context) (statement.Filter, bool) {
	var q StatementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return statement.Filter{}, false
	}
	return q.ToFilter(), true
}

func (h *ReportHandler) bindSummaryTopic(c *gin.Context) (string, bool) {
	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return "", false
	}
	return q.Topic, true
}

func (h *ReportHandler) topics(c *gin.Context, kind statement.Kind) {
	topics, err := h.reportService.Topics(c.Request.Context(), kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.TopicsResponse{Topics: topics})
}

// ===================== Profit and Loss =====================

// ListProfitLoss godoc
//
//	@ID				listProfitLoss
//	@Summary		List profit and loss statements
//	@Description	Filter by topic and an inclusive period range. Results keep insertion order.
//	@Tags			profit-loss
//	@Produce		json
//	@Param			topic		query		string	false	"Company name, or \"all\""
//	@Param			startPeriod	query		string	false	"First period, YYYY-MM"
//	@Param			endPeriod	query		string	false	"Last period, YYYY-MM"
//	@Success		200			{array}		statement.ProfitLossStatement
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		500			{object}	dto.ErrorResponse
//	@Router			/profit-loss [get]
func (h *ReportHandler) ListProfitLoss(c *gin.Context) {
	filter, ok := h.bindQuery(c)
	if !ok {
		return
	}
	h.Success(c, dto.NonNil(h.reportService.ListProfitLoss(c.Request.Context(), filter)))
}

// UpdateProfitLoss godoc
//
//	@ID				updateProfitLoss
//	@Summary		Update a profit and loss statement
//	@Description	Partial update. Fields locked by isEditable cannot change.
//	@Tags			profit-loss
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Statement ID"
//	@Param			request	body		UpdateProfitLossRequest	true	"Fields to change"
//	@Success		200		{object}	statement.ProfitLossStatement
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Router			/profit-loss/{id} [put]
func (h *ReportHandler) UpdateProfitLoss(c *gin.Context) {
	var req UpdateProfitLossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.reportService.UpdateProfitLoss(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// ProfitLossSummary godoc
//
//	@ID				profitLossSummary
//	@Summary		Summarize a company's profit and loss
//	@Description	Latest period figures, change against the previous period, total expenses and margins
//	@Tags			profit-loss
//	@Produce		json
//	@Param			topic	query		string	true	"Company name"
//	@Success		200		{object}	reportapp.ProfitLossSummary
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/profit-loss/summary [get]
func (h *ReportHandler) ProfitLossSummary(c *gin.Context) {
	topic, ok := h.bindSummaryTopic(c)
	if !ok {
		return
	}
	summary, err := h.reportService.ProfitLossSummary(c.Request.Context(), topic)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// ProfitLossTopics godoc
//
//	@ID			profitLossTopics
//	@Summary	List profit and loss topics
//	@Tags		profit-loss
//	@Produce	json
//	@Success	200	{object}	dto.TopicsResponse
//	@Router		/profit-loss/topics [get]
func (h *ReportHandler) ProfitLossTopics(c *gin.Context) {
	h.topics(c, statement.KindProfitLoss)
}

// ===================== Balance Sheet =====================

// ListBalanceSheets godoc
//
//	@ID				listBalanceSheets
//	@Summary		List balance sheets
//	@Description	Filter by topic and an inclusive period range. Results keep insertion order.
//	@Tags			balance-sheet
//	@Produce		json
//	@Param			topic		query		string	false	"Company name, or \"all\""
//	@Param			startPeriod	query		string	false	"First period, YYYY-MM"
//	@Param			endPeriod	query		string	false	"Last period, YYYY-MM"
//	@Success		200			{array}		statement.BalanceSheet
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		500			{object}	dto.ErrorResponse
//	@Router			/balance-sheet [get]
func (h *ReportHandler) ListBalanceSheets(c *gin.Context) {
	filter, ok := h.bindQuery(c)
	if !ok {
		return
	}
	h.Success(c, dto.NonNil(h.reportService.ListBalanceSheets(c.Request.Context(), filter)))
}

// UpdateBalanceSheet godoc
//
//	@ID				updateBalanceSheet
//	@Summary		Update a balance sheet
//	@Description	Partial update. Fields locked by isEditable cannot change.
//	@Tags			balance-sheet
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Statement ID"
//	@Param			request	body		UpdateBalanceSheetRequest	true	"Fields to change"
//	@Success		200		{object}	statement.BalanceSheet
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Router			/balance-sheet/{id} [put]
func (h *ReportHandler) UpdateBalanceSheet(c *gin.Context) {
	var req UpdateBalanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.reportService.UpdateBalanceSheet(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// BalanceSheetSummary godoc
//
//	@ID				balanceSheetSummary
//	@Summary		Summarize a company's balance sheet
//	@Description	Totals with change against the previous period, working capital and ratios
//	@Tags			balance-sheet
//	@Produce		json
//	@Param			topic	query		string	true	"Company name"
//	@Success		200		{object}	reportapp.BalanceSheetSummary
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/balance-sheet/summary [get]
func (h *ReportHandler) BalanceSheetSummary(c *gin.Context) {
	topic, ok := h.bindSummaryTopic(c)
	if !ok {
		return
	}
	summary, err := h.reportService.BalanceSheetSummary(c.Request.Context(), topic)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// BalanceSheetTopics godoc
//
//	@ID			balanceSheetTopics
//	@Summary	List balance sheet topics
//	@Tags		balance-sheet
//	@Produce	json
//	@Success	200	{object}	dto.TopicsResponse
//	@Router		/balance-sheet/topics [get]
func (h *ReportHandler) BalanceSheetTopics(c *gin.Context) {
	h.topics(c, statement.KindBalanceSheet)
}

// ===================== Cash Flow =====================

// ListCashFlows godoc
//
//	@ID				listCashFlows
//	@Summary		List cash flow statements
//	@Description	Filter by topic and an inclusive period range. Results keep insertion order.
//	@Tags			cash-flow
//	@Produce		json
//	@Param			topic		query		string	false	"Company name, or \"all\""
//	@Param			startPeriod	query		string	false	"First period, YYYY-MM"
//	@Param			endPeriod	query		string	false	"Last period, YYYY-MM"
//	@Success		200			{array}		statement.CashFlowStatement
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		500			{object}	dto.ErrorResponse
//	@Router			/cash-flow [get]
func (h *ReportHandler) ListCashFlows(c *gin.Context) {
	filter, ok := h.bindQuery(c)
	if !ok {
		return
	}
	h.Success(c, dto.NonNil(h.reportService.ListCashFlows(c.Request.Context(), filter)))
}

// UpdateCashFlow godoc
//
//	@ID				updateCashFlow
//	@Summary		Update a cash flow statement
//	@Description	Partial update. Fields locked by isEditable cannot change.
//	@Tags			cash-flow
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Statement ID"
//	@Param			request	body		UpdateCashFlowRequest	true	"Fields to change"
//	@Success		200		{object}	statement.CashFlowStatement
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Router			/cash-flow/{id} [put]
func (h *ReportHandler) UpdateCashFlow(c *gin.Context) {
	var req UpdateCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.reportService.UpdateCashFlow(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// CashFlowSummary godoc
//
//	@ID				cashFlowSummary
//	@Summary		Summarize a company's cash flow
//	@Description	Cash flow by activity with change against the previous period, free cash flow and ending cash
//	@Tags			cash-flow
//	@Produce		json
//	@Param			topic	query		string	true	"Company name"
//	@Success		200		{object}	reportapp.CashFlowSummary
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/cash-flow/summary [get]
func (h *ReportHandler) CashFlowSummary(c *gin.Context) {
	topic, ok := h.bindSummaryTopic(c)
	if !ok {
		return
	}
	summary, err := h.reportService.CashFlowSummary(c.Request.Context(), topic)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// CashFlowTopics godoc
//
//	@ID			cashFlowTopics
//	@Summary	List cash flow topics
//	@Tags		cash-flow
//	@Produce	json
//	@Success	200	{object}	dto.TopicsResponse
//	@Router		/cash-flow/topics [get]
func (h *ReportHandler) CashFlowTopics(c *gin.Context) {
	h.topics(c, statement.KindCashFlow)
}
