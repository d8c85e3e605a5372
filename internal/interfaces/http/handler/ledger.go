package handler

import (
	ledgerapp "github.com/findash/backend/internal/application/ledger"
	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles P&L account and IO mapping endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *ledgerapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *ledgerapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// ListPlAccounts godoc
//
//	@ID			listPlAccounts
//	@Summary	List P&L accounts
//	@Tags		pl-accounts
//	@Produce	json
//	@Success	200	{array}		ledger.PlAccount
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/pl-accounts [get]
func (h *LedgerHandler) ListPlAccounts(c *gin.Context) {
	h.Success(c, dto.NonNil(h.ledgerService.ListPlAccounts(c.Request.Context())))
}

// SearchPlAccounts godoc
//
//	@ID				searchPlAccounts
//	@Summary		Search P&L accounts
//	@Description	Case-insensitive substring match on the account name
//	@Tags			pl-accounts
//	@Produce		json
//	@Param			q	query		string	true	"Search text"
//	@Success		200	{array}		ledger.PlAccount
//	@Failure		400	{object}	dto.ErrorResponse
//	@Router			/pl-accounts/search [get]
func (h *LedgerHandler) SearchPlAccounts(c *gin.Context) {
	accounts, err := h.ledgerService.SearchPlAccounts(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NonNil(accounts))
}

// GetPlAccount godoc
//
//	@ID			getPlAccount
//	@Summary	Get a P&L account
//	@Tags		pl-accounts
//	@Produce	json
//	@Param		id	path		string	true	"Account ID"
//	@Success	200	{object}	ledger.PlAccount
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/pl-accounts/{id} [get]
func (h *LedgerHandler) GetPlAccount(c *gin.Context) {
	account, err := h.ledgerService.GetPlAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// CreatePlAccount godoc
//
//	@ID			createPlAccount
//	@Summary	Create a P&L account
//	@Tags		pl-accounts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreatePlAccountRequest	true	"Account"
//	@Success	201		{object}	ledger.PlAccount
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/pl-accounts [post]
func (h *LedgerHandler) CreatePlAccount(c *gin.Context) {
	var req CreatePlAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	h.Created(c, h.ledgerService.CreatePlAccount(c.Request.Context(), req.ToAppRequest()))
}

// UpdatePlAccount godoc
//
//	@ID			updatePlAccount
//	@Summary	Update a P&L account
//	@Tags		pl-accounts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Account ID"
//	@Param		request	body		UpdatePlAccountRequest	true	"Fields to change"
//	@Success	200		{object}	ledger.PlAccount
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/pl-accounts/{id} [put]
func (h *LedgerHandler) UpdatePlAccount(c *gin.Context) {
	var req UpdatePlAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	account, err := h.ledgerService.UpdatePlAccount(c.Request.Context(), c.Param("id"), req.ToAppRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// DeletePlAccount godoc
//
//	@ID				deletePlAccount
//	@Summary		Delete a P&L account
//	@Description	IO mappings that reference the account are kept
//	@Tags			pl-accounts
//	@Param			id	path	string	true	"Account ID"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/pl-accounts/{id} [delete]
func (h *LedgerHandler) DeletePlAccount(c *gin.Context) {
	if err := h.ledgerService.DeletePlAccount(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListIoMappings godoc
//
//	@ID			listIoMappings
//	@Summary	List IO mappings
//	@Tags		io-mappings
//	@Produce	json
//	@Success	200	{array}	ledger.IoMapping
//	@Router		/io-mappings [get]
func (h *LedgerHandler) ListIoMappings(c *gin.Context) {
	h.Success(c, dto.NonNil(h.ledgerService.ListIoMappings(c.Request.Context())))
}

// GetIoMapping godoc
//
//	@ID			getIoMapping
//	@Summary	Get an IO mapping
//	@Tags		io-mappings
//	@Produce	json
//	@Param		id	path		string	true	"Mapping ID"
//	@Success	200	{object}	ledger.IoMapping
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/io-mappings/{id} [get]
func (h *LedgerHandler) GetIoMapping(c *gin.Context) {
	mapping, err := h.ledgerService.GetIoMapping(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, mapping)
}

// CreateIoMapping godoc
//
//	@ID			createIoMapping
//	@Summary	Create an IO mapping
//	@Tags		io-mappings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateIoMappingRequest	true	"Mapping"
//	@Success	201		{object}	ledger.IoMapping
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/io-mappings [post]
func (h *LedgerHandler) CreateIoMapping(c *gin.Context) {
	var req CreateIoMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	h.Created(c, h.ledgerService.CreateIoMapping(c.Request.Context(), req.ToAppRequest()))
}

// UpdateIoMapping godoc
//
//	@ID			updateIoMapping
//	@Summary	Update an IO mapping
//	@Tags		io-mappings
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Mapping ID"
//	@Param		request	body		UpdateIoMappingRequest	true	"Fields to change"
//	@Success	200		{object}	ledger.IoMapping
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/io-mappings/{id} [put]
func (h *LedgerHandler) UpdateIoMapping(c *gin.Context) {
	var req UpdateIoMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	mapping, err := h.ledgerService.UpdateIoMapping(c.Request.Context(), c.Param("id"), req.ToAppRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, mapping)
}

// DeleteIoMapping godoc
//
//	@ID			deleteIoMapping
//	@Summary	Delete an IO mapping
//	@Tags		io-mappings
//	@Param		id	path	string	true	"Mapping ID"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/io-mappings/{id} [delete]
func (h *LedgerHandler) DeleteIoMapping(c *gin.Context) {
	if err := h.ledgerService.DeleteIoMapping(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
