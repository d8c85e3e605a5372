package handler

import (
	marketapp "github.com/findash/backend/internal/application/market"
	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company directory endpoints
type CompanyHandler struct {
	BaseHandler
	marketService *marketapp.MarketService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(marketService *marketapp.MarketService) *CompanyHandler {
	return &CompanyHandler{
		marketService: marketService,
	}
}

// List godoc
//
//	@ID			listCompanies
//	@Summary	List companies
//	@Tags		companies
//	@Produce	json
//	@Success	200	{array}	market.Company
//	@Router		/companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	h.Success(c, dto.NonNil(h.marketService.ListCompanies(c.Request.Context())))
}

// Search godoc
//
//	@ID				searchCompanies
//	@Summary		Search companies
//	@Description	Case-insensitive substring match on name or code
//	@Tags			companies
//	@Produce		json
//	@Param			q	query		string	true	"Search text"
//	@Success		200	{array}		market.Company
//	@Failure		400	{object}	dto.ErrorResponse
//	@Router			/companies/search [get]
func (h *CompanyHandler) Search(c *gin.Context) {
	companies, err := h.marketService.SearchCompanies(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NonNil(companies))
}

// GetByID godoc
//
//	@ID			getCompany
//	@Summary	Get a company
//	@Tags		companies
//	@Produce	json
//	@Param		id	path		string	true	"Company ID"
//	@Success	200	{object}	market.Company
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.marketService.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Create godoc
//
//	@ID			createCompany
//	@Summary	Create a company
//	@Tags		companies
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateCompanyRequest	true	"Company"
//	@Success	201		{object}	market.Company
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	h.Created(c, h.marketService.CreateCompany(c.Request.Context(), req.ToAppRequest()))
}

// Update godoc
//
//	@ID			updateCompany
//	@Summary	Update a company
//	@Tags		companies
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Company ID"
//	@Param		request	body		UpdateCompanyRequest	true	"Fields to change"
//	@Success	200		{object}	market.Company
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	company, err := h.marketService.UpdateCompany(c.Request.Context(), c.Param("id"), req.ToAppRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete godoc
//
//	@ID			deleteCompany
//	@Summary	Delete a company
//	@Tags		companies
//	@Param		id	path	string	true	"Company ID"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.marketService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
