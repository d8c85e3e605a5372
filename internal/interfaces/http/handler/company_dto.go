package handler

import (
	marketapp "github.com/findash/backend/internal/application/market"
)

// CreateCompanyRequest represents a request to create a company
//
//	@Description	Request body for creating a company
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200" example:"บริษัท ABC จำกัด"`
	Code        string `json:"code" binding:"max=50" example:"ABC"`
	Industry    string `json:"industry" binding:"max=100" example:"Manufacturing"`
	Description string `json:"description" binding:"max=1000" example:"Consumer electronics maker"`
}

// ToAppRequest converts to the application request
func (r CreateCompanyRequest) ToAppRequest() marketapp.CreateCompanyRequest {
	return marketapp.CreateCompanyRequest{
		Name:        r.Name,
		Code:        r.Code,
		Industry:    r.Industry,
		Description: r.Description,
	}
}

// UpdateCompanyRequest represents a request to update a company
//
//	@Description	Request body for updating a company
type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitnil,min=1,max=200" example:"บริษัท ABC โฮลดิ้ง จำกัด"`
	Code        *string `json:"code" binding:"omitnil,max=50" example:"ABCH"`
	Industry    *string `json:"industry" binding:"omitnil,max=100" example:"Holding"`
	Description *string `json:"description" binding:"omitnil,max=1000" example:"Group holding company"`
}

// ToAppRequest converts to the application request
func (r UpdateCompanyRequest) ToAppRequest() marketapp.UpdateCompanyRequest {
	return marketapp.UpdateCompanyRequest{
		Name:        r.Name,
		Code:        r.Code,
		Industry:    r.Industry,
		Description: r.Description,
	}
}
