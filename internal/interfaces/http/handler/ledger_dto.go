package handler

import (
	ledgerapp "github.com/findash/backend/internal/application/ledger"
)

// CreatePlAccountRequest represents a request to create a P&L account
//
//	@Description	Request body for creating a P&L account
type CreatePlAccountRequest struct {
	PlAccount string `json:"plAccount" binding:"required,min=1,max=200" example:"Revenue - Services"`
}

// ToAppRequest converts to the application request
func (r CreatePlAccountRequest) ToAppRequest() ledgerapp.CreatePlAccountRequest {
	return ledgerapp.CreatePlAccountRequest{PlAccount: r.PlAccount}
}

// UpdatePlAccountRequest represents a request to update a P&L account
//
//	@Description	Request body for updating a P&L account
type UpdatePlAccountRequest struct {
	PlAccount *string `json:"plAccount" binding:"omitnil,min=1,max=200" example:"Revenue - Consulting"`
}

// ToAppRequest converts to the application request
func (r UpdatePlAccountRequest) ToAppRequest() ledgerapp.UpdatePlAccountRequest {
	return ledgerapp.UpdatePlAccountRequest{PlAccount: r.PlAccount}
}

// CreateIoMappingRequest represents a request to create an IO mapping
//
//	@Description	Request body for creating an IO mapping. The account is not required to exist.
type CreateIoMappingRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500" example:"Sales invoice"`
	AccountID   string `json:"accountId" binding:"required,max=100" example:"4f1c2b9e-6a51-4d77-9b1a-2f3e8d0c7a10"`
}

// ToAppRequest converts to the application request
func (r CreateIoMappingRequest) ToAppRequest() ledgerapp.CreateIoMappingRequest {
	return ledgerapp.CreateIoMappingRequest{
		Description: r.Description,
		AccountID:   r.AccountID,
	}
}

// UpdateIoMappingRequest represents a request to update an IO mapping
//
//	@Description	Request body for updating an IO mapping
type UpdateIoMappingRequest struct {
	Description *string `json:"description" binding:"omitnil,min=1,max=500" example:"Service invoice"`
	AccountID   *string `json:"accountId" binding:"omitnil,min=1,max=100" example:"4f1c2b9e-6a51-4d77-9b1a-2f3e8d0c7a10"`
}

// ToAppRequest converts to the application request
func (r UpdateIoMappingRequest) ToAppRequest() ledgerapp.UpdateIoMappingRequest {
	return ledgerapp.UpdateIoMappingRequest{
		Description: r.Description,
		AccountID:   r.AccountID,
	}
}
