// Package ledger holds the chart of P&L accounts and the IO mappings that
// point descriptions at them.
package ledger

import (
	"context"

	"github.com/findash/backend/internal/domain/shared"
)

// PlAccount is a named profit and loss account
type PlAccount struct {
	shared.BaseEntity `yaml:",inline"`
	PlAccount         string `json:"plAccount" yaml:"plAccount"`
}

// PlAccountPatch is a partial update of a PlAccount
type PlAccountPatch struct {
	PlAccount *string
}

// Apply merges the patch over a
func (p PlAccountPatch) Apply(a *PlAccount) {
	if p.PlAccount != nil {
		a.PlAccount = *p.PlAccount
	}
}

// IoMapping maps an input/output description to a PlAccount. AccountID is
// a weak reference: the account may not exist, and deleting an account
// leaves its mappings in place.
type IoMapping struct {
	shared.BaseEntity `yaml:",inline"`
	Description       string `json:"description" yaml:"description"`
	AccountID         string `json:"accountId" yaml:"accountId"`
}

// IoMappingPatch is a partial update of an IoMapping
type IoMappingPatch struct {
	Description *string
	AccountID   *string
}

// Apply merges the patch over m
func (p IoMappingPatch) Apply(m *IoMapping) {
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.AccountID != nil {
		m.AccountID = *p.AccountID
	}
}

// PlAccountRepository stores PlAccounts
type PlAccountRepository interface {
	FindAll(ctx context.Context) []PlAccount
	FindByID(ctx context.Context, id string) (PlAccount, bool)
	// Search returns accounts whose name contains query, ignoring case
	Search(ctx context.Context, query string) []PlAccount
	Create(ctx context.Context, a PlAccount) PlAccount
	Update(ctx context.Context, id string, patch PlAccountPatch) (PlAccount, bool)
	Delete(ctx context.Context, id string) bool
}

// IoMappingRepository stores IoMappings
type IoMappingRepository interface {
	FindAll(ctx context.Context) []IoMapping
	FindByID(ctx context.Context, id string) (IoMapping, bool)
	FindByAccount(ctx context.Context, accountID string) []IoMapping
	Create(ctx context.Context, m IoMapping) IoMapping
	Update(ctx context.Context, id string, patch IoMappingPatch) (IoMapping, bool)
	Delete(ctx context.Context, id string) bool
}
