// Package ledger manages P&L accounts and the IO mappings that reference them.
package ledger

import (
	"context"
	"strings"

	"github.com/findash/backend/internal/domain/ledger"
	"github.com/findash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrQueryRequired is returned by search when the query is blank
var ErrQueryRequired = shared.NewDomainError("INVALID_INPUT", "Search query is required")

// CreatePlAccountRequest holds the fields of a new P&L account
type CreatePlAccountRequest struct {
	PlAccount string
}

// UpdatePlAccountRequest holds the fields to change on a P&L account
type UpdatePlAccountRequest struct {
	PlAccount *string
}

// CreateIoMappingRequest holds the fields of a new IO mapping
type CreateIoMappingRequest struct {
	Description string
	AccountID   string
}

// UpdateIoMappingRequest holds the fields to change on an IO mapping
type UpdateIoMappingRequest struct {
	Description *string
	AccountID   *string
}

// LedgerService handles P&L account and IO mapping operations
type LedgerService struct {
	accounts ledger.PlAccountRepository
	mappings ledger.IoMappingRepository
	logger   *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	accounts ledger.PlAccountRepository,
	mappings ledger.IoMappingRepository,
	logger *zap.Logger,
) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		accounts: accounts,
		mappings: mappings,
		logger:   logger,
	}
}

// ===================== P&L accounts =====================

// ListPlAccounts returns every account
func (s *LedgerService) ListPlAccounts(ctx context.Context) []ledger.PlAccount {
	return s.accounts.FindAll(ctx)
}

// GetPlAccount returns one account
func (s *LedgerService) GetPlAccount(ctx context.Context, id string) (ledger.PlAccount, error) {
	a, ok := s.accounts.FindByID(ctx, id)
	if !ok {
		return ledger.PlAccount{}, shared.NewNotFoundError("P&L account")
	}
	return a, nil
}

// SearchPlAccounts returns accounts whose name contains query
func (s *LedgerService) SearchPlAccounts(ctx context.Context, query string) ([]ledger.PlAccount, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}
	return s.accounts.Search(ctx, query), nil
}

// CreatePlAccount stores a new account
func (s *LedgerService) CreatePlAccount(ctx context.Context, req CreatePlAccountRequest) ledger.PlAccount {
	a := s.accounts.Create(ctx, ledger.PlAccount{PlAccount: req.PlAccount})
	s.logger.Info("P&L account created", zap.String("id", a.ID))
	return a
}

// UpdatePlAccount changes an account
func (s *LedgerService) UpdatePlAccount(ctx context.Context, id string, req UpdatePlAccountRequest) (ledger.PlAccount, error) {
	a, ok := s.accounts.Update(ctx, id, ledger.PlAccountPatch{PlAccount: req.PlAccount})
	if !ok {
		return ledger.PlAccount{}, shared.NewNotFoundError("P&L account")
	}
	return a, nil
}

// DeletePlAccount removes an account. Mappings pointing at it are kept.
func (s *LedgerService) DeletePlAccount(ctx context.Context, id string) error {
	if !s.accounts.Delete(ctx, id) {
		return shared.NewNotFoundError("P&L account")
	}
	if n := len(s.mappings.FindByAccount(ctx, id)); n > 0 {
		s.logger.Warn("deleted P&L account is still referenced",
			zap.String("id", id),
			zap.Int("mappings", n),
		)
	}
	return nil
}

// ===================== IO mappings =====================

// ListIoMappings returns every mapping
func (s *LedgerService) ListIoMappings(ctx context.Context) []ledger.IoMapping {
	return s.mappings.FindAll(ctx)
}

// GetIoMapping returns one mapping
func (s *LedgerService) GetIoMapping(ctx context.Context, id string) (ledger.IoMapping, error) {
	m, ok := s.mappings.FindByID(ctx, id)
	if !ok {
		return ledger.IoMapping{}, shared.NewNotFoundError("IO mapping")
	}
	return m, nil
}

// CreateIoMapping stores a new mapping. The account is not required to exist.
func (s *LedgerService) CreateIoMapping(ctx context.Context, req CreateIoMappingRequest) ledger.IoMapping {
	m := s.mappings.Create(ctx, ledger.IoMapping{Description: req.Description, AccountID: req.AccountID})
	if _, ok := s.accounts.FindByID(ctx, req.AccountID); !ok {
		s.logger.Debug("IO mapping references unknown account",
			zap.String("id", m.ID),
			zap.String("account_id", req.AccountID),
		)
	}
	return m
}

// UpdateIoMapping changes a mapping
func (s *LedgerService) UpdateIoMapping(ctx context.Context, id string, req UpdateIoMappingRequest) (ledger.IoMapping, error) {
	m, ok := s.mappings.Update(ctx, id, ledger.IoMappingPatch{Description: req.Description, AccountID: req.AccountID})
	if !ok {
		return ledger.IoMapping{}, shared.NewNotFoundError("IO mapping")
	}
	return m, nil
}

// DeleteIoMapping removes a mapping
func (s *LedgerService) DeleteIoMapping(ctx context.Context, id string) error {
	if !s.mappings.Delete(ctx, id) {
		return shared.NewNotFoundError("IO mapping")
	}
	return nil
}
