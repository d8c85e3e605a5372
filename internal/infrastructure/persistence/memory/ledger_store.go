package memory

import (
	"context"
	"strings"
	"time"

	"github.com/findash/backend/internal/domain/ledger"
)

// PlAccountStore is the in-memory ledger.PlAccountRepository
type PlAccountStore struct {
	items *Collection[ledger.PlAccount]
	now   func() time.Time
}

func newPlAccountStore(now func() time.Time) *PlAccountStore {
	return &PlAccountStore{
		items: NewCollection(func(a *ledger.PlAccount) string { return a.ID }, nil),
		now:   now,
	}
}

// FindAll returns every account in insertion order
func (s *PlAccountStore) FindAll(ctx context.Context) []ledger.PlAccount {
	return s.items.All()
}

// FindByID returns the account with the given ID
func (s *PlAccountStore) FindByID(ctx context.Context, id string) (ledger.PlAccount, bool) {
	return s.items.Get(id)
}

// Search matches the account name, ignoring case
func (s *PlAccountStore) Search(ctx context.Context, query string) []ledger.PlAccount {
	query = strings.TrimSpace(query)
	return s.items.Filter(func(a *ledger.PlAccount) bool {
		return containsFold(a.PlAccount, query)
	})
}

// Create stores a new account
func (s *PlAccountStore) Create(ctx context.Context, a ledger.PlAccount) ledger.PlAccount {
	a.Stamp(s.now())
	return s.items.Insert(a)
}

// Update merges patch over the stored account
func (s *PlAccountStore) Update(ctx context.Context, id string, patch ledger.PlAccountPatch) (ledger.PlAccount, bool) {
	a, ok, _ := s.items.Update(id, func(a *ledger.PlAccount) error {
		patch.Apply(a)
		a.Touch(s.now())
		return nil
	})
	return a, ok
}

// Delete removes the account. Mappings that reference it are left alone.
func (s *PlAccountStore) Delete(ctx context.Context, id string) bool {
	return s.items.Delete(id)
}

// IoMappingStore is the in-memory ledger.IoMappingRepository
type IoMappingStore struct {
	items *Collection[ledger.IoMapping]
	now   func() time.Time
}

func newIoMappingStore(now func() time.Time) *IoMappingStore {
	return &IoMappingStore{
		items: NewCollection(func(m *ledger.IoMapping) string { return m.ID }, nil),
		now:   now,
	}
}

// FindAll returns every mapping in insertion order
func (s *IoMappingStore) FindAll(ctx context.Context) []ledger.IoMapping {
	return s.items.All()
}

// FindByID returns the mapping with the given ID
func (s *IoMappingStore) FindByID(ctx context.Context, id string) (ledger.IoMapping, bool) {
	return s.items.Get(id)
}

// FindByAccount returns the mappings pointing at accountID
func (s *IoMappingStore) FindByAccount(ctx context.Context, accountID string) []ledger.IoMapping {
	return s.items.Filter(func(m *ledger.IoMapping) bool {
		return m.AccountID == accountID
	})
}

// Create stores a new mapping. The account reference is not checked.
func (s *IoMappingStore) Create(ctx context.Context, m ledger.IoMapping) ledger.IoMapping {
	m.Stamp(s.now())
	return s.items.Insert(m)
}

// Update merges patch over the stored mapping
func (s *IoMappingStore) Update(ctx context.Context, id string, patch ledger.IoMappingPatch) (ledger.IoMapping, bool) {
	m, ok, _ := s.items.Update(id, func(m *ledger.IoMapping) error {
		patch.Apply(m)
		m.Touch(s.now())
		return nil
	})
	return m, ok
}

// Delete removes the mapping
func (s *IoMappingStore) Delete(ctx context.Context, id string) bool {
	return s.items.Delete(id)
}

var (
	_ ledger.PlAccountRepository = (*PlAccountStore)(nil)
	_ ledger.IoMappingRepository = (*IoMappingStore)(nil)
)
