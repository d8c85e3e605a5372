package memory

import (
	"context"
	"time"

	"github.com/findash/backend/internal/domain/identity"
)

// UserStore is the in-memory identity.UserRepository
type UserStore struct {
	items *Collection[identity.User]
	now   func() time.Time
}

func newUserStore(now func() time.Time) *UserStore {
	return &UserStore{
		items: NewCollection(func(u *identity.User) string { return u.ID }, nil),
		now:   now,
	}
}

// FindAll returns every user in insertion order
func (s *UserStore) FindAll(ctx context.Context) []identity.User {
	return s.items.All()
}

// FindByID returns the user with the given ID
func (s *UserStore) FindByID(ctx context.Context, id string) (identity.User, bool) {
	return s.items.Get(id)
}

// FindByUsername returns the first user with the given username
func (s *UserStore) FindByUsername(ctx context.Context, username string) (identity.User, bool) {
	username = identity.NormalizeUsername(username)
	return s.items.Find(func(u *identity.User) bool {
		return u.Username == username
	})
}

// Create stores a user, assigning a new ID
func (s *UserStore) Create(ctx context.Context, u identity.User) identity.User {
	u.Stamp(s.now())
	u.Username = identity.NormalizeUsername(u.Username)
	return s.items.Insert(u)
}

var _ identity.UserRepository = (*UserStore)(nil)
