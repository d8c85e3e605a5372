package identity

import "context"

// UserRepository stores users
type UserRepository interface {
	FindAll(ctx context.Context) []User
	FindByID(ctx context.Context, id string) (User, bool)
	// FindByUsername matches the normalized username
	FindByUsername(ctx context.Context, username string) (User, bool)
	Create(ctx context.Context, user User) User
}
