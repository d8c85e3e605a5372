// Package identity holds dashboard users. Users are seeded into the store
// and looked up by username; no route exposes them.
package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/findash/backend/internal/domain/shared"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// User is a dashboard user
type User struct {
	shared.BaseEntity `yaml:",inline"`
	Username          string `json:"username" yaml:"username"`
	DisplayName       string `json:"displayName" yaml:"displayName"`
	Email             string `json:"email" yaml:"email"`
}

// NewUser creates a user with a normalized username
func NewUser(username, displayName, email string, now time.Time) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	return &User{
		BaseEntity:  shared.NewBaseEntity(now),
		Username:    NormalizeUsername(username),
		DisplayName: strings.TrimSpace(displayName),
		Email:       strings.TrimSpace(email),
	}, nil
}

// NormalizeUsername lowercases and trims a username for storage and lookup
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Validate checks a user loaded from outside NewUser, e.g. seed data
func (u *User) Validate() error {
	if err := validateUsername(u.Username); err != nil {
		return err
	}
	if u.Email != "" {
		return validateEmail(u.Email)
	}
	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
