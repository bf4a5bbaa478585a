// Package auth implements the demo sign-in flow: credential checks against fixed
// rules and HS256 session tokens. It is not a real identity provider.
package auth

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Subscription tier of a user.
type Subscription string

const (
	SubscriptionFree    Subscription = "free"
	SubscriptionPremium Subscription = "premium"
)

const (
	adminEmail        = "admin@runnerspro.com"
	adminPassword     = "admin123"
	minPasswordLength = 6
	minNameLength     = 2
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrNameTooShort       = errors.New("please enter your full name")
)

// User is an authenticated account.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	Subscription Subscription `json:"subscription"`
	AvatarURL    string       `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// IsAdmin reports whether u has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Login checks credentials. The admin account is fixed; any other well-formed email
// with a long enough password signs in as a free user named after the email's local part.
func Login(email, password string, now time.Time) (User, error) {
	email = strings.TrimSpace(email)
	if email == adminEmail && password == adminPassword {
		return User{
			ID:           "admin-1",
			Email:        email,
			Name:         "Admin User",
			Role:         RoleAdmin,
			Subscription: SubscriptionPremium,
			AvatarURL:    "https://i.pravatar.cc/150?img=68",
			CreatedAt:    now,
		}, nil
	}

	if !strings.Contains(email, "@") || len(password) < minPasswordLength {
		return User{}, ErrInvalidCredentials
	}

	return newUser(email, strings.SplitN(email, "@", 2)[0], now), nil
}

// Signup validates the registration form and creates a free user.
func Signup(email, password, name string, now time.Time) (User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return User{}, ErrPasswordTooShort
	}
	if len(name) < minNameLength {
		return User{}, ErrNameTooShort
	}

	return newUser(email, name, now), nil
}

func newUser(email, name string, now time.Time) User {
	return User{
		ID:           "user-" + uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         RoleUser,
		Subscription: SubscriptionFree,
		AvatarURL:    fmt.Sprintf("https://i.pravatar.cc/150?img=%d", rand.IntN(70)),
		CreatedAt:    now,
	}
}
