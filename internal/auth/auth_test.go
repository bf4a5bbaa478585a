package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogin(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	t.Run("Admin", func(t *testing.T) {
		u, err := Login("admin@runnerspro.com", "admin123", now)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !u.IsAdmin() || u.Subscription != SubscriptionPremium {
			t.Errorf("Expected premium admin, got %+v", u)
		}
	})

	t.Run("RegularUser", func(t *testing.T) {
		u, err := Login("jane@example.com", "secret1", now)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if u.Name != "jane" {
			t.Errorf("Expected name 'jane', got '%s'", u.Name)
		}
		if u.Role != RoleUser || u.Subscription != SubscriptionFree {
			t.Errorf("Expected free user, got %+v", u)
		}
		if !strings.HasPrefix(u.ID, "user-") {
			t.Errorf("Expected user- prefixed id, got '%s'", u.ID)
		}
	})

	t.Run("WrongAdminPasswordFallsBack", func(t *testing.T) {
		u, err := Login("admin@runnerspro.com", "letmein", now)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if u.IsAdmin() {
			t.Errorf("Expected a regular user, got admin")
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, tc := range []struct{ email, password string }{
			{"no-at-sign", "secret1"},
			{"jane@example.com", "short"},
		} {
			if _, err := Login(tc.email, tc.password, now); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("%s: expected ErrInvalidCredentials, got %v", tc.email, err)
			}
		}
	})
}

func TestSignup(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name                  string
		email, password, full string
		wantErr               error
	}{
		{"Success", "jane@example.com", "secret1", "Jane Doe", nil},
		{"BadEmail", "jane", "secret1", "Jane Doe", ErrInvalidEmail},
		{"ShortPassword", "jane@example.com", "123", "Jane Doe", ErrPasswordTooShort},
		{"ShortName", "jane@example.com", "secret1", "J", ErrNameTooShort},
		{"EmailCheckedFirst", "jane", "1", "J", ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := Signup(tc.email, tc.password, tc.full, now)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && u.Name != tc.full {
				t.Errorf("Expected name '%s', got '%s'", tc.full, u.Name)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	user := User{ID: "user-1", Role: RoleAdmin}

	t.Run("RoundTrip", func(t *testing.T) {
		raw, err := tokens.Issue("sess-1", user, time.Now())
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if claims.SessionID != "sess-1" || claims.Subject != "user-1" || claims.Role != RoleAdmin {
			t.Errorf("Unexpected claims: %+v", claims)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		raw, err := tokens.Issue("sess-1", user, time.Now().Add(-2*time.Hour))
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, err := tokens.Parse(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		raw, _ := NewTokens("other-secret", time.Hour).Issue("sess-1", user, time.Now())
		if _, err := tokens.Parse(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := tokens.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}
