// Package session keeps the per-user context of a signed-in runner: who they are,
// which fitness apps are connected and the plan for the current week.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"runnerspro/internal/auth"
	"runnerspro/internal/training"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrUnknownApp      = errors.New("unknown app")
	ErrAppNotConnected = errors.New("app is not connected")
)

// App is a third-party fitness service a runner can connect.
type App string

const (
	AppStrava App = "strava"
	AppGarmin App = "garmin"
)

// ParseApp accepts an app name in any case.
func ParseApp(s string) (App, error) {
	switch a := App(strings.ToLower(strings.TrimSpace(s))); a {
	case AppStrava, AppGarmin:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownApp, s)
}

// ServiceName is the label used for the app in sync history.
func (a App) ServiceName() string {
	switch a {
	case AppStrava:
		return "Strava API"
	case AppGarmin:
		return "Garmin API"
	}
	return string(a)
}

// ConnectedApps records which apps are linked to a session.
type ConnectedApps struct {
	Strava bool `json:"strava"`
	Garmin bool `json:"garmin"`
}

// Connected reports whether app is linked.
func (c ConnectedApps) Connected(app App) bool {
	switch app {
	case AppStrava:
		return c.Strava
	case AppGarmin:
		return c.Garmin
	}
	return false
}

func (c *ConnectedApps) toggle(app App) {
	switch app {
	case AppStrava:
		c.Strava = !c.Strava
	case AppGarmin:
		c.Garmin = !c.Garmin
	}
}

// Session is the context of one sign-in.
type Session struct {
	ID           string         `json:"id"`
	User         auth.User      `json:"user"`
	Token        string         `json:"token,omitempty"`
	Apps         ConnectedApps  `json:"connectedApps"`
	Plan         *training.Plan `json:"plan,omitempty"`
	TelegramChat int64          `json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	ExpiresAt    time.Time      `json:"expiresAt"`
}
