package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"runnerspro/internal/admin"
	"runnerspro/internal/auth"
	"runnerspro/internal/logger"
	"runnerspro/internal/training"
)

// SyncRecorder stores the outcome of an app sync.
type SyncRecorder interface {
	Record(ctx context.Context, e admin.SyncEvent) error
}

// Manager owns session lifecycle: start at login, plan generation, app toggles and teardown.
type Manager struct {
	repo   *Repository
	gen    *training.Generator
	tokens *auth.Tokens
	syncs  SyncRecorder
	log    *logger.Logger

	// mu serializes read-modify-write cycles on stored sessions.
	mu  sync.Mutex
	now func() time.Time
}

// NewManager creates a Manager.
func NewManager(repo *Repository, gen *training.Generator, tokens *auth.Tokens, syncs SyncRecorder, log *logger.Logger) *Manager {
	return &Manager{
		repo:   repo,
		gen:    gen,
		tokens: tokens,
		syncs:  syncs,
		log:    log,
		now:    time.Now,
	}
}

// Start opens a session for user and issues its token.
func (m *Manager) Start(ctx context.Context, user auth.User) (*Session, error) {
	return m.start(ctx, user, 0)
}

func (m *Manager) start(ctx context.Context, user auth.User, chatID int64) (*Session, error) {
	now := m.now().UTC().Truncate(time.Second)
	s := &Session{
		ID:           uuid.NewString(),
		User:         user,
		TelegramChat: chatID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.tokens.TTL()),
	}

	token, err := m.tokens.Issue(s.ID, user, now)
	if err != nil {
		return nil, err
	}
	s.Token = token

	if err := m.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	m.log.Info("Session started", "session_id", s.ID, "user_id", user.ID, "role", user.Role)
	return s, nil
}

// Resume verifies a token and loads its session.
func (m *Manager) Resume(ctx context.Context, token string) (*Session, error) {
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	s, err := m.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	s.Token = token
	return s, nil
}

// Get loads a live session.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	s, err := m.repo.Get(ctx, id, m.now())
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End tears a session down. Ending an unknown session is not an error.
func (m *Manager) End(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.log.Info("Session ended", "session_id", id)
	return nil
}

// Plan returns the session's plan, generating one when there is none yet or the stored
// plan does not cover today.
func (m *Manager) Plan(ctx context.Context, id string) (*training.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := m.now()
	if s.Plan != nil && s.Plan.Contains(now.Format(training.DateLayout)) {
		return s.Plan, nil
	}
	return m.regenerate(ctx, s, now)
}

// RefreshPlan replaces the session's plan with a freshly generated one.
func (m *Manager) RefreshPlan(ctx context.Context, id string) (*training.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.regenerate(ctx, s, m.now())
}

func (m *Manager) regenerate(ctx context.Context, s *Session, now time.Time) (*training.Plan, error) {
	plan, err := m.gen.GenerateContext(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan: %w", err)
	}
	plan.UserID = s.User.ID
	s.Plan = &plan
	if err := m.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	m.log.Info("Plan generated", "session_id", s.ID, "start_date", plan.StartDate, "end_date", plan.EndDate)
	return s.Plan, nil
}

// ToggleApp flips the connection state of app and returns the new state.
func (m *Manager) ToggleApp(ctx context.Context, id string, app App) (ConnectedApps, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.Get(ctx, id)
	if err != nil {
		return ConnectedApps{}, err
	}
	s.Apps.toggle(app)
	if err := m.repo.Update(ctx, s); err != nil {
		return ConnectedApps{}, err
	}
	m.log.Info("App toggled", "session_id", id, "app", app, "connected", s.Apps.Connected(app))
	return s.Apps, nil
}

// Sync simulates pulling activities from a connected app. The synced count is the
// number of non-rest activities in the current plan up to today.
func (m *Manager) Sync(ctx context.Context, id string, app App) (admin.SyncEvent, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return admin.SyncEvent{}, err
	}
	if !s.Apps.Connected(app) {
		return admin.SyncEvent{}, fmt.Errorf("%w: %s", ErrAppNotConnected, app)
	}

	now := m.now()
	synced := 0
	if s.Plan != nil {
		today := now.Format(training.DateLayout)
		for _, a := range s.Plan.Activities {
			if a.Date <= today && a.Type != training.ActivityRest {
				synced++
			}
		}
	}

	event := admin.SyncEvent{
		ID:        uuid.NewString(),
		SessionID: s.ID,
		Service:   app.ServiceName(),
		Status:    admin.SyncSuccess,
		Message:   "Successfully synced " + strconv.Itoa(synced) + " activities",
		Details:   fmt.Sprintf(`{"syncedActivities": %d, "users": 1}`, synced),
		Timestamp: now.UTC().Truncate(time.Second),
	}
	if err := m.syncs.Record(ctx, event); err != nil {
		return admin.SyncEvent{}, err
	}
	m.log.Info("App synced", "session_id", id, "app", app, "activities", synced)
	return event, nil
}

// ForTelegramChat returns the live session bound to a chat, starting one for a free user
// named after the chat member when there is none.
func (m *Manager) ForTelegramChat(ctx context.Context, chatID int64, name string) (*Session, error) {
	s, err := m.repo.GetByTelegramChat(ctx, chatID, m.now())
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	if name == "" {
		name = "Runner"
	}
	user := auth.User{
		ID:           "telegram-" + strconv.FormatInt(chatID, 10),
		Name:         name,
		Role:         auth.RoleUser,
		Subscription: auth.SubscriptionFree,
		CreatedAt:    m.now().UTC(),
	}
	return m.start(ctx, user, chatID)
}

// CleanupExpired removes sessions that have expired.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := m.repo.CleanupExpired(ctx, m.now())
	if err != nil {
		return 0, err
	}
	m.log.Info("Expired sessions removed", "count", n)
	return n, nil
}

// IsNotFound reports whether err means the session is gone.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, auth.ErrInvalidToken)
}
