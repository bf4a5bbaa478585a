package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"runnerspro/internal/training"
)

// Repository provides access to session persistence operations.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository instance.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new session.
func (r *Repository) Create(ctx context.Context, s *Session) error {
	userData, planData, err := encode(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, user_data, strava, garmin, plan_data, telegram_chat, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.User.ID, userData, s.Apps.Strava, s.Apps.Garmin, planData, nullChat(s.TelegramChat),
		s.CreatedAt.Unix(), s.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Get retrieves a session that has not expired at now. A missing or expired session
// yields nil without error.
func (r *Repository) Get(ctx context.Context, id string, now time.Time) (*Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_data, strava, garmin, plan_data, telegram_chat, created_at, expires_at
		 FROM sessions WHERE id = ? AND expires_at > ?`, id, now.Unix())
	return scanSession(row)
}

// GetByTelegramChat retrieves the most recent live session bound to a Telegram chat.
func (r *Repository) GetByTelegramChat(ctx context.Context, chatID int64, now time.Time) (*Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_data, strava, garmin, plan_data, telegram_chat, created_at, expires_at
		 FROM sessions WHERE telegram_chat = ? AND expires_at > ?
		 ORDER BY created_at DESC LIMIT 1`, chatID, now.Unix())
	return scanSession(row)
}

// Update stores the mutable parts of a session: connected apps, plan and expiry.
func (r *Repository) Update(ctx context.Context, s *Session) error {
	_, planData, err := encode(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE sessions SET strava = ?, garmin = ?, plan_data = ?, expires_at = ? WHERE id = ?`,
		s.Apps.Strava, s.Apps.Garmin, planData, s.ExpiresAt.Unix(), s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", s.ID, err)
	}
	return nil
}

// Delete removes a session.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// CleanupExpired removes all sessions expired at now and reports how many were removed.
func (r *Repository) CleanupExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to clean up sessions: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var (
		s                  Session
		userData           string
		planData           sql.NullString
		chat               sql.NullInt64
		createdAt, expires int64
	)
	err := row.Scan(&s.ID, &userData, &s.Apps.Strava, &s.Apps.Garmin, &planData, &chat, &createdAt, &expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if err := json.Unmarshal([]byte(userData), &s.User); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	if planData.Valid && planData.String != "" {
		var plan training.Plan
		if err := json.Unmarshal([]byte(planData.String), &plan); err != nil {
			return nil, fmt.Errorf("failed to decode session plan: %w", err)
		}
		s.Plan = &plan
	}
	s.TelegramChat = chat.Int64
	s.CreatedAt = time.Unix(createdAt, 0).UTC()
	s.ExpiresAt = time.Unix(expires, 0).UTC()
	return &s, nil
}

func encode(s *Session) (string, sql.NullString, error) {
	user, err := json.Marshal(s.User)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("failed to encode session user: %w", err)
	}
	if s.Plan == nil {
		return string(user), sql.NullString{}, nil
	}
	plan, err := json.Marshal(s.Plan)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("failed to encode session plan: %w", err)
	}
	return string(user), sql.NullString{String: string(plan), Valid: true}, nil
}

func nullChat(chat int64) sql.NullInt64 {
	return sql.NullInt64{Int64: chat, Valid: chat != 0}
}
