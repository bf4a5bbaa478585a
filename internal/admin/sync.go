package admin

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SyncStatus is the outcome of a third-party sync.
type SyncStatus string

const (
	SyncSuccess SyncStatus = "success"
	SyncError   SyncStatus = "error"
)

// SyncEvent records one sync attempt against an external service.
type SyncEvent struct {
	ID        string     `json:"id"`
	SessionID string     `json:"sessionId,omitempty"`
	Service   string     `json:"service"`
	Status    SyncStatus `json:"status"`
	Message   string     `json:"message"`
	Details   string     `json:"details"`
	Timestamp time.Time  `json:"timestamp"`
}

// SyncCounts summarises a list of sync events.
type SyncCounts struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Error   int `json:"error"`
}

// CountSyncStatus tallies events by status.
func CountSyncStatus(events []SyncEvent) SyncCounts {
	c := SyncCounts{Total: len(events)}
	for _, e := range events {
		switch e.Status {
		case SyncSuccess:
			c.Success++
		case SyncError:
			c.Error++
		}
	}
	return c
}

// SyncStore handles persistence of sync events to SQLite.
type SyncStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSyncStore initializes the store with an existing database connection.
func NewSyncStore(db *sql.DB) *SyncStore {
	return &SyncStore{db: db, now: time.Now}
}

// Record saves an event. Missing ID and timestamp are filled in.
func (s *SyncStore) Record(ctx context.Context, e SyncEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now().UTC()
	}
	if e.Details == "" {
		e.Details = "{}"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sync_events (id, session_id, service, status, message, details, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, e.Service, string(e.Status), e.Message, e.Details, e.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sync event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *SyncStore) Recent(ctx context.Context, limit int) ([]SyncEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, service, status, message, details, created_at
		 FROM sync_events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync events: %w", err)
	}
	defer rows.Close()

	var events []SyncEvent
	for rows.Next() {
		var (
			e      SyncEvent
			status string
			ts     int64
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Service, &status, &e.Message, &e.Details, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan sync event: %w", err)
		}
		e.Status = SyncStatus(status)
		e.Timestamp = time.Unix(ts, 0).UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}

// Cleanup removes events older than the specified number of days.
func (s *SyncStore) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := s.now().AddDate(0, 0, -olderThanDays).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM sync_events WHERE created_at < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up sync events: %w", err)
	}
	return res.RowsAffected()
}

// SeedDemo inserts the dashboard's demo events when the store is empty. The events are
// dated relative to the store's clock so a default cleanup keeps them.
func (s *SyncStore) SeedDemo(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sync_events`).Scan(&n); err != nil {
		return fmt.Errorf("failed to count sync events: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, e := range DemoSyncEvents(s.now()) {
		if err := s.Record(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// DemoSyncEvents is the sample sync history shown on a fresh admin dashboard, newest
// first, with the latest event at now.
func DemoSyncEvents(now time.Time) []SyncEvent {
	now = now.UTC().Truncate(time.Second)
	ago := func(h, m, s int) time.Time {
		return now.Add(-(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second))
	}
	return []SyncEvent{
		{ID: "sync-1", Service: "Strava API", Status: SyncSuccess, Message: "Successfully synced 5 activities", Timestamp: now, Details: `{"syncedActivities": 5, "users": 3, "duration": "2.3s"}`},
		{ID: "sync-2", Service: "Garmin API", Status: SyncError, Message: "Authentication failed", Timestamp: ago(1, 15, 12), Details: `{"error": "Invalid credentials", "code": 401}`},
		{ID: "sync-3", Service: "Google Sheets", Status: SyncSuccess, Message: "Data updated successfully", Timestamp: ago(1, 44, 49), Details: `{"sheets": ["users", "activities", "plans"], "cells": 256}`},
		{ID: "sync-4", Service: "LangFlow AI", Status: SyncSuccess, Message: "Generated 3 new training plans", Timestamp: ago(4, 8, 17), Details: `{"plans": 3, "duration": "15.2s"}`},
		{ID: "sync-5", Service: "Strava API", Status: SyncSuccess, Message: "Successfully synced 2 activities", Timestamp: ago(22, 17, 37), Details: `{"syncedActivities": 2, "users": 1, "duration": "1.8s"}`},
	}
}
