package admin

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"runnerspro/internal/database"
)

func names(users []AdminUser) []string {
	var out []string
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	users := DemoUsers()

	t.Run("ByName", func(t *testing.T) {
		got := Filter(users, "SARAH")
		if len(got) != 1 || got[0].ID != "user-124" {
			t.Errorf("Expected Sarah Johnson, got %v", names(got))
		}
	})

	t.Run("ByEmail", func(t *testing.T) {
		got := Filter(users, "robert@")
		if len(got) != 1 || got[0].Name != "Robert Brown" {
			t.Errorf("Expected Robert Brown, got %v", names(got))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := Filter(users, "  "); len(got) != len(users) {
			t.Errorf("Expected all %d users, got %d", len(users), len(got))
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		if got := Filter(users, "zzz"); len(got) != 0 {
			t.Errorf("Expected no users, got %v", names(got))
		}
	})
}

func TestSort(t *testing.T) {
	users := DemoUsers()

	t.Run("DefaultIsLastActiveDesc", func(t *testing.T) {
		got := Sort(users, DefaultSort())
		if got[0].LastActive != "2023-02-15" || got[len(got)-1].LastActive != "2023-02-08" {
			t.Errorf("Unexpected order: %v", names(got))
		}
	})

	t.Run("NameAsc", func(t *testing.T) {
		got := Sort(users, SortState{Field: FieldName, Direction: Asc})
		want := []string{"Emily Wilson", "John Smith", "Michael Davis", "Robert Brown", "Sarah Johnson"}
		for i := range want {
			if got[i].Name != want[i] {
				t.Fatalf("Expected %v, got %v", want, names(got))
			}
		}
	})

	t.Run("IsActiveStable", func(t *testing.T) {
		got := Sort(users, SortState{Field: FieldIsActive, Direction: Asc})
		if got[0].Name != "Robert Brown" {
			t.Errorf("Expected inactive user first, got %v", names(got))
		}
		if got[1].Name != "John Smith" {
			t.Errorf("Expected ties to keep input order, got %v", names(got))
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		_ = Sort(users, SortState{Field: FieldEmail, Direction: Desc})
		if users[0].ID != "user-123" {
			t.Errorf("Sort must not reorder its input")
		}
	})
}

func TestSortStateToggle(t *testing.T) {
	s := DefaultSort()

	s = s.Toggle(FieldLastActive)
	if s.Direction != Asc {
		t.Errorf("Expected same field to flip to asc, got %s", s.Direction)
	}
	s = s.Toggle(FieldLastActive)
	if s.Direction != Desc {
		t.Errorf("Expected same field to flip back to desc, got %s", s.Direction)
	}
	s = s.Toggle(FieldName)
	if s.Field != FieldName || s.Direction != Asc {
		t.Errorf("Expected new field to start ascending, got %+v", s)
	}

	if _, ok := ParseSortField("password"); ok {
		t.Errorf("Expected unknown field to be rejected")
	}
}

func TestCountSyncStatus(t *testing.T) {
	c := CountSyncStatus(DemoSyncEvents(time.Now()))
	if c.Total != 5 || c.Success != 4 || c.Error != 1 {
		t.Errorf("Unexpected counts: %+v", c)
	}
	if empty := CountSyncStatus(nil); empty != (SyncCounts{}) {
		t.Errorf("Expected zero counts, got %+v", empty)
	}
}

func TestSyncStore(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewSyncStore(db.SQL)
	store.now = func() time.Time { return clock }

	t.Run("SeedDemo", func(t *testing.T) {
		if err := store.SeedDemo(ctx); err != nil {
			t.Fatalf("SeedDemo failed: %v", err)
		}
		// Second call must not duplicate.
		if err := store.SeedDemo(ctx); err != nil {
			t.Fatalf("SeedDemo failed: %v", err)
		}
		events, err := store.Recent(ctx, 50)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(events) != 5 {
			t.Fatalf("Expected 5 events, got %d", len(events))
		}
		if events[0].ID != "sync-1" || !events[0].Timestamp.Equal(clock) {
			t.Errorf("Expected sync-1 stamped now first, got %s at %s", events[0].ID, events[0].Timestamp)
		}
		oldest := events[len(events)-1]
		if want := clock.Add(-(22*time.Hour + 17*time.Minute + 37*time.Second)); !oldest.Timestamp.Equal(want) {
			t.Errorf("Expected oldest demo event at %s, got %s", want, oldest.Timestamp)
		}
	})

	t.Run("CleanupKeepsFreshDemo", func(t *testing.T) {
		removed, err := store.Cleanup(ctx, 90)
		if err != nil {
			t.Fatalf("Cleanup failed: %v", err)
		}
		if removed != 0 {
			t.Errorf("Expected freshly seeded events to survive, removed %d", removed)
		}
	})

	t.Run("RecordAndCleanup", func(t *testing.T) {
		clock = clock.Add(time.Hour)
		err := store.Record(ctx, SyncEvent{SessionID: "s1", Service: "Strava API", Status: SyncSuccess, Message: "ok"})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		events, _ := store.Recent(ctx, 1)
		if len(events) != 1 || events[0].SessionID != "s1" || events[0].Details != "{}" {
			t.Fatalf("Expected freshly recorded event first, got %+v", events)
		}
		if !events[0].Timestamp.Equal(clock) {
			t.Errorf("Expected timestamp %s, got %s", clock, events[0].Timestamp)
		}

		clock = clock.AddDate(0, 0, 91)
		removed, err := store.Cleanup(ctx, 90)
		if err != nil {
			t.Fatalf("Cleanup failed: %v", err)
		}
		if removed != 6 {
			t.Errorf("Expected all 6 events to expire, got %d", removed)
		}
	})
}
