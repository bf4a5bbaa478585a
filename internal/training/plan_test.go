package training

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestWeekdayOf(t *testing.T) {
	cases := map[time.Weekday]Weekday{
		time.Sunday:    Sunday,
		time.Monday:    Monday,
		time.Tuesday:   Tuesday,
		time.Wednesday: Wednesday,
		time.Thursday:  Thursday,
		time.Friday:    Friday,
		time.Saturday:  Saturday,
	}
	// 2024-03-03 is a Sunday.
	base := time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := base.AddDate(0, 0, i)
		if got, want := WeekdayOf(day), cases[day.Weekday()]; got != want {
			t.Errorf("%s: expected %s, got %s", day.Format(DateLayout), want, got)
		}
	}

	if Sunday.Short() != "Sun" {
		t.Errorf("Expected short label Sun, got %s", Sunday.Short())
	}
	if Weekday(9).String() != "Unknown" {
		t.Errorf("Expected Unknown for out of range weekday")
	}
}

func TestDayLookup(t *testing.T) {
	plan := GeneratePlan(time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC))

	t.Run("InRange", func(t *testing.T) {
		acts := ActivitiesForDate(&plan, "2024-03-09")
		if len(acts) != 1 || acts[0].Title != "Long Run" {
			t.Errorf("Expected Long Run on Saturday, got %+v", acts)
		}
		meals := MealsForDate(&plan, "2024-03-09")
		if len(meals) != 3 {
			t.Errorf("Expected 3 meals, got %d", len(meals))
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		if acts := ActivitiesForDate(&plan, "2024-03-11"); len(acts) != 0 {
			t.Errorf("Expected no activities, got %d", len(acts))
		}
		if meals := MealsForDate(&plan, "1999-01-01"); len(meals) != 0 {
			t.Errorf("Expected no meals, got %d", len(meals))
		}
	})

	t.Run("NilPlan", func(t *testing.T) {
		if acts := ActivitiesForDate(nil, "2024-03-09"); acts == nil || len(acts) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", acts)
		}
		if meals := MealsForDate(nil, "2024-03-09"); meals == nil || len(meals) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", meals)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		a1 := ActivitiesForDate(&plan, "2024-03-05")
		a2 := ActivitiesForDate(&plan, "2024-03-05")
		if !reflect.DeepEqual(a1, a2) {
			t.Errorf("Expected identical activity results")
		}
		m1 := MealsForDate(&plan, "2024-03-05")
		m2 := MealsForDate(&plan, "2024-03-05")
		if !reflect.DeepEqual(m1, m2) {
			t.Errorf("Expected identical meal results")
		}
	})
}

func TestDays(t *testing.T) {
	plan := GeneratePlan(time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC))
	views := Days(&plan)

	if len(views) != 7 {
		t.Fatalf("Expected 7 day views, got %d", len(views))
	}
	if views[0].Weekday != "Monday" || views[6].Weekday != "Sunday" {
		t.Errorf("Expected Monday..Sunday, got %s..%s", views[0].Weekday, views[6].Weekday)
	}
	for _, v := range views {
		if len(v.Activities) != 1 || len(v.Meals) != 3 {
			t.Errorf("%s: expected 1 activity and 3 meals, got %d and %d", v.Date, len(v.Activities), len(v.Meals))
		}
	}

	if Days(nil) != nil {
		t.Errorf("Expected nil views for nil plan")
	}
}

func TestNutritionInfoJSONKeepsEmptyFat(t *testing.T) {
	b, err := json.Marshal(NutritionInfo{Calories: "400", Protein: "20", Carbs: "50"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"fat":""`) {
		t.Errorf("Expected fat key in %s", b)
	}
}
