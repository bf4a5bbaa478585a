package admin

import (
	"sort"
	"strings"
)

// AdminUser is a row of the admin user table.
type AdminUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
	LastActive   string `json:"lastActive"`
	IsActive     bool   `json:"isActive"`
}

// SortField names a sortable AdminUser column.
type SortField string

const (
	FieldID           SortField = "id"
	FieldName         SortField = "name"
	FieldEmail        SortField = "email"
	FieldSubscription SortField = "subscription"
	FieldLastActive   SortField = "lastActive"
	FieldIsActive     SortField = "isActive"
)

// ParseSortField returns the field named s, or false when s is not a column.
func ParseSortField(s string) (SortField, bool) {
	switch f := SortField(s); f {
	case FieldID, FieldName, FieldEmail, FieldSubscription, FieldLastActive, FieldIsActive:
		return f, true
	}
	return "", false
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortState is the current table ordering.
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort orders by most recent activity first.
func DefaultSort() SortState {
	return SortState{Field: FieldLastActive, Direction: Desc}
}

// Toggle returns the state after selecting field: the same field flips direction,
// a different field starts ascending.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == Asc {
			return SortState{Field: field, Direction: Desc}
		}
		return SortState{Field: field, Direction: Asc}
	}
	return SortState{Field: field, Direction: Asc}
}

// Filter keeps users whose name or email contains term, ignoring case.
// An empty term keeps everyone.
func Filter(users []AdminUser, term string) []AdminUser {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]AdminUser, 0, len(users))
	for _, u := range users {
		if term == "" ||
			strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out
}

// Sort returns a copy of users ordered by state. Ties keep their input order.
func Sort(users []AdminUser, state SortState) []AdminUser {
	out := make([]AdminUser, len(users))
	copy(out, users)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], state.Field)
		if state.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Query filters then sorts.
func Query(users []AdminUser, term string, state SortState) []AdminUser {
	return Sort(Filter(users, term), state)
}

func compare(a, b AdminUser, field SortField) int {
	switch field {
	case FieldID:
		return strings.Compare(a.ID, b.ID)
	case FieldName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case FieldEmail:
		return strings.Compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
	case FieldSubscription:
		return strings.Compare(a.Subscription, b.Subscription)
	case FieldIsActive:
		switch {
		case a.IsActive == b.IsActive:
			return 0
		case !a.IsActive:
			return -1
		default:
			return 1
		}
	default:
		return strings.Compare(a.LastActive, b.LastActive)
	}
}

// DemoUsers is the fixed user list shown on the admin dashboard.
func DemoUsers() []AdminUser {
	return []AdminUser{
		{ID: "user-123", Name: "John Smith", Email: "john@example.com", Subscription: "premium", LastActive: "2023-02-15", IsActive: true},
		{ID: "user-124", Name: "Sarah Johnson", Email: "sarah@example.com", Subscription: "free", LastActive: "2023-02-14", IsActive: true},
		{ID: "user-125", Name: "Michael Davis", Email: "michael@example.com", Subscription: "premium", LastActive: "2023-02-13", IsActive: true},
		{ID: "user-126", Name: "Emily Wilson", Email: "emily@example.com", Subscription: "free", LastActive: "2023-02-10", IsActive: true},
		{ID: "user-127", Name: "Robert Brown", Email: "robert@example.com", Subscription: "premium", LastActive: "2023-02-08", IsActive: false},
	}
}
