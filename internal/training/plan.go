package training

// ActivityType classifies a training session.
type ActivityType string

const (
	ActivityRun           ActivityType = "Run"
	ActivityRecovery      ActivityType = "Recovery"
	ActivityRest          ActivityType = "Rest"
	ActivityCrossTraining ActivityType = "Cross Training"
	ActivityRace          ActivityType = "Race"
)

// MealType is one of the three daily meals.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
)

// MealTypes lists the meals generated for every day, in serving order.
func MealTypes() []MealType {
	return []MealType{Breakfast, Lunch, Dinner}
}

// Metrics holds optional activity figures. Values are kept as the numeric strings
// the plan is exchanged with (distance in km, duration in minutes, pace in min/km).
type Metrics struct {
	Distance      string `json:"distance,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Pace          string `json:"pace,omitempty"`
	ElevationGain string `json:"elevationGain,omitempty"`
	HeartRate     string `json:"heartRate,omitempty"`
}

// Activity is a single day's training session.
type Activity struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type"`
	Date        string       `json:"date"`
	Completed   bool         `json:"completed,omitempty"`
	Metrics     *Metrics     `json:"metrics,omitempty"`
}

// NutritionInfo is a meal's nutrition estimate; values are numeric strings.
type NutritionInfo struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// Meal is a single breakfast, lunch or dinner entry.
type Meal struct {
	ID            string         `json:"id,omitempty"`
	Type          MealType       `json:"type"`
	Description   string         `json:"description"`
	Date          string         `json:"date"`
	NutritionInfo *NutritionInfo `json:"nutritionInfo,omitempty"`
}

// Plan is a Monday-anchored week of activities and meals.
type Plan struct {
	ID         string     `json:"id,omitempty"`
	UserID     string     `json:"userId,omitempty"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	WeekFocus  string     `json:"weekFocus,omitempty"`
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
	Generated  string     `json:"generated,omitempty"`
}

// DayView bundles everything planned for a single date.
type DayView struct {
	Date       string     `json:"date"`
	Weekday    string     `json:"weekday"`
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
}

// ActivitiesForDate returns the activities whose date equals date exactly.
// A nil plan or an unknown date yields an empty slice.
func ActivitiesForDate(plan *Plan, date string) []Activity {
	out := []Activity{}
	if plan == nil {
		return out
	}
	for _, a := range plan.Activities {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// MealsForDate returns the meals whose date equals date exactly.
func MealsForDate(plan *Plan, date string) []Meal {
	out := []Meal{}
	if plan == nil {
		return out
	}
	for _, m := range plan.Meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

// Dates lists the calendar dates from StartDate to EndDate inclusive.
func (p *Plan) Dates() []string {
	if p == nil {
		return nil
	}
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return nil
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return nil
	}
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// Contains reports whether date falls inside the plan's range.
func (p *Plan) Contains(date string) bool {
	if p == nil {
		return false
	}
	// YYYY-MM-DD compares correctly as a string.
	return date >= p.StartDate && date <= p.EndDate
}

// Days returns one DayView per plan date, Monday first.
func Days(plan *Plan) []DayView {
	var views []DayView
	for _, date := range plan.Dates() {
		t, _ := ParseDate(date)
		views = append(views, DayView{
			Date:       date,
			Weekday:    WeekdayOf(t).String(),
			Activities: ActivitiesForDate(plan, date),
			Meals:      MealsForDate(plan, date),
		})
	}
	return views
}
