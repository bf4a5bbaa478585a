package training

// WeekFocus is the focus statement attached to every generated plan.
const WeekFocus = "Building aerobic base with tempo work to improve lactate threshold."

type activityTemplate struct {
	Title       string
	Description string
	Type        ActivityType
	Metrics     *Metrics
}

var activityTemplates = map[Weekday]activityTemplate{
	Monday: {
		Title:       "Easy Run",
		Description: "Start the week with an easy run to recover from any weekend exertion.",
		Type:        ActivityRun,
		Metrics:     &Metrics{Distance: "5", Duration: "30", Pace: "6:00"},
	},
	Tuesday: {
		Title:       "Speed Work",
		Description: "8x400m repeats with 200m easy jog recovery between each.",
		Type:        ActivityRun,
		Metrics:     &Metrics{Distance: "8", Duration: "45", Pace: "4:45"},
	},
	Wednesday: {
		Title:       "Recovery",
		Description: "Active recovery day with light stretching or yoga.",
		Type:        ActivityRecovery,
		Metrics:     &Metrics{Duration: "30"},
	},
	Thursday: {
		Title:       "Tempo Run",
		Description: "15 min easy warm-up, 20 min at tempo pace, 10 min cool-down.",
		Type:        ActivityRun,
		Metrics:     &Metrics{Distance: "7.5", Duration: "45", Pace: "5:00"},
	},
	Friday: {
		Title:       "Rest Day",
		Description: "Complete rest to recover and prepare for the weekend.",
		Type:        ActivityRest,
	},
	Saturday: {
		Title:       "Long Run",
		Description: "Build endurance with a longer, slower run. Focus on distance, not pace.",
		Type:        ActivityRun,
		Metrics:     &Metrics{Distance: "15", Duration: "90", Pace: "6:00"},
	},
	Sunday: {
		Title:       "Cross Training",
		Description: "Low-impact cross training such as cycling or swimming.",
		Type:        ActivityCrossTraining,
		Metrics:     &Metrics{Duration: "45"},
	},
}

var mealDescriptions = map[MealType]map[Weekday]string{
	Breakfast: {
		Monday:    "Oatmeal with berries, banana, and a tablespoon of almond butter.",
		Tuesday:   "Greek yogurt with honey, granola, and mixed berries.",
		Wednesday: "Whole grain toast with avocado and two poached eggs.",
		Thursday:  "Protein smoothie with banana, spinach, protein powder, and almond milk.",
		Friday:    "Overnight chia pudding with coconut milk and mango.",
		Saturday:  "Scrambled eggs with spinach, tomatoes, and whole grain toast.",
		Sunday:    "Whole grain pancakes with fresh berries and a drizzle of maple syrup.",
	},
	Lunch: {
		Monday:    "Quinoa bowl with grilled chicken, roasted vegetables, and tahini dressing.",
		Tuesday:   "Mixed green salad with tuna, hard-boiled eggs, olives, and balsamic vinaigrette.",
		Wednesday: "Turkey and avocado wrap with mixed greens and hummus.",
		Thursday:  "Lentil soup with a side of whole grain bread and a small salad.",
		Friday:    "Chicken and vegetable stir-fry with brown rice.",
		Saturday:  "Mediterranean bowl with falafel, hummus, tabbouleh, and pita.",
		Sunday:    "Grilled salmon salad with mixed greens, cucumber, and lemon dressing.",
	},
	Dinner: {
		Monday:    "Grilled salmon with steamed broccoli and sweet potato.",
		Tuesday:   "Lean beef stir-fry with mixed vegetables and brown rice.",
		Wednesday: "Whole wheat pasta with turkey meatballs and tomato sauce.",
		Thursday:  "Roasted chicken breast with quinoa and roasted vegetables.",
		Friday:    "Black bean and vegetable burrito bowl with brown rice and avocado.",
		Saturday:  "Baked cod with lemon, asparagus, and new potatoes.",
		Sunday:    "Vegetable curry with chickpeas and brown rice.",
	},
}

// Range is a half-open integer interval [Min, Min+Spread).
type Range struct {
	Min    int
	Spread int
}

// Max returns the exclusive upper bound.
func (r Range) Max() int { return r.Min + r.Spread }

// NutritionRanges bounds the random nutrition figures of one meal type.
type NutritionRanges struct {
	Calories Range
	Protein  Range
	Carbs    Range
	Fat      Range
}

var nutritionRanges = map[MealType]NutritionRanges{
	Breakfast: {
		Calories: Range{Min: 400, Spread: 200},
		Protein:  Range{Min: 15, Spread: 10},
		Carbs:    Range{Min: 40, Spread: 20},
		Fat:      Range{Min: 10, Spread: 10},
	},
	Lunch: {
		Calories: Range{Min: 500, Spread: 300},
		Protein:  Range{Min: 25, Spread: 15},
		Carbs:    Range{Min: 50, Spread: 30},
		Fat:      Range{Min: 15, Spread: 15},
	},
	Dinner: {
		Calories: Range{Min: 600, Spread: 400},
		Protein:  Range{Min: 30, Spread: 20},
		Carbs:    Range{Min: 60, Spread: 40},
		Fat:      Range{Min: 20, Spread: 20},
	},
}

// NutritionRangesFor returns the bounds used when generating meals of type t.
func NutritionRangesFor(t MealType) (NutritionRanges, bool) {
	r, ok := nutritionRanges[t]
	return r, ok
}

// MealDescription returns the fixed description served for meal t on day d.
func MealDescription(t MealType, d Weekday) string {
	return mealDescriptions[t][d]
}

// ActivityFor builds the templated activity for day d without id or date.
func ActivityFor(d Weekday) Activity {
	tpl := activityTemplates[d]
	a := Activity{
		Title:       tpl.Title,
		Description: tpl.Description,
		Type:        tpl.Type,
	}
	if tpl.Metrics != nil {
		m := *tpl.Metrics
		a.Metrics = &m
	}
	return a
}
