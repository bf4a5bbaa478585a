package training

import (
	"context"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator produces weekly plans from the weekday templates. Nutrition figures are
// random; everything else is fixed by the weekday.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	delay time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource makes nutrition draws reproducible. Draws from the source are serialized.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rng = rand.New(src)
	}
}

// WithSeed is shorthand for WithSource(rand.NewPCG(seed, seed)).
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

// WithDelay adds an artificial latency to GenerateContext, simulating a remote planner.
func WithDelay(d time.Duration) Option {
	return func(g *Generator) {
		g.delay = d
	}
}

// NewGenerator creates a Generator. Without WithSource it draws from the global source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// GeneratePlan builds a fresh plan for the week containing now.
func GeneratePlan(now time.Time) Plan {
	return defaultGenerator.Generate(now)
}

// Generate builds a fresh plan for the week containing now. It never fails.
func (g *Generator) Generate(now time.Time) Plan {
	return g.GenerateWeek(now, now)
}

// GenerateWeek builds a plan for the week containing anchor, stamped as generated at
// generatedAt.
func (g *Generator) GenerateWeek(anchor, generatedAt time.Time) Plan {
	start := WeekStart(anchor)
	end := start.AddDate(0, 0, DaysInWeek-1)

	plan := Plan{
		ID:         uuid.NewString(),
		StartDate:  start.Format(DateLayout),
		EndDate:    end.Format(DateLayout),
		WeekFocus:  WeekFocus,
		Activities: make([]Activity, 0, DaysInWeek),
		Meals:      make([]Meal, 0, DaysInWeek*len(MealTypes())),
		Generated:  generatedAt.UTC().Format(time.RFC3339),
	}

	for i, day := range Weekdays() {
		date := start.AddDate(0, 0, i).Format(DateLayout)

		activity := ActivityFor(day)
		activity.ID = uuid.NewString()
		activity.Date = date
		plan.Activities = append(plan.Activities, activity)

		for _, mt := range MealTypes() {
			plan.Meals = append(plan.Meals, Meal{
				ID:            uuid.NewString(),
				Type:          mt,
				Description:   MealDescription(mt, day),
				Date:          date,
				NutritionInfo: g.nutrition(nutritionRanges[mt]),
			})
		}
	}

	return plan
}

// GenerateContext waits for the configured delay, then generates. It fails only when
// ctx is done before the delay elapses.
func (g *Generator) GenerateContext(ctx context.Context, now time.Time) (Plan, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Plan{}, ctx.Err()
		case <-timer.C:
		}
	}
	return g.Generate(now), nil
}

func (g *Generator) nutrition(r NutritionRanges) *NutritionInfo {
	return &NutritionInfo{
		Calories: strconv.Itoa(g.draw(r.Calories)),
		Protein:  strconv.Itoa(g.draw(r.Protein)),
		Carbs:    strconv.Itoa(g.draw(r.Carbs)),
		Fat:      strconv.Itoa(g.draw(r.Fat)),
	}
}

func (g *Generator) draw(r Range) int {
	if r.Spread <= 0 {
		return r.Min
	}
	if g.rng == nil {
		return r.Min + rand.IntN(r.Spread)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return r.Min + g.rng.IntN(r.Spread)
}
