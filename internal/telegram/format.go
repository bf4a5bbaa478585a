package telegram

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"runnerspro/internal/stats"
	"runnerspro/internal/training"
)

const helpText = "🏃 *RunnersPro*\n\n" +
	"/plan - this week's training and meal plan\n" +
	"/today - today's session and meals\n" +
	"/week - weekly distance and duration\n" +
	"/refresh - generate a new plan for this week"

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// formatPlan renders the whole week, one line per day.
func formatPlan(plan *training.Plan) string {
	var sb strings.Builder
	sb.WriteString("🏃 *Weekly Training Plan*\n")
	sb.WriteString(fmt.Sprintf("_%s to %s_\n\n", plan.StartDate, plan.EndDate))
	if plan.WeekFocus != "" {
		sb.WriteString(fmt.Sprintf("🎯 %s\n\n", escape(plan.WeekFocus)))
	}

	for _, day := range training.Days(plan) {
		sb.WriteString(fmt.Sprintf("*%s*", day.Weekday))
		for _, a := range day.Activities {
			sb.WriteString(": " + escape(a.Title))
			if m := formatMetrics(a.Metrics); m != "" {
				sb.WriteString(" (" + m + ")")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatDay renders one date's activity, meals and summed nutrition.
func formatDay(plan *training.Plan, date string) string {
	t, err := training.ParseDate(date)
	if err != nil {
		return "❌ Invalid date."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 *%s, %s*\n\n", training.WeekdayOf(t), date))

	activities := training.ActivitiesForDate(plan, date)
	meals := training.MealsForDate(plan, date)
	if len(activities) == 0 && len(meals) == 0 {
		sb.WriteString("_Nothing planned for this day._\n")
		return sb.String()
	}

	for _, a := range activities {
		sb.WriteString(fmt.Sprintf("🏃 *%s* (%s)\n", escape(a.Title), a.Type))
		sb.WriteString(escape(a.Description) + "\n")
		if m := formatMetrics(a.Metrics); m != "" {
			sb.WriteString("_" + m + "_\n")
		}
	}

	if len(meals) > 0 {
		sb.WriteString("\n🍽 *Meals*\n")
		for _, m := range meals {
			sb.WriteString(fmt.Sprintf("• *%s*: %s", m.Type, escape(m.Description)))
			if m.NutritionInfo != nil {
				sb.WriteString(fmt.Sprintf(" (%s kcal)", m.NutritionInfo.Calories))
			}
			sb.WriteString("\n")
		}
		n := stats.DailyNutrition(meals, date)
		sb.WriteString(fmt.Sprintf("\n*Total*: %d kcal · P %dg · C %dg · F %dg\n", n.Calories, n.Protein, n.Carbs, n.Fat))
	}
	return sb.String()
}

// formatWeekly renders per-day distance and duration with the week's totals.
func formatWeekly(totals stats.WeeklyTotals) string {
	var sb strings.Builder
	sb.WriteString("📊 *This Week*\n\n")
	for _, d := range training.Weekdays() {
		dist := totals.DistanceByDay[d]
		dur := totals.DurationByDay[d]
		if dist == 0 && dur == 0 {
			sb.WriteString(fmt.Sprintf("`%s` rest\n", d.Short()))
			continue
		}
		sb.WriteString(fmt.Sprintf("`%s` %s km · %d min\n", d.Short(), humanize.FtoaWithDigits(dist, 1), dur))
	}
	sb.WriteString(fmt.Sprintf("\n*Total*: %s km · %d min · %d active days\n",
		humanize.FtoaWithDigits(totals.TotalDistance(), 1), totals.TotalDuration(), totals.ActiveDays()))
	return sb.String()
}

func formatMetrics(m *training.Metrics) string {
	if m == nil {
		return ""
	}
	var parts []string
	if m.Distance != "" {
		parts = append(parts, m.Distance+" km")
	}
	if m.Duration != "" {
		parts = append(parts, m.Duration+" min")
	}
	if m.Pace != "" {
		parts = append(parts, m.Pace+" /km")
	}
	return strings.Join(parts, " · ")
}
