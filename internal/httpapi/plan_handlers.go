package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"runnerspro/internal/session"
	"runnerspro/internal/stats"
	"runnerspro/internal/training"
)

var errInvalidDate = errors.New("date must be YYYY-MM-DD")

type dayResponse struct {
	training.DayView
	Nutrition stats.Nutrition `json:"nutrition"`
}

type weeklyResponse struct {
	stats.WeeklyTotals
	Labels        []string `json:"labels"`
	TotalDistance float64  `json:"totalDistance"`
	TotalDuration int      `json:"totalDuration"`
	ActiveDays    int      `json:"activeDays"`
}

type trendRequest struct {
	Points []stats.Point `json:"points"`
}

type trendResponse struct {
	stats.Trend
	Direction stats.Direction `json:"direction"`
}

// GET /api/plan
func (s *Server) getPlan(c *gin.Context) {
	plan, err := s.sessions.Plan(c.Request.Context(), currentSession(c).ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// POST /api/plan/refresh
func (s *Server) refreshPlan(c *gin.Context) {
	plan, err := s.sessions.RefreshPlan(c.Request.Context(), currentSession(c).ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GET /api/plan/days/:date
// A well-formed date outside the plan's week yields empty lists.
func (s *Server) getDay(c *gin.Context) {
	date := c.Param("date")
	t, err := training.ParseDate(date)
	if err != nil {
		s.respondError(c, NewError(http.StatusBadRequest, "invalid_date", errInvalidDate))
		return
	}
	plan, err := s.sessions.Plan(c.Request.Context(), currentSession(c).ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dayResponse{
		DayView: training.DayView{
			Date:       date,
			Weekday:    training.WeekdayOf(t).String(),
			Activities: training.ActivitiesForDate(plan, date),
			Meals:      training.MealsForDate(plan, date),
		},
		Nutrition: stats.DailyNutrition(plan.Meals, date),
	})
}

// GET /api/plan/weekly
func (s *Server) getWeekly(c *gin.Context) {
	plan, err := s.sessions.Plan(c.Request.Context(), currentSession(c).ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	totals := stats.ComputeWeeklyTotals(plan.Activities)
	labels := make([]string, 0, training.DaysInWeek)
	for _, d := range training.Weekdays() {
		labels = append(labels, d.Short())
	}
	c.JSON(http.StatusOK, weeklyResponse{
		WeeklyTotals:  totals,
		Labels:        labels,
		TotalDistance: totals.TotalDistance(),
		TotalDuration: totals.TotalDuration(),
		ActiveDays:    totals.ActiveDays(),
	})
}

// POST /api/progress/trend
func (s *Server) trend(c *gin.Context) {
	var req trendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, NewError(http.StatusBadRequest, "invalid_request", err))
		return
	}
	for _, p := range req.Points {
		if _, err := training.ParseDate(p.Date); err != nil {
			s.respondError(c, NewError(http.StatusBadRequest, "invalid_date", errInvalidDate))
			return
		}
	}
	t := stats.TrendSummary(req.Points)
	c.JSON(http.StatusOK, trendResponse{Trend: t, Direction: t.Direction()})
}

// POST /api/apps/:app/toggle
func (s *Server) toggleApp(c *gin.Context) {
	app, err := session.ParseApp(c.Param("app"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	apps, err := s.sessions.ToggleApp(c.Request.Context(), currentSession(c).ID, app)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"connectedApps": apps})
}

// POST /api/apps/:app/sync
func (s *Server) syncApp(c *gin.Context) {
	app, err := session.ParseApp(c.Param("app"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	event, err := s.sessions.Sync(c.Request.Context(), currentSession(c).ID, app)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
