// Package httpapi exposes sessions, plans, progress and the admin dashboard over JSON HTTP.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"runnerspro/internal/admin"
	"runnerspro/internal/logger"
	"runnerspro/internal/session"
)

// Config wires the router's dependencies.
type Config struct {
	Sessions    *session.Manager
	Syncs       *admin.SyncStore
	Log         *logger.Logger
	CORSOrigins []string
	// DataDir is reported on by the admin system endpoint.
	DataDir string

	// Webhook, when set, is mounted at WebhookPath for Telegram updates.
	Webhook     http.Handler
	WebhookPath string
}

// Server holds the handlers.
type Server struct {
	sessions *session.Manager
	syncs    *admin.SyncStore
	log      *logger.Logger
	dataDir  string
	now      func() time.Time
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg Config) *gin.Engine {
	s := &Server{
		sessions: cfg.Sessions,
		syncs:    cfg.Syncs,
		log:      cfg.Log.With("component", "httpapi"),
		dataDir:  cfg.DataDir,
		now:      time.Now,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLog(s.log))
	r.Use(CORS(cfg.CORSOrigins))

	r.GET("/health", s.health)

	if cfg.Webhook != nil && cfg.WebhookPath != "" {
		r.POST(cfg.WebhookPath, gin.WrapH(cfg.Webhook))
	}

	api := r.Group("/api")
	{
		api.POST("/login", s.login)
		api.POST("/signup", s.signup)
	}

	protected := api.Group("/")
	protected.Use(s.requireSession())
	{
		protected.POST("/logout", s.logout)

		protected.GET("/plan", s.getPlan)
		protected.POST("/plan/refresh", s.refreshPlan)
		protected.GET("/plan/days/:date", s.getDay)
		protected.GET("/plan/weekly", s.getWeekly)

		protected.POST("/progress/trend", s.trend)

		protected.POST("/apps/:app/toggle", s.toggleApp)
		protected.POST("/apps/:app/sync", s.syncApp)
	}

	adminGroup := protected.Group("/admin")
	adminGroup.Use(s.requireAdmin())
	{
		adminGroup.GET("/users", s.listUsers)
		adminGroup.GET("/sync", s.listSyncs)
		adminGroup.GET("/system", s.systemHealth)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
