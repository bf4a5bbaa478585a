package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"runnerspro/internal/admin"
	"runnerspro/internal/auth"
	"runnerspro/internal/config"
	"runnerspro/internal/database"
	"runnerspro/internal/httpapi"
	"runnerspro/internal/logger"
	"runnerspro/internal/session"
	"runnerspro/internal/telegram"
	"runnerspro/internal/training"
)

const shutdownTimeout = 10 * time.Second

// services holds everything built from the configuration.
type services struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *database.DB
	syncs    *admin.SyncStore
	sessions *session.Manager
}

func bootstrap() (*services, error) {
	cfg, err := config.NewFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	syncs := admin.NewSyncStore(db.SQL)
	sessions := session.NewManager(
		session.NewRepository(db.SQL),
		training.NewGenerator(training.WithDelay(cfg.PlanDelay)),
		auth.NewTokens(cfg.JWTSecret, cfg.SessionTTL),
		syncs,
		log,
	)
	return &services{cfg: cfg, log: log, db: db, syncs: syncs, sessions: sessions}, nil
}

func (s *services) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Warn("Failed to close database", "error", err)
	}
	s.log.Sync()
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the Telegram webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := bootstrap()
			if err != nil {
				return err
			}
			defer svc.Close()
			return serve(cmd.Context(), svc)
		},
	}
}

func serve(ctx context.Context, svc *services) error {
	if err := svc.syncs.SeedDemo(ctx); err != nil {
		return err
	}

	if svc.cfg.LogMode == "production" || svc.cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	routerCfg := httpapi.Config{
		Sessions:    svc.sessions,
		Syncs:       svc.syncs,
		Log:         svc.log,
		CORSOrigins: svc.cfg.CORSOrigins,
		DataDir:     filepath.Dir(svc.cfg.DatabasePath),
	}
	if svc.cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBot(svc.cfg, svc.sessions, svc.log)
		if err != nil {
			return fmt.Errorf("failed to initialize Telegram bot: %w", err)
		}
		routerCfg.Webhook = bot
		routerCfg.WebhookPath = telegram.WebhookPath
	} else {
		svc.log.Info("TELEGRAM_BOT_TOKEN not set, Telegram webhook disabled")
	}

	srv := &http.Server{
		Addr:              ":" + svc.cfg.Port,
		Handler:           httpapi.NewRouter(routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		svc.log.Info("Server listening", "port", svc.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	case <-ctx.Done():
	}
	svc.log.Info("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	svc.log.Info("Server exiting")
	return nil
}
