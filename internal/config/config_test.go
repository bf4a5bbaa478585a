package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	// Helper function to set environment variables for a test
	setEnv := func(key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	t.Run("Success", func(t *testing.T) {
		setEnv("RUNNERSPRO_CONFIG", "")
		setEnv("JWT_SECRET", "secret")
		setEnv("PORT", "9090")
		setEnv("SESSION_TTL_HOURS", "")
		setEnv("CORS_ORIGINS", "http://a.test, http://b.test")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.JWTSecret != "secret" {
			t.Errorf("Expected JWTSecret to be 'secret', got '%s'", cfg.JWTSecret)
		}
		if cfg.Port != "9090" {
			t.Errorf("Expected Port to be '9090', got '%s'", cfg.Port)
		}
		if cfg.SessionTTL != 24*time.Hour {
			t.Errorf("Expected default SessionTTL of 24h, got %s", cfg.SessionTTL)
		}
		if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
			t.Errorf("Expected two CORS origins, got %v", cfg.CORSOrigins)
		}
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		setEnv("RUNNERSPRO_CONFIG", "")
		os.Unsetenv("JWT_SECRET")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing JWT_SECRET, got nil")
		}
		expectedError := "JWT_SECRET environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("InvalidTTL", func(t *testing.T) {
		setEnv("RUNNERSPRO_CONFIG", "")
		setEnv("JWT_SECRET", "secret")
		setEnv("SESSION_TTL_HOURS", "soon")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for non-numeric SESSION_TTL_HOURS, got nil")
		}
	})

	t.Run("YAMLFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "runnerspro.yaml")
		content := "jwt_secret: from-file\nport: \"7070\"\nplan_delay_ms: 250\ndatabase_path: /tmp/rp.db\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}

		setEnv("RUNNERSPRO_CONFIG", path)
		os.Unsetenv("JWT_SECRET")
		setEnv("PORT", "")
		setEnv("SESSION_TTL_HOURS", "")
		setEnv("PLAN_DELAY_MS", "")
		setEnv("DATABASE_PATH", "")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.JWTSecret != "from-file" {
			t.Errorf("Expected JWTSecret from file, got '%s'", cfg.JWTSecret)
		}
		if cfg.Port != "7070" {
			t.Errorf("Expected Port from file, got '%s'", cfg.Port)
		}
		if cfg.PlanDelay != 250*time.Millisecond {
			t.Errorf("Expected PlanDelay 250ms, got %s", cfg.PlanDelay)
		}
		if cfg.DatabasePath != "/tmp/rp.db" {
			t.Errorf("Expected DatabasePath from file, got '%s'", cfg.DatabasePath)
		}
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "runnerspro.yaml")
		if err := os.WriteFile(path, []byte("jwt_secret: from-file\n"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		setEnv("RUNNERSPRO_CONFIG", path)
		setEnv("JWT_SECRET", "from-env")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.JWTSecret != "from-env" {
			t.Errorf("Expected JWTSecret from env, got '%s'", cfg.JWTSecret)
		}
	})
}
