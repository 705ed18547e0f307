package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	for _, k := range []string{"APP_ENV", "PORT", "TOKEN_TTL_DAYS", "BCRYPT_COST", "DATABASE_DSN", "DATA_DIR", "STATIC_DIR"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("Env default: got %q", cfg.Env)
	}
	if cfg.Port != "4000" {
		t.Fatalf("Port default: got %q", cfg.Port)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Fatalf("JWTSecret: got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTLDays != 7 {
		t.Fatalf("TokenTTLDays default: got %d", cfg.TokenTTLDays)
	}
	if cfg.DatabaseDSN != "" {
		t.Fatalf("DatabaseDSN should default to empty, got %q", cfg.DatabaseDSN)
	}
	if cfg.DataDir != "data" || cfg.StaticDir != "public" {
		t.Fatalf("dir defaults: %q %q", cfg.DataDir, cfg.StaticDir)
	}
}

func TestLoad_DevSecretFallback(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	if cfg.JWTSecret != devSecret {
		t.Fatalf("expected dev fallback secret, got %q", cfg.JWTSecret)
	}
}

func TestLoad_BackendSelection(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DATABASE_DSN", "user:pass@tcp(localhost:3306)/velora?parseTime=true")

	cfg := Load()
	if cfg.DatabaseDSN == "" {
		t.Fatalf("DSN not picked up from environment")
	}
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity < 1 {
		t.Fatalf("capacity not clamped: %d", cfg.Capacity)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("TTL not clamped: %s", cfg.TTL)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "v")
	t.Setenv("X_INT", "12")
	t.Setenv("X_BOOL", "yes")
	t.Setenv("X_DUR", "250ms")

	if got := envStr("X_STR", "d"); got != "v" {
		t.Fatalf("envStr: %q", got)
	}
	if got := envStr("X_MISSING", "d"); got != "d" {
		t.Fatalf("envStr default: %q", got)
	}
	if got := envInt("X_INT", 1); got != 12 {
		t.Fatalf("envInt: %d", got)
	}
	if got := envBool("X_BOOL", false); !got {
		t.Fatalf("envBool: %v", got)
	}
	if got := envDur("X_DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("envDur: %s", got)
	}
}
