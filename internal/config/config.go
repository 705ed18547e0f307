package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// devSecret is the well-known development signing secret inherited from the
// original deployment of the site. It is only accepted when APP_ENV is "dev";
// every other environment must provide JWT_SECRET explicitly.
const devSecret = "dev_secret_change_me"

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. The struct is built once at startup and handed to the
// components that need it; nothing reads the environment after Load returns,
// and nothing mutates the struct afterwards.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    JWTSecret    string // secret used to sign session tokens
    TokenTTLDays int    // session token time-to-live in days
    BcryptCost   int    // bcrypt cost for password hashing
    DatabaseDSN  string // MySQL DSN; empty selects the file-backed store
    DataDir      string // directory for the file-backed store
    StaticDir    string // directory of static site assets served by the process
}

// Load reads configuration values from environment variables and returns a
// Config. Backend selection is driven purely by DATABASE_DSN presence: set it
// to use MySQL, leave it empty to persist to JSON files under DATA_DIR. An
// invalid or missing required value causes a fatal log message and exit.
func Load() Config {
    cfg := Config{
        Env:          envStr("APP_ENV", "dev"),       // environment (dev/test/prod)
        Port:         envStr("PORT", "4000"),         // port to bind the HTTP server
        JWTSecret:    os.Getenv("JWT_SECRET"),        // signing secret (validated below)
        TokenTTLDays: envInt("TOKEN_TTL_DAYS", 7),    // session token lifetime in days
        BcryptCost:   envInt("BCRYPT_COST", 10),      // bcrypt cost factor
        DatabaseDSN:  os.Getenv("DATABASE_DSN"),      // optional MySQL connection string
        DataDir:      envStr("DATA_DIR", "data"),     // file store location
        StaticDir:    envStr("STATIC_DIR", "public"), // frontend assets
    }
    if cfg.JWTSecret == "" {
        if cfg.Env != "dev" {
            log.Fatalf("missing required env var: JWT_SECRET (required outside dev)")
        }
        // Falling back to the development secret is acceptable only for
        // local runs; make the risk visible in the logs.
        log.Printf("WARNING: JWT_SECRET unset, using the development secret; do not deploy like this")
        cfg.JWTSecret = devSecret
    }
    if cfg.TokenTTLDays < 1 {
        log.Fatalf("TOKEN_TTL_DAYS must be at least 1, got %d", cfg.TokenTTLDays)
    }
    return cfg
}
