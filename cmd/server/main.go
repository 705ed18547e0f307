package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/velora-dev/velora-api/internal/auth"
	"github.com/velora-dev/velora-api/internal/config"
	"github.com/velora-dev/velora-api/internal/handler"
	"github.com/velora-dev/velora-api/internal/queue"
	"github.com/velora-dev/velora-api/internal/repository"
	"github.com/velora-dev/velora-api/internal/router"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	stores, err := repository.Open(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	backend := "file"
	if cfg.DatabaseDSN != "" {
		backend = "mysql"
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTLDays)
	authSvc := auth.NewService(stores.Users, tokens, cfg.BcryptCost)

	publishEvents := cfg.Env != "test"
	authHandler := handler.NewAuthHandler(authSvc, publishEvents)
	contactHandler := handler.NewContactHandler(stores.Messages, publishEvents)

	rdb := config.NewRedisClient() // nil disables rate limiting

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, authHandler, contactHandler, rdb)

	if publishEvents {
		go func() {
			if err := queue.StartContactConsumer(); err != nil {
				log.Printf("contact consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, backend)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
