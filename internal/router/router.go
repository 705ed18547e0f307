// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/velora-dev/velora-api/internal/config"
	"github.com/velora-dev/velora-api/internal/handler"
	"github.com/velora-dev/velora-api/internal/middleware"
)

// Register wires every route of the service onto the Echo instance: the
// health check, the /api auth and contact endpoints, and the static frontend
// assets served from the same origin. The Redis client may be nil, in which
// case the credential endpoints run without rate limiting.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, contact *handler.ContactHandler, rdb *redis.Client) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Credential endpoints are the abuse target; everything else stays
	// unthrottled.
	limited := api.Group("")
	limited.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	limited.POST("/register", a.Register)
	limited.POST("/login", a.Login)

	me := api.Group("")
	me.Use(middleware.BearerToken())
	me.GET("/me", a.Me)

	api.POST("/contact", contact.Submit)
	api.GET("/messages", contact.List)

	// Frontend assets are served by the same process under the same origin.
	e.Static("/", cfg.StaticDir)
}
