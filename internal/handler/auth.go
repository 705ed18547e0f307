package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velora-dev/velora-api/internal/auth"
	"github.com/velora-dev/velora-api/internal/middleware"
	"github.com/velora-dev/velora-api/internal/queue"
	queue_publisher "github.com/velora-dev/velora-api/internal/service"
)

// AuthHandler bundles dependencies for the auth endpoints. It is a thin
// mapping layer: all orchestration lives in the auth service, and this type
// only translates between JSON bodies and the service's error taxonomy.
type AuthHandler struct {
	Svc           *auth.Service
	PublishEvents bool
}

func NewAuthHandler(svc *auth.Service, publishEvents bool) *AuthHandler {
	return &AuthHandler{Svc: svc, PublishEvents: publishEvents}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResp struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register: create user and return a session token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return writeAuthError(c, err)
	}

	if h.PublishEvents {
		// Fire-and-forget; a down broker must not fail the registration.
		_ = queue_publisher.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
			UserID:       sess.User.ID,
			Name:         sess.User.Name,
			Email:        sess.User.Email,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, sessionResp{Token: sess.Token, User: sess.User})
}

// Login: verify credentials and return a fresh session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, sessionResp{Token: sess.Token, User: sess.User})
}

// Me: resolve the bearer token extracted by the middleware to its user.
func (h *AuthHandler) Me(c echo.Context) error {
	token, _ := c.Get(middleware.TokenContextKey).(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Svc.WhoAmI(ctx, token)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}

// writeAuthError maps the auth error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a storage or signing failure: it is logged and
// returned as an opaque 500.
func writeAuthError(c echo.Context, err error) error {
	var ve *auth.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
	case errors.Is(err, auth.ErrEmailTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		c.Logger().Errorf("auth: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
}
