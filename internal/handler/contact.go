package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velora-dev/velora-api/internal/model"
	"github.com/velora-dev/velora-api/internal/queue"
	"github.com/velora-dev/velora-api/internal/repository"
	queue_publisher "github.com/velora-dev/velora-api/internal/service"
)

// ContactHandler stores contact-form submissions. The store itself does not
// validate; required fields are enforced here at the boundary.
type ContactHandler struct {
	Messages      repository.MessageStore
	PublishEvents bool
}

func NewContactHandler(messages repository.MessageStore, publishEvents bool) *ContactHandler {
	return &ContactHandler{Messages: messages, PublishEvents: publishEvents}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit appends a contact message and acknowledges with {ok:true}.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and message are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stored, err := h.Messages.Append(ctx, model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		c.Logger().Errorf("contact: append failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}

	if h.PublishEvents {
		// Fire-and-forget; the submission already succeeded.
		_ = queue_publisher.PublishContactReceived(ctx, queue.ContactReceivedEvent{
			MessageID:  stored.ID,
			Name:       stored.Name,
			Email:      stored.Email,
			Message:    stored.Message,
			ReceivedAt: stored.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// List returns all stored messages. Ordering depends on the backend:
// most-recent-first on MySQL, insertion order on the file store.
func (h *ContactHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	msgs, err := h.Messages.List(ctx)
	if err != nil {
		c.Logger().Errorf("contact: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Server error"})
	}
	if msgs == nil {
		msgs = []model.ContactMessage{}
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": msgs})
}
