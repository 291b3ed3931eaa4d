package contact

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// messageTypes are the accepted contact-form inquiry kinds.
var messageTypes = map[string]bool{
	"general":       true,
	"speaking":      true,
	"collaboration": true,
	"media":         true,
	"mentorship":    true,
}

// adminListLimit caps the admin inbox listing.
const adminListLimit = 100

// Handler handles contact and newsletter HTTP requests.
type Handler struct {
	store         *Store
	submitLimiter *rateLimiter
	logger        *zap.Logger
}

// NewHandler creates a Handler. Public submissions are rate-limited to
// 10 requests per IP per minute.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:         store,
		submitLimiter: newRateLimiter(10, time.Minute),
		logger:        logger,
	}
}

// RegisterRoutes mounts the public submission endpoints on api and the
// read-only inbox on the authenticated admin group.
func (h *Handler) RegisterRoutes(api, admin *echo.Group) {
	api.POST("/contact", h.Submit)
	api.POST("/newsletter/subscribe", h.Subscribe)
	admin.GET("/contact", h.List)
}

type submitRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	MessageType string `json:"message_type"`
}

// Submit handles a public contact-form submission.
func (h *Handler) Submit(c echo.Context) error {
	if !h.submitLimiter.allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many submissions, try again later")
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON")
	}
	if err := req.validate(); err != nil {
		return err
	}
	if req.MessageType == "" {
		req.MessageType = "general"
	}
	if !messageTypes[req.MessageType] {
		return echo.NewHTTPError(http.StatusBadRequest, "message_type: unknown type")
	}

	msg := Message{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     req.Message,
		MessageType: req.MessageType,
		Timestamp:   time.Now().UTC(),
	}
	if err := h.store.SaveMessage(msg); err != nil {
		return err
	}
	h.logger.Info("contact message received",
		zap.String("id", msg.ID),
		zap.String("message_type", msg.MessageType),
	)
	return c.JSON(http.StatusOK, msg)
}

func (r *submitRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name: required")
	}
	if !validEmail(r.Email) {
		return echo.NewHTTPError(http.StatusBadRequest, "email: invalid address")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subject: required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message: required")
	}
	return nil
}

// List returns the stored messages for the admin inbox, newest first.
func (h *Handler) List(c echo.Context) error {
	messages, err := h.store.ListMessages(adminListLimit)
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Subscribe handles a newsletter signup. A duplicate address is a
// client error, mirroring the behavior the SPA expects.
func (h *Handler) Subscribe(c echo.Context) error {
	if !h.submitLimiter.allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many submissions, try again later")
	}

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON")
	}
	if !validEmail(req.Email) {
		return echo.NewHTTPError(http.StatusBadRequest, "email: invalid address")
	}

	sub := Subscription{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(req.Email),
		Name:         strings.TrimSpace(req.Name),
		SubscribedAt: time.Now().UTC(),
		Active:       true,
	}
	if err := h.store.SaveSubscription(sub); err != nil {
		if err == ErrDuplicateEmail {
			return echo.NewHTTPError(http.StatusBadRequest, "email already subscribed")
		}
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

func validEmail(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}
