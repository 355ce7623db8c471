package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct{ db Pinger }

func NewHandler(db Pinger) *Handler { return &Handler{db: db} }

func (h *Handler) Health(c echo.Context) error {
	status, code, dbState := "ok", http.StatusOK, "ok"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			c.Logger().Errorf("health: db ping: %v", err)
			status, code, dbState = "degraded", http.StatusServiceUnavailable, "down"
		}
	}
	return c.JSON(code, map[string]any{
		"status": status,
		"db":     dbState,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
