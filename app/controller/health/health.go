// Package health reports whether the service and its task store are up
package health

import (
	"context"
	"net/http"
	"time"

	"taskhub/version"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

type (
	Handler struct {
		db *gorm.DB
	}
	StatusResponse struct {
		Ok      bool   `json:"ok"`
		Version string `json:"version"`
		Store   string `json:"store"`
	}
)

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Check answers 503 with ok=false when the store does not respond to a ping.
func (h Handler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	resp := StatusResponse{Ok: true, Version: version.Version, Store: "up"}
	if err := h.ping(ctx); err != nil {
		c.Logger().Errorf("health: store ping failed: %v", err)
		resp.Ok = false
		resp.Store = "down"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h Handler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Check)
}
