package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prakashv/minehaul/internal/pkg/models"
	wsHandler "github.com/prakashv/minehaul/services/tracking/handler/websocket"
)

// Handler aggregates the tracking service handlers
type Handler struct {
	wsManager *wsHandler.WebSocketManager
	cfg       *models.Config
}

// NewHandler creates a new handler instance
func NewHandler(wsManager *wsHandler.WebSocketManager, cfg *models.Config) *Handler {
	return &Handler{
		wsManager: wsManager,
		cfg:       cfg,
	}
}

// RegisterRoutes registers the tracking service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/tracking", h.wsManager.HandleWebSocket)
}
