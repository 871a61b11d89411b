package notifications

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes notification endpoints
type Handler struct {
	service *Service
	hub     *Hub
	logger  *zap.Logger
}

// NewHandler creates a notifications handler
func NewHandler(service *Service, hub *Hub, logger *zap.Logger) *Handler {
	return &Handler{service: service, hub: hub, logger: logger}
}

// RegisterRoutes registers notification routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	notifs := router.Group("/notifications")
	{
		notifs.GET("", h.listNotifications)
		notifs.GET("/ws", h.connectWebSocket)
	}
}

func (h *Handler) listNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.service.RecentNotifications(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": records})
}

func (h *Handler) connectWebSocket(c *gin.Context) {
	if err := h.hub.HandleConnection(c.Writer, c.Request); err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
	}
}
