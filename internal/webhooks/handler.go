package webhooks

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for webhook event monitoring
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new webhooks handler
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers webhook monitoring routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/webhooks/events")
	{
		events.GET("", h.listEvents)
		events.POST("/:id/retry", h.retryEvent)
	}
}

// listEvents handles GET /api/v1/webhooks/events
func (h *Handler) listEvents(c *gin.Context) {
	filter := DefaultFilterState()
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.repo.ListEvents(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list webhook events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filtered := FilterEvents(events, filter)
	c.JSON(http.StatusOK, gin.H{"data": filtered, "count": len(filtered)})
}

// retryEvent handles POST /api/v1/webhooks/events/:id/retry
func (h *Handler) retryEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.repo.GetEvent(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	next, err := RequestRetry(*event, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotRetryable), errors.Is(err, ErrRetriesExhausted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := h.repo.SaveEvent(c.Request.Context(), &next); err != nil {
		h.logger.Error("Failed to persist retry request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, next)
}
