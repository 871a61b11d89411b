package onboarding

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes tour completion tracking
type Handler struct {
	store  CompletionStore
	logger *zap.Logger
}

// NewHandler creates an onboarding handler
func NewHandler(store CompletionStore, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers onboarding routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	tours := router.Group("/onboarding/tours")
	{
		tours.GET("/:tour/status", h.tourStatus)
		tours.POST("/:tour/complete", h.completeTour)
	}
}

func (h *Handler) tourStatus(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	completed, err := h.store.IsCompleted(c.Request.Context(), userID, c.Param("tour"))
	if err != nil {
		h.logger.Error("failed to load tour status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tour status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

type completeTourRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *Handler) completeTour(c *gin.Context) {
	var req completeTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.MarkCompleted(c.Request.Context(), req.UserID, c.Param("tour"), time.Now().UnixMilli()); err != nil {
		h.logger.Error("failed to mark tour completed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark tour completed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": true})
}
