package verification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the verification queue
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new verification handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers verification routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	queue := router.Group("/verification")
	{
		queue.GET("/queue", h.getQueue)
		queue.POST("/projects/:id/decision", h.decide)
		queue.POST("/projects/:id/lock", h.lock)
		queue.DELETE("/projects/:id/lock", h.unlock)
		queue.GET("/projects/:id/comments", h.getComments)
		queue.POST("/projects/:id/comments", h.postComment)
	}
}

// getQueue handles GET /api/v1/verification/queue
func (h *Handler) getQueue(c *gin.Context) {
	projects, stats, err := h.service.Queue(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load verification queue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": projects, "stats": stats})
}

// decide handles POST /api/v1/verification/projects/:id/decision
func (h *Handler) decide(c *gin.Context) {
	var in DecisionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.service.Decide(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrReasonRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrProjectLocked), errors.Is(err, ErrMissingFields), errors.Is(err, ErrNotAwaiting):
			// Precondition blocks are distinct from field validation
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to apply decision", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

type lockRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
}

// lock handles POST /api/v1/verification/projects/:id/lock
func (h *Handler) lock(c *gin.Context) {
	var req lockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Lock(c.Request.Context(), c.Param("id"), req.ReviewerID); err != nil {
		if errors.Is(err, ErrProjectLocked) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// unlock handles DELETE /api/v1/verification/projects/:id/lock
func (h *Handler) unlock(c *gin.Context) {
	var req lockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Unlock(c.Request.Context(), c.Param("id"), req.ReviewerID); err != nil {
		if errors.Is(err, ErrProjectLocked) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// getComments handles GET /api/v1/verification/projects/:id/comments
func (h *Handler) getComments(c *gin.Context) {
	thread, err := h.service.CommentThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to load comment thread", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, thread)
}

type commentRequest struct {
	ParentID *string `json:"parent_id"`
	Author   string  `json:"author" binding:"required"`
	Content  string  `json:"content"`
}

// postComment handles POST /api/v1/verification/projects/:id/comments
func (h *Handler) postComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.PostComment(c.Request.Context(), c.Param("id"), req.ParentID, req.Author, req.Content); err != nil {
		h.logger.Error("Failed to post comment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}
