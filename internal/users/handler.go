package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler exposes admin user management endpoints
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a users handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers admin user routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	usersGroup := router.Group("/admin/users")
	{
		usersGroup.GET("", h.listUsers)
		usersGroup.POST("/:id/status", h.changeStatus)
	}
}

func (h *Handler) listUsers(c *gin.Context) {
	var filter UserTableFilterState
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.service.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	masked := make([]gin.H, 0, len(records))
	for _, u := range records {
		masked = append(masked, gin.H{
			"id":           u.ID,
			"email":        MaskEmail(u.Email),
			"wallet":       MaskWallet(u.WalletAddress),
			"display_name": u.DisplayName,
			"status":       u.Status,
			"created_at":   u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": masked})
}

type changeStatusRequest struct {
	Status UserStatus `json:"status" binding:"required"`
	Actor  string     `json:"actor" binding:"required"`
	Reason string     `json:"reason"`
}

func (h *Handler) changeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.ChangeStatus(c.Request.Context(), id, req.Status, req.Actor, req.Reason)
	if err != nil {
		if errors.Is(err, ErrUserDeleted) || errors.Is(err, ErrTransitionNotAllowed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to change user status", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change user status"})
		return
	}
	c.JSON(http.StatusOK, user)
}
