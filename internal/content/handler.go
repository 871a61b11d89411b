package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the blog content feed
type Handler struct {
	client *Client
	logger *zap.Logger
}

// NewHandler creates a content handler
func NewHandler(client *Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// RegisterRoutes registers content routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/content/posts", h.listPosts)
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.client.Posts(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrInvalidSchema) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to load posts", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
