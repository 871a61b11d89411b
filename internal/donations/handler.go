package donations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the donation feed and impact calculator
type Handler struct {
	source DonationSource
	logger *zap.Logger
}

// NewHandler creates a donations handler
func NewHandler(source DonationSource, logger *zap.Logger) *Handler {
	return &Handler{source: source, logger: logger}
}

// RegisterRoutes registers donation routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	donationsGroup := router.Group("/donations")
	{
		donationsGroup.GET("", h.listDonations)
		donationsGroup.GET("/impact", h.calculateImpact)
	}
}

func (h *Handler) listDonations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := FetchDonations(c.Request.Context(), h.source, page, pageSize)
	if err != nil {
		h.logger.Error("failed to fetch donations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch donations"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) calculateImpact(c *gin.Context) {
	// Malformed amounts are coerced to 0 rather than rejected
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		amount = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"impact":       CalculateImpact(amount),
		"can_continue": CanContinue(amount),
	})
}
