package marketplace

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for marketplace browsing
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new marketplace handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers marketplace routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	market := router.Group("/marketplace")
	{
		market.GET("/listings", h.browseListings)
		market.GET("/quote", h.quote)
	}
}

// browseListings handles GET /api/v1/marketplace/listings
func (h *Handler) browseListings(c *gin.Context) {
	var q ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.service.BrowseListings(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("Failed to browse listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

type quoteQuery struct {
	Quantity  float64 `form:"quantity"`
	UnitPrice float64 `form:"unit_price"`
	Available float64 `form:"available"`
	MaxSupply float64 `form:"max_supply"`
}

// quote handles GET /api/v1/marketplace/quote. Malformed numeric input binds
// to zero rather than erroring, matching the credit-selection form behavior.
func (h *Handler) quote(c *gin.Context) {
	var q quoteQuery
	_ = c.ShouldBindQuery(&q)

	c.JSON(http.StatusOK, gin.H{
		"total_price":          CalculatePrice(q.Quantity, q.UnitPrice),
		"availability_percent": AvailabilityPercent(q.Available, q.MaxSupply),
	})
}
