package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for admin project operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new admin projects handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers admin project routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/admin/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.POST("/actions", h.executeAction)
		projects.POST("/:id/mrv-documents", h.uploadMRVDocument)
	}
}

// listProjects handles GET /api/v1/admin/projects
func (h *Handler) listProjects(c *gin.Context) {
	filter := DefaultTableFilterState()
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects, err := h.service.ListProjects(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list admin projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": projects, "count": len(projects)})
}

// getProject handles GET /api/v1/admin/projects/:id
func (h *Handler) getProject(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

// executeAction handles POST /api/v1/admin/projects/actions
func (h *Handler) executeAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.ExecuteAction(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrActionReasonRequired), errors.Is(err, ErrUnknownAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to execute admin action", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// uploadMRVDocument handles POST /api/v1/admin/projects/:id/mrv-documents
func (h *Handler) uploadMRVDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	doc, err := h.service.UploadMRVDocument(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Size,
		file,
		c.PostForm("actor"),
	)
	if err != nil {
		h.logger.Error("Failed to upload MRV document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc)
}
