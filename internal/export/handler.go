package export

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terra-carbon/market-portal/market-portal-backend/internal/admin"
	"terra-carbon/market-portal/market-portal-backend/internal/donations"
)

// ProjectSource supplies the records behind the project workbook export.
// Satisfied by the admin repository.
type ProjectSource interface {
	ListProjects(ctx context.Context) ([]admin.ProjectDetail, error)
}

// Handler exposes download endpoints
type Handler struct {
	donations donations.DonationSource
	projects  ProjectSource
	logger    *zap.Logger
}

// NewHandler creates an export handler
func NewHandler(donationSource donations.DonationSource, projectSource ProjectSource, logger *zap.Logger) *Handler {
	return &Handler{donations: donationSource, projects: projectSource, logger: logger}
}

// RegisterRoutes registers export routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	exports := router.Group("/export")
	{
		exports.GET("/donations.csv", h.downloadDonationsCSV)
		exports.GET("/projects.xlsx", h.downloadProjectsExcel)
		exports.POST("/certificate", h.downloadCertificate)
	}
}

func (h *Handler) downloadDonationsCSV(c *gin.Context) {
	records, err := h.donations.Donations(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load donations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load donations"})
		return
	}

	var buf bytes.Buffer
	ok, err := ExportDonationsCSV(&buf, records)
	if err != nil {
		h.logger.Error("failed to export donations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export donations"})
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	filename := DatedFilename("donations", "csv", time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) downloadProjectsExcel(c *gin.Context) {
	records, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	var buf bytes.Buffer
	if err := ExportProjectsExcel(&buf, records); err != nil {
		h.logger.Error("failed to export projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export projects"})
		return
	}

	filename := DatedFilename("projects", "xlsx", time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

type certificateRequest struct {
	DisplayName string    `json:"display_name" binding:"required"`
	Wallet      string    `json:"wallet" binding:"required"`
	QuantityT   float64   `json:"quantity_t" binding:"required"`
	ProjectName string    `json:"project_name" binding:"required"`
	TxHash      string    `json:"tx_hash" binding:"required"`
	RetiredAt   time.Time `json:"retired_at" binding:"required"`
	QRImagePNG  []byte    `json:"qr_image_png"`
}

func (h *Handler) downloadCertificate(c *gin.Context) {
	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cert := RetirementCertificate{
		DisplayName: req.DisplayName,
		Wallet:      req.Wallet,
		QuantityT:   req.QuantityT,
		ProjectName: req.ProjectName,
		TxHash:      req.TxHash,
		RetiredAt:   req.RetiredAt,
		QRImagePNG:  req.QRImagePNG,
	}

	var buf bytes.Buffer
	if err := RenderCertificate(&buf, cert); err != nil {
		h.logger.Error("failed to render certificate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render certificate"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+CertificateFilename(req.DisplayName)+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
