package handlers

import (
	"bytes"
	"net/http"

	"github.com/alidemir/catalog/internal/services"
	"github.com/alidemir/catalog/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ExportHandler serves the XLSX catalog snapshot.
type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export downloads the catalog workbook
func (h *ExportHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.Write(&buf); err != nil {
		logger.WithError(err).Error("export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
