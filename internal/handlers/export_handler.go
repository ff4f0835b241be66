package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/services"
	"github.com/SAP-F-2025/survey-service/internal/utils"
	"github.com/gin-gonic/gin"
)

var exportContentTypes = map[models.ExportFormat]string{
	models.ExportCSV:  "text/csv; charset=utf-8",
	models.ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ExportHandler serves the answer sheet export as a download
type ExportHandler struct {
	BaseHandler
	export services.ExportService
}

func NewExportHandler(export services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler: NewBaseHandler(logger),
		export:      export,
	}
}

// ExportAnswerSheets renders every answer sheet as csv (default) or xlsx
// @Router /admin/exports/answer-sheets [get]
func (h *ExportHandler) ExportAnswerSheets(c *gin.Context) {
	format := models.ExportFormat(c.DefaultQuery("format", string(models.ExportCSV)))

	// Buffered so a failure still produces a JSON error instead of a
	// truncated download
	var buf bytes.Buffer
	summary, err := h.export.Export(c.Request.Context(), &buf, format)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Answer sheets exported",
		"format", summary.Format,
		"sheet_count", summary.SheetCount,
		"processing_time", summary.ProcessingTime)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", summary.FileName))
	c.Data(http.StatusOK, exportContentTypes[format], buf.Bytes())
}
