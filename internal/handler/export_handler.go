package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suryakamal494/timetable-workspace-api/internal/service"
	"github.com/suryakamal494/timetable-workspace-api/pkg/response"
)

// ExportHandler serves printable renderings of a workspace grid.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// PDF godoc
// @Summary Export the workspace grid as PDF
// @Tags Export
// @Produce application/pdf
// @Param id path string true "Workspace ID"
// @Param batchId query string false "Restrict to one batch"
// @Success 200 {file} byte
// @Router /workspaces/{id}/export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	payload, err := h.service.TimetablePDF(c.Request.Context(), c.Param("id"), c.Query("batchId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("timetable-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// CSV godoc
// @Summary Export the workspace grid as CSV
// @Tags Export
// @Produce text/csv
// @Param id path string true "Workspace ID"
// @Param batchId query string false "Restrict to one batch"
// @Success 200 {file} byte
// @Router /workspaces/{id}/export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	payload, err := h.service.TimetableCSV(c.Request.Context(), c.Param("id"), c.Query("batchId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("timetable-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}
