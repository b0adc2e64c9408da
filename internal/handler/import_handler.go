package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suryakamal494/timetable-workspace-api/internal/dto"
	"github.com/suryakamal494/timetable-workspace-api/internal/service"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
	"github.com/suryakamal494/timetable-workspace-api/pkg/response"
)

// ImportHandler manages recognized-timetable import endpoints.
type ImportHandler struct {
	service *service.WorkspaceService
	metrics *service.MetricsService
}

// NewImportHandler constructs handler.
func NewImportHandler(svc *service.WorkspaceService, metrics *service.MetricsService) *ImportHandler {
	return &ImportHandler{service: svc, metrics: metrics}
}

// Validate godoc
// @Summary Validate a recognized timetable batch
// @Tags Import
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param payload body dto.ImportValidateRequest true "Recognized entries"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id}/import/validate [post]
func (h *ImportHandler) Validate(c *gin.Context) {
	var req dto.ImportValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	report, err := h.service.ImportValidate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Commit godoc
// @Summary Commit a validated timetable batch
// @Tags Import
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param payload body dto.ImportCommitRequest true "Recognized entries"
// @Success 201 {object} response.Envelope
// @Router /workspaces/{id}/import/commit [post]
func (h *ImportHandler) Commit(c *gin.Context) {
	var req dto.ImportCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	workspaceID := c.Param("id")
	resp, err := h.service.ImportCommit(c.Request.Context(), workspaceID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if resp.Committed > 0 {
		h.metrics.RecordMutation("import")
		h.metrics.SetConflicts(workspaceID, len(resp.State.Conflicts))
		h.metrics.SetUndoDepth(resp.State.UndoDepth)
	}
	response.Created(c, resp)
}
