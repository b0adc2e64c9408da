package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suryakamal494/timetable-workspace-api/internal/dto"
	"github.com/suryakamal494/timetable-workspace-api/internal/service"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
	"github.com/suryakamal494/timetable-workspace-api/pkg/response"
)

// WorkspaceHandler manages the editing-session endpoints.
type WorkspaceHandler struct {
	service *service.WorkspaceService
	metrics *service.MetricsService
}

// NewWorkspaceHandler constructs handler.
func NewWorkspaceHandler(svc *service.WorkspaceService, metrics *service.MetricsService) *WorkspaceHandler {
	return &WorkspaceHandler{service: svc, metrics: metrics}
}

func (h *WorkspaceHandler) recordMutation(workspaceID, operation string, state dto.WorkspaceState) {
	h.metrics.RecordMutation(operation)
	h.metrics.SetConflicts(workspaceID, len(state.Conflicts))
	h.metrics.SetUndoDepth(state.UndoDepth)
}

// State godoc
// @Summary Get workspace state
// @Tags Workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) State(c *gin.Context) {
	state, err := h.service.State(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}

// Assign godoc
// @Summary Assign a teacher to a slot
// @Tags Workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param payload body dto.AssignRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope "Batch selection required"
// @Router /workspaces/{id}/assignments [post]
func (h *WorkspaceHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	workspaceID := c.Param("id")
	resp, err := h.service.Assign(c.Request.Context(), workspaceID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if resp.RequiresSelection {
		response.JSON(c, http.StatusOK, resp, nil)
		return
	}
	h.recordMutation(workspaceID, "assign", resp.State)
	response.Created(c, resp)
}

// ResolveDrop godoc
// @Summary Resolve a pending drop with a batch choice
// @Tags Workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param payload body dto.ResolveDropRequest true "Batch choice"
// @Success 201 {object} response.Envelope
// @Router /workspaces/{id}/assignments/resolve [post]
func (h *WorkspaceHandler) ResolveDrop(c *gin.Context) {
	var req dto.ResolveDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	workspaceID := c.Param("id")
	resp, err := h.service.ResolveDrop(c.Request.Context(), workspaceID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.recordMutation(workspaceID, "assign", resp.State)
	response.Created(c, resp)
}

// CancelDrop godoc
// @Summary Cancel the pending drop
// @Tags Workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id}/assignments/pending [delete]
func (h *WorkspaceHandler) CancelDrop(c *gin.Context) {
	state, err := h.service.CancelDrop(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}

// Move godoc
// @Summary Move an entry to another slot
// @Tags Workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param payload body dto.MoveRequest true "Move payload"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id}/moves [post]
func (h *WorkspaceHandler) Move(c *gin.Context) {
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	workspaceID := c.Param("id")
	resp, err := h.service.Move(c.Request.Context(), workspaceID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.recordMutation(workspaceID, "move", resp.State)
	response.JSON(c, http.StatusOK, resp, nil)
}

// Remove godoc
// @Summary Remove an entry from the grid
// @Tags Workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Param entryId path string true "Entry ID"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id}/entries/{entryId} [delete]
func (h *WorkspaceHandler) Remove(c *gin.Context) {
	workspaceID := c.Param("id")
	resp, err := h.service.Remove(c.Request.Context(), workspaceID, c.Param("entryId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.recordMutation(workspaceID, "remove", resp.State)
	response.JSON(c, http.StatusOK, resp, nil)
}

// Undo godoc
// @Summary Undo the most recent mutation
// @Tags Workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id}/undo [post]
func (h *WorkspaceHandler) Undo(c *gin.Context) {
	workspaceID := c.Param("id")
	resp, err := h.service.Undo(c.Request.Context(), workspaceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if resp.Applied {
		h.recordMutation(workspaceID, "undo", resp.State)
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Redo godoc
// @Summary Redo the most recently undone mutation
// @Tags Workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id}/redo [post]
func (h *WorkspaceHandler) Redo(c *gin.Context) {
	workspaceID := c.Param("id")
	resp, err := h.service.Redo(c.Request.Context(), workspaceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if resp.Applied {
		h.recordMutation(workspaceID, "redo", resp.State)
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Propagate godoc
// @Summary Copy the current week onto other weeks
// @Tags Workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param payload body dto.PropagateRequest true "Propagation payload"
// @Success 200 {object} response.Envelope
// @Router /workspaces/{id}/propagate [post]
func (h *WorkspaceHandler) Propagate(c *gin.Context) {
	var req dto.PropagateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resp, err := h.service.Propagate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
