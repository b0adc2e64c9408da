package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	"github.com/suryakamal494/timetable-workspace-api/internal/service"
	"github.com/suryakamal494/timetable-workspace-api/pkg/response"
)

// RosterHandler manages read-only roster endpoints.
type RosterHandler struct {
	service *service.RosterService
}

// NewRosterHandler constructs handler.
func NewRosterHandler(svc *service.RosterService) *RosterHandler {
	return &RosterHandler{service: svc}
}

// ListTeacherLoads godoc
// @Summary List teacher loads
// @Tags Roster
// @Produce json
// @Param search query string false "Name filter"
// @Param batchId query string false "Filter by batch"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /teachers/loads [get]
func (h *RosterHandler) ListTeacherLoads(c *gin.Context) {
	var filter models.TeacherLoadFilter
	filter.Search = c.Query("search")
	filter.BatchID = c.Query("batchId")
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = limit
	}

	loads, pagination, err := h.service.ListTeacherLoads(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, loads, pagination)
}

// GetTeacherLoad godoc
// @Summary Get one teacher's load
// @Tags Roster
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id}/load [get]
func (h *RosterHandler) GetTeacherLoad(c *gin.Context) {
	load, err := h.service.GetTeacherLoad(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, load, nil)
}
