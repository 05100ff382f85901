package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-scheduler/internal/dto"
	appErrors "github.com/noah-isme/course-scheduler/pkg/errors"
	"github.com/noah-isme/course-scheduler/pkg/response"
)

type schedulePlanner interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
	Get(id string) (*dto.GenerateScheduleResponse, error)
}

// ScheduleHandler exposes the schedule-generation endpoints.
type ScheduleHandler struct {
	planner schedulePlanner
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(planner schedulePlanner) *ScheduleHandler {
	return &ScheduleHandler{planner: planner}
}

// Generate handles POST /api/v1/schedules/generate.
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate schedule payload"))
		return
	}

	resp, err := h.planner.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// GetProposal handles GET /api/v1/schedules/generate/:proposalId.
func (h *ScheduleHandler) GetProposal(c *gin.Context) {
	resp, err := h.planner.Get(c.Param("proposalId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
