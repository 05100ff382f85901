package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-scheduler/internal/dto"
	appErrors "github.com/noah-isme/course-scheduler/pkg/errors"
)

type schedulePlannerMock struct {
	captured dto.GenerateScheduleRequest
	resp     *dto.GenerateScheduleResponse
	err      error
}

func (m *schedulePlannerMock) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	m.captured = req
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return &dto.GenerateScheduleResponse{ProposalID: "proposal-1", Status: "ranked"}, nil
}

func (m *schedulePlannerMock) Get(id string) (*dto.GenerateScheduleResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return nil, appErrors.ErrNotFound
}

func TestScheduleHandlerGenerateSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &schedulePlannerMock{}
	handler := NewScheduleHandler(mock)

	payload := []byte(`{"term":"2026-fall","courses":["MATH-1226"],"preferences":{"preferredTime":"morning","timeWeight":0.5,"dayWeight":0.5}}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/schedules/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "2026-fall", mock.captured.Term)
}

func TestScheduleHandlerGenerateInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&schedulePlannerMock{})

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/schedules/generate", bytes.NewReader([]byte(`{"term":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandlerGetProposalNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&schedulePlannerMock{err: appErrors.ErrNotFound})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/schedules/generate/missing", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "proposalId", Value: "missing"}}

	handler.GetProposal(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}
