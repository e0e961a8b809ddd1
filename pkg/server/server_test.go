package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careloop/rosterengine/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := New(config.Default(), zap.NewNop())
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCalculate_OK(t *testing.T) {
	// 2026-03-02 is a Monday
	body := `{
		"base_hourly_rate": 30,
		"worker_level": 1,
		"start_time": "2026-03-02T09:00:00Z",
		"end_time": "2026-03-02T17:00:00Z"
	}`
	rec := doJSON(t, testServer(t), http.MethodPost, "/calculate", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalHours float64 `json:"total_hours"`
		TotalCost  float64 `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 8.0, resp.TotalHours, 1e-9)
	assert.InDelta(t, 240.00, resp.TotalCost, 1e-9)
}

func TestCalculate_InvalidRange(t *testing.T) {
	body := `{
		"base_hourly_rate": 30,
		"worker_level": 1,
		"start_time": "2026-03-02T17:00:00Z",
		"end_time": "2026-03-02T09:00:00Z"
	}`
	rec := doJSON(t, testServer(t), http.MethodPost, "/calculate", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCalculate_MalformedBody(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/calculate", `{"base_hourly_rate": "thirty"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculate_MissingRate(t *testing.T) {
	body := `{
		"worker_level": 1,
		"start_time": "2026-03-02T09:00:00Z",
		"end_time": "2026-03-02T17:00:00Z"
	}`
	rec := doJSON(t, testServer(t), http.MethodPost, "/calculate", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatch_OK(t *testing.T) {
	body := `{
		"shift_requirements": {
			"shift_id": "s1",
			"participant_location_lat": -33.8688,
			"participant_location_lng": 151.2093,
			"required_certifications": ["first-aid"],
			"required_trainings": [],
			"shift_start": "2026-03-02T09:00:00Z",
			"shift_end": "2026-03-02T17:00:00Z"
		},
		"candidate_workers": [
			{
				"worker_id": "w1",
				"hourly_rate": 30,
				"worker_level": 1,
				"experience_hours": 2000,
				"location_lat": -33.87,
				"location_lng": 151.21,
				"available": true,
				"certifications": [{"certification_id": "first-aid"}],
				"trainings": []
			},
			{
				"worker_id": "w2",
				"hourly_rate": 35,
				"worker_level": 1,
				"experience_hours": 100,
				"available": true,
				"certifications": [],
				"trainings": []
			}
		],
		"include_excluded": true
	}`
	rec := doJSON(t, testServer(t), http.MethodPost, "/match", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ShiftID         string `json:"shift_id"`
		TotalCandidates int    `json:"total_candidates"`
		EligibleWorkers int    `json:"eligible_workers"`
		RankedMatches   []struct {
			WorkerID   string  `json:"worker_id"`
			Rank       int     `json:"rank"`
			TotalScore float64 `json:"total_score"`
		} `json:"ranked_matches"`
		ExcludedWorkers []struct {
			WorkerID string   `json:"worker_id"`
			Reasons  []string `json:"exclusion_reasons"`
		} `json:"excluded_workers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "s1", resp.ShiftID)
	assert.Equal(t, 2, resp.TotalCandidates)
	assert.Equal(t, 1, resp.EligibleWorkers)
	require.Len(t, resp.RankedMatches, 1)
	assert.Equal(t, "w1", resp.RankedMatches[0].WorkerID)
	assert.Equal(t, 1, resp.RankedMatches[0].Rank)
	require.Len(t, resp.ExcludedWorkers, 1)
	assert.Equal(t, "w2", resp.ExcludedWorkers[0].WorkerID)
}

func TestMatch_EmptyPoolIsOK(t *testing.T) {
	body := `{
		"shift_requirements": {
			"shift_id": "s1",
			"required_certifications": [],
			"required_trainings": [],
			"shift_start": "2026-03-02T09:00:00Z",
			"shift_end": "2026-03-02T17:00:00Z"
		},
		"candidate_workers": []
	}`
	rec := doJSON(t, testServer(t), http.MethodPost, "/match", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eligible_workers":0`)
}

func TestMatch_MalformedBody(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/match", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
