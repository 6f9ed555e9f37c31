package traffic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(1)).RegisterRoutes(r.Group("/api/traffic"))
	return r
}

func TestEstimateEndpointPost(t *testing.T) {
	r := testServer()

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"url": "https://example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/traffic/estimate", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "https://example.com", result.URL)
	assert.NotZero(t, result.Metrics.MonthlyVisits)
	assert.NotEmpty(t, result.Recommendations)
}

func TestEstimateEndpointRejectsMissingURL(t *testing.T) {
	r := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/traffic/estimate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEstimateEndpointGetFlags(t *testing.T) {
	r := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/traffic/estimate?url=https://example.com&include_keywords=false", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.TopKeywords)
	assert.NotEmpty(t, result.TrafficSources)
}

func TestCompareEndpoint(t *testing.T) {
	r := testServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/traffic/compare?urls=https://a.example.com,https://b.example.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cmp Comparison
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cmp))
	assert.Equal(t, 2, cmp.TotalCompared)
}
