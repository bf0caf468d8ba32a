package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	m := NewHTTPMetricsWith(registry)

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/drinks/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/drinks/123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	families, err := registry.Gather()
	require.NoError(t, err)

	counter := findMetric(families, "barflow_http_requests_total")
	require.NotNil(t, counter)
	require.Len(t, counter.Metric, 1)
	assert.Equal(t, float64(1), counter.Metric[0].GetCounter().GetValue())
	assert.Equal(t, "/drinks/:id", labelValue(counter.Metric[0], "route"))
	assert.Equal(t, "200", labelValue(counter.Metric[0], "status"))

	histogram := findMetric(families, "barflow_http_request_duration_seconds")
	require.NotNil(t, histogram)
	assert.Equal(t, uint64(1), histogram.Metric[0].GetHistogram().GetSampleCount())
}

func TestGinMiddlewareUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	m := NewHTTPMetricsWith(registry)

	r := gin.New()
	r.Use(GinMiddleware(m))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)

	families, err := registry.Gather()
	require.NoError(t, err)

	counter := findMetric(families, "barflow_http_requests_total")
	require.NotNil(t, counter)
	assert.Equal(t, "unknown", labelValue(counter.Metric[0], "route"))
}

func findMetric(families []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}
