package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAnalysisRequestsIncrements(t *testing.T) {
	before := testutil.ToFloat64(AnalysisRequests.WithLabelValues("success"))
	AnalysisRequests.WithLabelValues("success").Inc()
	after := testutil.ToFloat64(AnalysisRequests.WithLabelValues("success"))
	assert.Equal(t, before+1, after)
}

func TestWorkersActiveGauge(t *testing.T) {
	WorkersActive.Set(0)
	WorkersActive.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(WorkersActive))
	WorkersActive.Dec()
	assert.Equal(t, 0.0, testutil.ToFloat64(WorkersActive))
}

func TestHandlerServesMetrics(t *testing.T) {
	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "ingestion_workers_active")
}
