package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RegisterAndExpose(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Requests.WithLabelValues("GET", "/api/orders", "200").Inc()
	m.LatencyMS.WithLabelValues("GET", "/api/orders").Observe(12)
	m.OutboxPublished.Add(3)
	m.OutboxFailed.Inc()

	assert.InDelta(t, 3, testutil.ToFloat64(m.OutboxPublished), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OutboxFailed), 0)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `checkout_http_requests_total{method="GET",route="/api/orders",status="200"} 1`)
	assert.Contains(t, string(body), "checkout_outbox_published_total 3")
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
