package pkgmetrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgmetrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	t.Parallel()

	m := pkgmetrics.New()
	m.ObserveRequest(http.MethodGet, "/api/menus", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/menus", http.StatusOK, 10*time.Millisecond)

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/menus", "200"))
	assert.InDelta(t, 2.0, got, 0.0001)
}

func TestObserveQuery(t *testing.T) {
	t.Parallel()

	m := pkgmetrics.New()
	m.ObserveQuery("sqlite", "get_menu", time.Now(), false)
	m.ObserveQuery("sqlite", "get_menu", time.Now(), true)

	got := testutil.ToFloat64(m.StoreQueryErrors.WithLabelValues("sqlite", "get_menu"))
	assert.InDelta(t, 1.0, got, 0.0001)
	assert.Equal(t, 1, testutil.CollectAndCount(m.StoreQueryDuration))
}

func TestObserveQueryNilMetrics(t *testing.T) {
	t.Parallel()

	var m *pkgmetrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuery("memory", "list_menus", time.Now(), true)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	t.Parallel()

	m := pkgmetrics.New()
	m.ObserveRequest(http.MethodPost, "/api/employees", http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "gocafe_http_requests_total"))
}
