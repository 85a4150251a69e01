package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveLineOperation(t *testing.T) {
	Init()
	Init()

	before := testutil.ToFloat64(lineOperations.WithLabelValues("create", resultSuccess))
	ObserveLineOperation("create", "")
	after := testutil.ToFloat64(lineOperations.WithLabelValues("create", resultSuccess))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	Init()
	ObserveHTTPRequest(http.MethodGet, "/lines", http.StatusOK, 5*time.Millisecond)
	ObserveStationOperation("create", "conflict")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rr.Body.String()
	for _, name := range []string{
		"subway_http_requests_total",
		"subway_http_request_duration_seconds",
		"subway_station_operations_total",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in metrics output", name)
		}
	}
}
