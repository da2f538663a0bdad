package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New()

	m.RecordPositionWrite("accepted")
	m.RecordPositionWrite("accepted")
	m.RecordPositionWrite("rejected")
	m.RecordPlacements(12)
	m.RecordValidationFailure("lineup")
	m.RecordHTTPRequest("/positions/{positionID}", "PATCH", "409", 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.positionWrites.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.positionWrites.WithLabelValues("rejected")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.placementsComputed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("lineup")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/positions/{positionID}", "PATCH", "409")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordPositionWrite("unchanged")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `choreo_timeline_position_writes_total{result="unchanged"} 1`)
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
