package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker/v2"
)

func TestRecordPrediction(t *testing.T) {
	before := testutil.ToFloat64(PredictionsTotal.WithLabelValues("true"))
	RecordPrediction(true, 4)
	if got := testutil.ToFloat64(PredictionsTotal.WithLabelValues("true")); got != before+1 {
		t.Fatalf("counter = %v, want %v", got, before+1)
	}
}

func TestRecordUpstream(t *testing.T) {
	RecordUpstream("test", nil)
	RecordUpstream("test", errors.New("boom"))
	RecordUpstream("test", errors.New("boom"))
	if got := testutil.ToFloat64(UpstreamRequests.WithLabelValues("test", "error")); got != 2 {
		t.Fatalf("errors = %v", got)
	}
}

func TestRecordBreakerState(t *testing.T) {
	RecordBreakerState("weather", gobreaker.StateOpen)
	if got := testutil.ToFloat64(BreakerState.WithLabelValues("weather")); got != 2 {
		t.Fatalf("state = %v", got)
	}
}
