package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestChatMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewChatMetrics(reg)

	m.IncSubmission("menu_query")
	m.IncSubmission("menu_query")
	m.IncSubmission("")
	m.IncGatewaySuccess()
	m.IncGatewayFailure()
	m.IncVoiceEvent("final")
	m.ObserveGatewayDuration("recommend", 120*time.Millisecond)

	if got := testutil.ToFloat64(m.submissions.WithLabelValues("menu_query")); got != 2 {
		t.Fatalf("expected 2 menu_query submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty query type to count as unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.gatewaySuccess); got != 1 {
		t.Fatalf("expected 1 gateway success, got %v", got)
	}
	if got := testutil.ToFloat64(m.gatewayFailure); got != 1 {
		t.Fatalf("expected 1 gateway failure, got %v", got)
	}
}

func TestChatMetricsNilSafe(t *testing.T) {
	var m *ChatMetrics
	m.IncSubmission("menu_query")
	m.IncGatewaySuccess()
	m.IncGatewayFailure()
	m.IncVoiceEvent("error")
	m.ObserveGatewayDuration("recommend", time.Second)

	empty := NewChatMetrics(nil)
	empty.IncSubmission("general")
}
