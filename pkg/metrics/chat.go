package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ChatMetrics records chat submission and gateway call metadata.
type ChatMetrics struct {
	submissions     *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	gatewaySuccess  prometheus.Counter
	gatewayFailure  prometheus.Counter
	voiceEvents     *prometheus.CounterVec
}

// NewChatMetrics registers the chat metrics on the provided registerer.
func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	if reg == nil {
		return &ChatMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_submissions_total",
		Help: "Chat submissions by query type.",
	}, []string{"query_type"})
	gatewayDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_call_duration_seconds",
		Help:    "Duration of recommendation gateway calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"call"})
	gatewaySuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_call_success_total",
		Help: "Successful recommendation gateway calls.",
	})
	gatewayFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_call_failure_total",
		Help: "Failed recommendation gateway calls.",
	})
	voiceEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "voice_events_total",
		Help: "Voice session events by kind.",
	}, []string{"kind"})
	reg.MustRegister(submissions, gatewayDuration, gatewaySuccess, gatewayFailure, voiceEvents)
	return &ChatMetrics{
		submissions:     submissions,
		gatewayDuration: gatewayDuration,
		gatewaySuccess:  gatewaySuccess,
		gatewayFailure:  gatewayFailure,
		voiceEvents:     voiceEvents,
	}
}

// IncSubmission increments the submission counter for the given query type.
func (c *ChatMetrics) IncSubmission(queryType string) {
	if c == nil || c.submissions == nil {
		return
	}
	c.submissions.WithLabelValues(normalizeLabel(queryType)).Inc()
}

// ObserveGatewayDuration records the duration of the named gateway call.
func (c *ChatMetrics) ObserveGatewayDuration(call string, duration time.Duration) {
	if c == nil || c.gatewayDuration == nil {
		return
	}
	c.gatewayDuration.WithLabelValues(normalizeLabel(call)).Observe(duration.Seconds())
}

// IncGatewaySuccess increments the gateway success counter.
func (c *ChatMetrics) IncGatewaySuccess() {
	if c == nil || c.gatewaySuccess == nil {
		return
	}
	c.gatewaySuccess.Inc()
}

// IncGatewayFailure increments the gateway failure counter.
func (c *ChatMetrics) IncGatewayFailure() {
	if c == nil || c.gatewayFailure == nil {
		return
	}
	c.gatewayFailure.Inc()
}

// IncVoiceEvent increments the voice event counter for the given kind.
func (c *ChatMetrics) IncVoiceEvent(kind string) {
	if c == nil || c.voiceEvents == nil {
		return
	}
	c.voiceEvents.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
