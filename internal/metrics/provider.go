package metrics

import (
	"strconv"
	"time"
)

// Provider is what the upstream client and the handlers report through.
type Provider interface {
	RecordUpstreamRequest(operation, status string, duration time.Duration)
	IncrementPanelAction(action string, success bool)
}

type PrometheusProvider struct{}

func NewPrometheusProvider() *PrometheusProvider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) RecordUpstreamRequest(operation, status string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *PrometheusProvider) IncrementPanelAction(action string, success bool) {
	PanelActionsTotal.WithLabelValues(action, strconv.FormatBool(success)).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordUpstreamRequest(string, string, time.Duration) {}
func (Nop) IncrementPanelAction(string, bool)                   {}
