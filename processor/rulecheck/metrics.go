package rulecheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the rulecheck processor.
type Metrics struct {
	// Checks by outcome (passed, failed, error)
	ChecksTotal *prometheus.CounterVec

	// Rule failures by severity (violation, warning)
	ViolationsTotal *prometheus.CounterVec

	// Number of rules in the active ruleset
	RulesLoaded prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered on the default
// prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		ChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conlaw_rulecheck_checks_total",
			Help: "Total check evaluations by outcome",
		}, []string{"outcome"}),

		ViolationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conlaw_rulecheck_violations_total",
			Help: "Total rule failures by severity",
		}, []string{"severity"}),

		RulesLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "conlaw_rulecheck_rules_loaded",
			Help: "Number of rules in the active ruleset",
		}),
	}
}

// RecordCheck records a check outcome.
func (m *Metrics) RecordCheck(outcome string) {
	if m != nil {
		m.ChecksTotal.WithLabelValues(outcome).Inc()
	}
}

// RecordFailures records rule failure counts from a check.
func (m *Metrics) RecordFailures(violations, warnings int) {
	if m == nil {
		return
	}
	if violations > 0 {
		m.ViolationsTotal.WithLabelValues("violation").Add(float64(violations))
	}
	if warnings > 0 {
		m.ViolationsTotal.WithLabelValues("warning").Add(float64(warnings))
	}
}

// SetRulesLoaded records the active rule count.
func (m *Metrics) SetRulesLoaded(n int) {
	if m != nil {
		m.RulesLoaded.Set(float64(n))
	}
}
