package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg            *prom.Registry
	pageDuration   prom.Histogram
	pageOutcomes   *prom.CounterVec
	memberFailures *prom.CounterVec
	runDuration    prom.Histogram
	concurrency    prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		pageDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "classpage",
			Name:      "page_duration_seconds",
			Help:      "Duration of individual page builds",
			Buckets:   prom.ExponentialBuckets(0.0005, 4, 8),
		}),
		pageOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "classpage",
			Name:      "page_outcomes_total",
			Help:      "Page builds by outcome",
		}, []string{"outcome"}),
		memberFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "classpage",
			Name:      "member_failures_total",
			Help:      "Members dropped from pages because they could not be rendered",
		}, []string{"section", "kind"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "classpage",
			Name:      "run_duration_seconds",
			Help:      "Duration of whole generation runs",
			Buckets:   prom.DefBuckets,
		}),
		concurrency: prom.NewGauge(prom.GaugeOpts{
			Namespace: "classpage",
			Name:      "build_concurrency",
			Help:      "Page build concurrency of the last run",
		}),
	}
	reg.MustRegister(pr.pageDuration, pr.pageOutcomes, pr.memberFailures, pr.runDuration, pr.concurrency)
	return pr
}

// Registry returns the registry the collectors are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes all collected metrics in the text exposition format to path.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

func (p *PrometheusRecorder) ObservePageDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.pageDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPageOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.pageOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncMemberFailure(section, kind string) {
	if p == nil {
		return
	}
	p.memberFailures.WithLabelValues(section, kind).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetConcurrency(n int) {
	if p == nil {
		return
	}
	p.concurrency.Set(float64(n))
}
