package metrics

import "time"

// OutcomeLabel enumerates page build outcomes.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeDegraded OutcomeLabel = "degraded"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for page and run metrics.
type Recorder interface {
	ObservePageDuration(d time.Duration)
	IncPageOutcome(outcome OutcomeLabel)
	IncMemberFailure(section, kind string)
	ObserveRunDuration(d time.Duration)
	SetConcurrency(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePageDuration(time.Duration) {}
func (NoopRecorder) IncPageOutcome(OutcomeLabel)       {}
func (NoopRecorder) IncMemberFailure(string, string)   {}
func (NoopRecorder) ObserveRunDuration(time.Duration)  {}
func (NoopRecorder) SetConcurrency(int)                {}
