package generate

import (
	"time"

	"git.home.luguber.info/inful/classpage/internal/page"
)

// Outcome is the final state of a generation run.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeDegraded Outcome = "degraded" // every page written, some without members
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Report summarizes one generation run. Pages holds the results of written
// pages in input order; Errors holds one entry per page that was not written
// (or, in strict mode, written with dropped members).
type Report struct {
	RunID    string
	OutDir   string
	Start    time.Time
	End      time.Time
	Pages    []*page.Result
	Errors   []error
	Outcome  Outcome
	Removed  int // stale pages deleted by clean
	Types    int // types requested
	Failures int // members dropped across all pages
}

// Degraded returns the written pages that dropped at least one member.
func (r *Report) Degraded() []*page.Result {
	var out []*page.Result
	for _, p := range r.Pages {
		if p.Degraded() {
			out = append(out, p)
		}
	}
	return out
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

func (r *Report) deriveOutcome(canceled bool) {
	switch {
	case canceled:
		r.Outcome = OutcomeCanceled
	case len(r.Errors) > 0:
		r.Outcome = OutcomeFailed
	case r.Failures > 0:
		r.Outcome = OutcomeDegraded
	default:
		r.Outcome = OutcomeSuccess
	}
}
