package page

import (
	stderrors "errors"
	"time"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/metrics"
)

// Result describes a completed page build.
type Result struct {
	Type     string
	Path     string
	Sections []SectionName
	Failures []*MemberRenderError
	Duration time.Duration
}

// Degraded reports whether the page was written without one or more members.
func (r *Result) Degraded() bool { return len(r.Failures) > 0 }

// Outcome returns the metrics outcome label of the page.
func (r *Result) Outcome() metrics.OutcomeLabel {
	if r.Degraded() {
		return metrics.OutcomeDegraded
	}
	return metrics.OutcomeSuccess
}

// StrictErr returns nil for a complete page and an error matching ErrDegraded
// when members were dropped. The page file exists either way.
func (r *Result) StrictErr() error {
	if !r.Degraded() {
		return nil
	}
	failures := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = f
	}
	return errors.WrapError(stderrors.Join(append([]error{ErrDegraded}, failures...)...), errors.CategoryRender, "page dropped members").
		WithContext("type", r.Type).
		WithContext("path", r.Path).
		WithContext("failures", len(r.Failures)).
		Build()
}
