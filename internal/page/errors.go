package page

import (
	stderrors "errors"
	"fmt"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/model"
)

var (
	// ErrSinkIO matches every error that aborted a page because its output failed.
	ErrSinkIO = stderrors.New("page output failed")
	// ErrDegraded matches the strict-mode error of a page that dropped members.
	ErrDegraded = stderrors.New("page dropped members")
)

// SinkIOError reports a fatal output failure while building a page.
type SinkIOError struct {
	Type    string
	Path    string
	Section SectionName // empty when the sink could not be created or finalized
	Err     error
}

func (e *SinkIOError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("page %s: section %s: %v", e.Type, e.Section, e.Err)
	}
	return fmt.Sprintf("page %s: %v", e.Type, e.Err)
}

func (e *SinkIOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSinkIO) hold for any SinkIOError.
func (e *SinkIOError) Is(target error) bool { return target == ErrSinkIO }

// MemberRenderError records one member that could not be rendered. It never
// aborts a page; it is collected into Result.Failures.
type MemberRenderError struct {
	Section SectionName
	Kind    model.MemberKind
	Name    string
	Err     error
}

func (e *MemberRenderError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s %s in %s: %v", e.Kind, name, e.Section, e.Err)
}

func (e *MemberRenderError) Unwrap() error { return e.Err }

// isMemberFailure reports whether err from a member append is local to that member.
func isMemberFailure(err error) bool {
	return errors.HasCategory(err, errors.CategoryRender)
}
