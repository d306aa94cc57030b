package page

import (
	stderrors "errors"
	"fmt"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/model"
)

// recordingSink logs every call. Members named in renderFail are rejected with
// a render error; the call named in ioFail fails with a plain error.
type recordingSink struct {
	calls      []string
	renderFail map[string]bool
	ioFail     string
	aborted    bool
	finalized  bool
}

var errDiskFull = stderrors.New("disk full")

func (s *recordingSink) do(call string) error {
	if call == s.ioFail {
		return errDiskFull
	}
	s.calls = append(s.calls, call)
	return nil
}

func (s *recordingSink) member(call, name string) error {
	if s.renderFail[name] {
		return errors.RenderError("cannot render member").WithContext("member", name).Build()
	}
	return s.do(call + ":" + name)
}

func (s *recordingSink) AppendHeader(text string, level int) error {
	return s.do(fmt.Sprintf("h%d:%s", level, text))
}
func (s *recordingSink) AppendText(text string) error       { return s.do("text:" + text) }
func (s *recordingSink) NewLine() error                     { return s.do("nl") }
func (s *recordingSink) InitializeMethodHeader() error      { return s.do("method-table") }
func (s *recordingSink) InitializeFieldHeader() error       { return s.do("field-table") }
func (s *recordingSink) InitializeFieldSummaryHeader() error { return s.do("field-summary-table") }
func (s *recordingSink) AppendMethodHeader(m *model.Method) error {
	return s.member("method-row", m.Name)
}
func (s *recordingSink) AppendField(f *model.Field) error { return s.member("field", f.Name) }
func (s *recordingSink) AppendFieldSummary(f *model.Field) error {
	return s.member("field-row", f.Name)
}
func (s *recordingSink) AppendMethod(m *model.Method) error { return s.member("method", m.Name) }

func (s *recordingSink) Finalize() error {
	if err := s.do("finalize"); err != nil {
		return err
	}
	s.finalized = true
	return nil
}

func (s *recordingSink) Abort() error {
	s.aborted = true
	return nil
}
