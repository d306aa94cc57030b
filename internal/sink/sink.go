// Package sink defines the append-only output contract of one generated page
// and its Markdown implementation.
package sink

import "git.home.luguber.info/inful/classpage/internal/model"

// Sink accepts the ordered writes of exactly one page and persists them on
// Finalize. A Sink is not safe for concurrent use and must not be shared
// between pages.
//
// Member appends (AppendMethodHeader, AppendField, AppendMethod,
// AppendFieldSummary) return a render-category error when the member itself
// cannot be rendered; nothing is written in that case. Any other error is
// fatal to the page.
type Sink interface {
	AppendHeader(text string, level int) error
	AppendText(text string) error
	NewLine() error

	InitializeMethodHeader() error
	AppendMethodHeader(m *model.Method) error

	InitializeFieldHeader() error
	AppendField(f *model.Field) error

	InitializeFieldSummaryHeader() error
	AppendFieldSummary(f *model.Field) error

	AppendMethod(m *model.Method) error

	// Finalize flushes and persists the page. It may be called once.
	Finalize() error
}

// Aborter is implemented by sinks that hold resources which must be released
// when a page build fails before Finalize.
type Aborter interface {
	Abort() error
}
