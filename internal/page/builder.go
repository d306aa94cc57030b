// Package page assembles one Markdown page per type: header, summary, fields
// and methods, in that order, through a sink.Sink.
package page

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/logfields"
	"git.home.luguber.info/inful/classpage/internal/metrics"
	"git.home.luguber.info/inful/classpage/internal/model"
	"git.home.luguber.info/inful/classpage/internal/sink"
)

// Builder renders type pages with a fixed render context.
type Builder struct {
	rc       model.RenderContext
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewBuilder creates a Builder that logs to slog.Default and records no metrics.
func NewBuilder(rc model.RenderContext) *Builder {
	return &Builder{rc: rc, logger: slog.Default(), recorder: metrics.NoopRecorder{}}
}

// WithLogger sets the logger used for member warnings.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// WithRecorder sets the metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r != nil {
		b.recorder = r
	}
	return b
}

// PagePath returns where the page of typ is written inside outDir.
func (b *Builder) PagePath(typ *model.TypeEntity, outDir string) string {
	return filepath.Join(outDir, b.rc.PageName(typ.Name))
}

// Build writes the page of typ into outDir. Members that cannot be rendered
// are left out and reported in Result.Failures; the returned error is nil in
// that case. Output failures and cancellation abort the page without leaving a
// file behind.
func (b *Builder) Build(ctx context.Context, typ *model.TypeEntity, outDir string) (*Result, error) {
	if typ == nil {
		return nil, errors.ValidationError("type is nil").Build()
	}
	path := b.PagePath(typ, outDir)
	doc, err := sink.Create(b.rc, typ, path)
	if err != nil {
		b.recorder.IncPageOutcome(metrics.OutcomeFailed)
		return nil, &SinkIOError{Type: typ.QualifiedName(), Path: path, Err: err}
	}
	return b.run(ctx, typ, doc, path)
}

// BuildTo runs the page pipeline for typ against s and finalizes it.
func (b *Builder) BuildTo(ctx context.Context, typ *model.TypeEntity, s sink.Sink) (*Result, error) {
	if typ == nil {
		return nil, errors.ValidationError("type is nil").Build()
	}
	return b.run(ctx, typ, s, "")
}

type pageState struct {
	typ      *model.TypeEntity
	rc       model.RenderContext
	sink     sink.Sink
	logger   *slog.Logger
	recorder metrics.Recorder

	section  SectionName
	failures []*MemberRenderError
}

func (b *Builder) run(ctx context.Context, typ *model.TypeEntity, s sink.Sink, path string) (*Result, error) {
	t0 := time.Now()
	ps := &pageState{typ: typ, rc: b.rc, sink: s, logger: b.logger, recorder: b.recorder}
	pipeline := DefaultPipeline(typ)

	fail := func(outcome metrics.OutcomeLabel, err error) (*Result, error) {
		if a, ok := s.(sink.Aborter); ok {
			if aerr := a.Abort(); aerr != nil {
				b.logger.Warn("Failed to abort page output", logfields.Path(path), logfields.Error(aerr))
			}
		}
		b.recorder.IncPageOutcome(outcome)
		b.logger.Error("Page build failed",
			logfields.Type(typ.QualifiedName()),
			logfields.Path(path),
			logfields.Outcome(string(outcome)),
			logfields.Error(err))
		return nil, err
	}

	for _, def := range pipeline.Defs {
		if err := ctx.Err(); err != nil {
			return fail(metrics.OutcomeCanceled, errors.WrapError(err, errors.CategoryCanceled, "page build canceled").
				WithContext("type", typ.QualifiedName()).
				WithContext("section", string(def.Name)).
				Build())
		}
		ps.section = def.Name
		if err := def.Fn(ps); err != nil {
			return fail(metrics.OutcomeFailed, sinkError(typ, path, def.Name, err))
		}
	}

	ps.section = ""
	if err := s.Finalize(); err != nil {
		return fail(metrics.OutcomeFailed, sinkError(typ, path, "", err))
	}

	res := &Result{
		Type:     typ.QualifiedName(),
		Path:     path,
		Sections: pipeline.Names(),
		Failures: ps.failures,
		Duration: time.Since(t0),
	}
	b.recorder.ObservePageDuration(res.Duration)
	b.recorder.IncPageOutcome(res.Outcome())
	b.logger.Debug("Page written",
		logfields.Type(res.Type),
		logfields.Path(path),
		logfields.Outcome(string(res.Outcome())),
		logfields.Count(len(res.Failures)),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}

func sinkError(typ *model.TypeEntity, path string, section SectionName, err error) error {
	if !errors.IsClassified(err) {
		err = errors.WrapError(err, errors.CategoryFileSystem, "page output failed").
			WithContext("path", path).
			Build()
	}
	return &SinkIOError{Type: typ.QualifiedName(), Path: path, Section: section, Err: err}
}

// Build writes the page of typ into outDir using rc.
func Build(ctx context.Context, rc model.RenderContext, typ *model.TypeEntity, outDir string) (*Result, error) {
	return NewBuilder(rc).Build(ctx, typ, outDir)
}

// BuildTo runs the page pipeline for typ against s using rc.
func BuildTo(ctx context.Context, rc model.RenderContext, typ *model.TypeEntity, s sink.Sink) (*Result, error) {
	return NewBuilder(rc).BuildTo(ctx, typ, s)
}
