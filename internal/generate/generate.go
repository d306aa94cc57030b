// Package generate builds the pages of many types into an output tree with one
// directory per package.
package generate

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/logfields"
	"git.home.luguber.info/inful/classpage/internal/metrics"
	"git.home.luguber.info/inful/classpage/internal/model"
	"git.home.luguber.info/inful/classpage/internal/page"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Options configures a generation run.
type Options struct {
	OutDir        string
	RenderContext model.RenderContext
	Concurrency   int  // 0 means GOMAXPROCS
	Strict        bool // pages that dropped members count as errors
	Clean         bool // delete existing pages in OutDir first
	Logger        *slog.Logger
	Recorder      metrics.Recorder
}

func (o *Options) normalize() {
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Recorder == nil {
		o.Recorder = metrics.NoopRecorder{}
	}
}

// PageDir returns the directory that holds the page of typ: the package
// path under outDir, matching the relative links between pages.
func PageDir(outDir string, typ *model.TypeEntity) string {
	return filepath.Join(outDir, filepath.FromSlash(typ.Package.Dir()))
}

// Run writes one page per type under opts.OutDir. Pages are built
// concurrently and independently: a page that fails does not stop the
// others. The returned error joins every page error and is nil when all pages
// were written (degraded pages included unless opts.Strict is set).
func Run(ctx context.Context, types []*model.TypeEntity, opts Options) (*Report, error) {
	opts.normalize()
	report := &Report{
		RunID:  uuid.NewString(),
		OutDir: opts.OutDir,
		Start:  time.Now(),
		Types:  len(types),
	}
	logger := opts.Logger.With(logfields.RunID(report.RunID))

	if err := checkUnique(types, opts.RenderContext); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutDir, 0o750); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", opts.OutDir).
			Build()
	}
	if opts.Clean {
		n, err := cleanPages(opts.OutDir, opts.RenderContext)
		if err != nil {
			return nil, err
		}
		report.Removed = n
	}
	for _, typ := range types {
		dir := PageDir(opts.OutDir, typ)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create package directory").
				WithContext("path", dir).
				Build()
		}
	}

	builder := page.NewBuilder(opts.RenderContext).WithLogger(logger).WithRecorder(opts.Recorder)
	concurrency := min(opts.Concurrency, max(len(types), 1))
	opts.Recorder.SetConcurrency(concurrency)
	logger.Info("Generating pages",
		logfields.Count(len(types)),
		logfields.Path(opts.OutDir),
		slog.Int("concurrency", concurrency))

	// Each goroutine owns index i of results and errs.
	results := make([]*page.Result, len(types))
	errs := make([]error, len(types))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, typ := range types {
		g.Go(func() error {
			res, err := builder.Build(ctx, typ, PageDir(opts.OutDir, typ))
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = res
			if opts.Strict {
				errs[i] = res.StrictErr()
			}
			return nil
		})
	}
	_ = g.Wait()

	for i := range types {
		if results[i] != nil {
			report.Pages = append(report.Pages, results[i])
			report.Failures += len(results[i].Failures)
		}
		if errs[i] != nil {
			report.Errors = append(report.Errors, errs[i])
		}
	}
	report.End = time.Now()
	report.deriveOutcome(ctx.Err() != nil)
	opts.Recorder.ObserveRunDuration(report.Duration())

	logger.Info("Generation finished",
		logfields.Outcome(string(report.Outcome)),
		logfields.Count(len(report.Pages)),
		slog.Int("degraded", len(report.Degraded())),
		slog.Int("errors", len(report.Errors)),
		logfields.DurationMS(float64(report.Duration().Microseconds())/1000))

	if len(report.Errors) > 0 {
		return report, stderrors.Join(report.Errors...)
	}
	return report, nil
}

// checkUnique rejects runs where two types would write the same page file.
// Names are compared case-insensitively within a package directory.
func checkUnique(types []*model.TypeEntity, rc model.RenderContext) error {
	seen := make(map[string]string, len(types))
	for _, typ := range types {
		if typ == nil {
			return errors.ValidationError("type is nil").Build()
		}
		rel := filepath.ToSlash(filepath.Join(typ.Package.Dir(), rc.PageName(typ.Name)))
		key := strings.ToLower(rel)
		if prev, ok := seen[key]; ok {
			return errors.ValidationError("two types map to the same page").
				WithContext("page", rel).
				WithContext("first", prev).
				WithContext("second", typ.QualifiedName()).
				Build()
		}
		seen[key] = typ.QualifiedName()
	}
	return nil
}

// cleanPages deletes the page files under dir. Package indexes are kept.
func cleanPages(dir string, rc model.RenderContext) (int, error) {
	removed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() || name == rc.PackageIndex || !strings.HasSuffix(name, rc.Extension) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		removed++
		return nil
	})
	if err != nil {
		return removed, errors.WrapError(err, errors.CategoryFileSystem, "failed to remove stale pages").
			WithContext("path", dir).
			Build()
	}
	return removed, nil
}
