package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/classpage/internal/generate"
	"git.home.luguber.info/inful/classpage/internal/logfields"
	"git.home.luguber.info/inful/classpage/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Models      []string `arg:"" name:"model" help:"Model files (YAML or JSON)" type:"existingfile"`
	Output      string   `short:"o" help:"Output directory (overrides output.directory)"`
	Strict      bool     `help:"Fail when a page had to drop members"`
	Clean       bool     `help:"Remove existing pages from the output directory first"`
	Frontmatter bool     `help:"Prepend YAML frontmatter to every page"`
	MetricsFile string   `name:"metrics-file" help:"Write Prometheus metrics to this textfile after the run"`
}

func (g *GenerateCmd) Run(ctx context.Context, global *Global) error {
	_, err := g.generate(ctx, global)
	return err
}

func (g *GenerateCmd) options(global *Global) generate.Options {
	cfg := global.Config
	rc := cfg.RenderContext()
	if g.Frontmatter {
		rc.Frontmatter = true
	}
	out := cfg.Output.Directory
	if g.Output != "" {
		out = g.Output
	}
	return generate.Options{
		OutDir:        out,
		RenderContext: rc,
		Concurrency:   cfg.Build.Concurrency,
		Strict:        g.Strict || cfg.Build.Strict,
		Clean:         g.Clean || cfg.Output.Clean,
		Logger:        global.Logger,
	}
}

func (g *GenerateCmd) metricsFile(global *Global) string {
	if g.MetricsFile != "" {
		return g.MetricsFile
	}
	return global.Config.Metrics.Textfile
}

func (g *GenerateCmd) generate(ctx context.Context, global *Global) (*generate.Report, error) {
	types, err := loadModels(g.Models)
	if err != nil {
		return nil, err
	}
	opts := g.options(global)

	var rec *metrics.PrometheusRecorder
	if path := g.metricsFile(global); path != "" {
		rec = metrics.NewPrometheusRecorder(prometheus.NewRegistry())
		opts.Recorder = rec
	}

	report, runErr := generate.Run(ctx, types, opts)
	if rec != nil {
		if err := rec.WriteTextfile(g.metricsFile(global)); err != nil {
			global.Logger.Warn("Failed to write metrics textfile", logfields.Path(g.metricsFile(global)), logfields.Error(err))
		}
	}
	if report != nil {
		printReport(report)
	}
	return report, runErr
}

func printReport(r *generate.Report) {
	fmt.Printf("%d pages written to %s (%s)\n", len(r.Pages), r.OutDir, r.Outcome)
	for _, p := range r.Degraded() {
		for _, f := range p.Failures {
			fmt.Printf("  %s: dropped %s\n", p.Type, f.Error())
		}
	}
	if r.Removed > 0 {
		slog.Debug("Removed stale pages", logfields.Count(r.Removed))
	}
}
