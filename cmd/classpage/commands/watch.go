package commands

import (
	"context"
	"time"

	"git.home.luguber.info/inful/classpage/internal/logfields"
	"git.home.luguber.info/inful/classpage/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	GenerateCmd `embed:""`
	Debounce time.Duration `help:"Quiet period before regenerating" default:"500ms"`
}

func (w *WatchCmd) Run(ctx context.Context, global *Global) error {
	regenerate := func(ctx context.Context) error {
		report, err := w.generate(ctx, global)
		if report != nil {
			global.Logger.Info("Regenerated pages", logfields.Outcome(string(report.Outcome)), logfields.Count(len(report.Pages)))
		}
		return err
	}
	if err := regenerate(ctx); err != nil {
		global.Logger.Error("Initial generation failed", logfields.Error(err))
	}

	watcher, err := watch.New(w.Models, regenerate)
	if err != nil {
		return err
	}
	return watcher.WithDebounce(w.Debounce).WithLogger(global.Logger).Run(ctx)
}
