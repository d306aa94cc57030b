// Package commands implements the classpage subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/classpage/internal/config"
	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/model"
	"github.com/alecthomas/kong"
)

// Global is shared with every subcommand.
type Global struct {
	Logger *slog.Logger
	Config *config.Config
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"classpage.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate class pages from model files"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate class pages whenever a model file changes"`
	Verify   VerifyCmd   `cmd:"" help:"Check the links of generated pages"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply loads the configuration and sets up logging once. A missing
// configuration file is only an error when it was asked for explicitly.
func (c *CLI) AfterApply(g *Global, kctx *kong.Context) error {
	cfg, err := c.loadConfig(kctx)
	if err != nil {
		g.Logger = newLogger(os.Stderr, config.LogLevelInfo, config.LogFormatText, c.Verbose)
		return err
	}
	g.Config = cfg
	g.Logger = newLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format, c.Verbose)
	slog.SetDefault(g.Logger)
	return nil
}

func (c *CLI) loadConfig(kctx *kong.Context) (*config.Config, error) {
	if kctx != nil && kctx.Command() == "init" {
		return config.Default(), nil
	}
	if _, err := os.Stat(c.Config); os.IsNotExist(err) && !flagSet(kctx, "config") {
		return config.Default(), nil
	}
	return config.Load(c.Config)
}

func flagSet(kctx *kong.Context, name string) bool {
	if kctx == nil {
		return false
	}
	for _, f := range kctx.Flags() {
		if f.Name == name {
			return f.Set
		}
	}
	return false
}

func newLogger(w io.Writer, level config.LogLevel, format config.LogFormat, verbose bool) *slog.Logger {
	lvl := level.Slog()
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadModels decodes and concatenates model files in argument order.
func loadModels(paths []string) ([]*model.TypeEntity, error) {
	var types []*model.TypeEntity
	for _, p := range paths {
		ts, err := model.LoadFile(p)
		if err != nil {
			return nil, err
		}
		types = append(types, ts...)
	}
	if len(types) == 0 {
		return nil, errors.ValidationError("model files declare no types").WithContext("files", len(paths)).Build()
	}
	return types, nil
}
