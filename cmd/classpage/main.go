package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/classpage/cmd/classpage/commands"
	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli commands.CLI
	global := &commands.Global{}
	kctx := kong.Parse(&cli,
		kong.Name("classpage"),
		kong.Description("Generate one Markdown page per class from a type model."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err := kctx.Run(); err != nil {
		cancel()
		os.Exit(errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).Report(os.Stderr, err))
	}
}
