package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/cmd/docsite/commands"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/version"
)

func main() {
	cli := &commands.CLI{}
	kctx := kong.Parse(cli,
		kong.Name("docsite"),
		kong.Description("Typed Docusaurus site configuration: validate, render and check links."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	kctx.BindTo(ctx, (*context.Context)(nil))

	err := kctx.Run(&commands.Global{Logger: slog.Default()})
	stop()
	if err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
