package commands

import (
	"context"
	"time"

	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Format   string        `short:"f" help:"Output format: json, yaml or js (default: from --output extension)"`
	Output   string        `short:"o" required:"" help:"File to re-render on every change" type:"path"`
	Debounce time.Duration `help:"Quiet period before re-rendering" default:"500ms"`
}

func (w *WatchCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	format, err := outputFormat(w.Format, w.Output)
	if err != nil {
		return err
	}

	render := func(context.Context) error {
		cfg, err := loadConfig(g, root.Config)
		if err != nil {
			return err
		}
		return writeOutput(g, cfg, format, w.Output)
	}
	if err := render(ctx); err != nil {
		return err
	}

	watcher, err := watch.New(root.Config, render,
		watch.WithDebounce(w.Debounce),
		watch.WithLogger(g.logger()),
	)
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}
