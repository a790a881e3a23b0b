package commands

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Format string `short:"f" help:"Output format: json, yaml or js (default: from --output extension, else json)"`
	Output string `short:"o" help:"Write to this file instead of stdout" type:"path"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	format, err := outputFormat(r.Format, r.Output)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(g, root.Config)
	if err != nil {
		return err
	}
	return writeOutput(g, cfg, format, r.Output)
}
