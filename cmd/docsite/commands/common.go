package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Global is shared state bound into every command's Run method.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	// Now is the build clock; time.Now when nil.
	Now func() time.Time
}

func (g *Global) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Global) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file (YAML or JSON)" default:"docsite.yaml" env:"DOCSITE_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Write the default site configuration"`
	Validate ValidateCmd `cmd:"" help:"Validate the site configuration"`
	Render   RenderCmd   `cmd:"" help:"Render the resolved configuration as JSON, YAML or docusaurus.config.js"`
	Check    CheckCmd    `cmd:"" help:"Check navbar, footer and docs links against the site tree"`
	Watch    WatchCmd    `cmd:"" help:"Re-render the configuration whenever the source file changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads, resolves and validates the configuration at path.
// A missing file falls back to the built-in default site.
func loadConfig(g *Global, path string) (*site.Config, error) {
	now := g.now()

	var cfg *site.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		g.logger().Warn("Configuration file not found, using built-in defaults", logfields.ConfigPath(path))
		cfg = site.Default(now)
	} else {
		cfg, err = site.Load(path)
		if err != nil {
			return nil, err
		}
	}

	resolved, err := cfg.Resolve(now)
	if err != nil {
		return nil, err
	}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// outputFormat picks the explicit format, else the output file extension, else JSON.
func outputFormat(format, output string) (site.Format, error) {
	if format != "" {
		f, err := site.ParseFormat(format)
		if err != nil {
			return "", errors.ValidationError(err.Error()).WithContext("flag", "--format").Build()
		}
		return f, nil
	}
	if output != "" {
		return site.FormatFromPath(output), nil
	}
	return site.FormatJSON, nil
}

// writeOutput encodes cfg to output, or to stdout when output is empty.
// Files are written through a temporary sibling and renamed into place.
func writeOutput(g *Global, cfg *site.Config, format site.Format, output string) error {
	if output == "" {
		return site.Encode(g.stdout(), cfg, format)
	}

	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", dir).
			Build()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(output)+".*")
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output file").
			WithContext("path", output).
			Build()
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := site.Encode(tmp, cfg, format); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write output file").
			WithContext("path", output).
			Build()
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write output file").
			WithContext("path", output).
			Build()
	}
	g.logger().Info("Rendered configuration", logfields.Output(output), logfields.Format(string(format)))
	return nil
}
