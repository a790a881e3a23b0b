package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	return RunInit(g, root.Config, i.Force)
}

// RunInit writes the default site, with its copyright left as a template,
// to configPath in the format implied by its extension.
func RunInit(g *Global, configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	format := site.FormatFromPath(configPath)
	if format == site.FormatJS {
		return errors.ConfigError("docusaurus.config.js is an output format; use a .yaml or .json config path").
			WithContext("path", configPath).
			Build()
	}

	var buf bytes.Buffer
	if err := site.Encode(&buf, site.Template(), format); err != nil {
		return err
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create configuration directory").
				WithContext("path", dir).
				Build()
		}
	}
	// #nosec G306 -- configuration is not secret
	if err := os.WriteFile(configPath, buf.Bytes(), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration").
			WithContext("path", configPath).
			Build()
	}

	g.logger().Info("Initialized configuration", logfields.ConfigPath(configPath), logfields.Format(string(format)))
	_, _ = fmt.Fprintf(g.stdout(), "Wrote %s\n", configPath)
	return nil
}
