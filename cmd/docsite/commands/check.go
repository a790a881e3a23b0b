package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/linkcheck"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	SiteDir   string `name:"site-dir" help:"Site root containing docs/, src/pages and static/ (default: directory of --config)" type:"path"`
	StaticDir string `name:"static-dir" help:"Static assets directory, relative to the site root" default:"static"`
	PagesDir  string `name:"pages-dir" help:"Pages directory, relative to the site root" default:"src/pages"`

	OnBrokenLinks         string `name:"on-broken-links" help:"Override onBrokenLinks for this run (ignore, log, warn, throw)"`
	OnBrokenMarkdownLinks string `name:"on-broken-markdown-links" help:"Override onBrokenMarkdownLinks for this run (ignore, log, warn, throw)"`
}

func (c *CheckCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root.Config)
	if err != nil {
		return err
	}
	if err := overridePolicy(&cfg.OnBrokenLinks, c.OnBrokenLinks, "--on-broken-links"); err != nil {
		return err
	}
	if err := overridePolicy(&cfg.OnBrokenMarkdownLinks, c.OnBrokenMarkdownLinks, "--on-broken-markdown-links"); err != nil {
		return err
	}

	siteDir := c.SiteDir
	if siteDir == "" {
		siteDir = filepath.Dir(root.Config)
	}

	checker := linkcheck.NewChecker(siteDir,
		linkcheck.WithLogger(g.logger()),
		linkcheck.WithStaticDir(c.StaticDir),
		linkcheck.WithPagesDir(c.PagesDir),
	)
	report, err := checker.Check(ctx, cfg)
	if report != nil {
		if report.OK() {
			_, _ = fmt.Fprintf(g.stdout(), "checked %d links: no broken links\n", report.Checked)
		} else {
			_, _ = fmt.Fprintf(g.stdout(), "checked %d links: %d broken site links, %d broken markdown links\n",
				report.Checked, len(report.BrokenLinks), len(report.BrokenMarkdownLinks))
		}
	}
	return err
}

func overridePolicy(dst *site.LinkPolicy, raw, flag string) error {
	if raw == "" {
		return nil
	}
	p, err := site.ParseLinkPolicy(raw)
	if err != nil {
		return errors.ValidationError(err.Error()).WithContext("flag", flag).Build()
	}
	*dst = p
	return nil
}
