// Package linkcheck applies the site's link-integrity policies to a local
// Docusaurus site tree.
//
// Two classes of links are checked. Site links are the internal targets of
// navbar and footer entries (including pathname:// static links); they fall
// under onBrokenLinks. Markdown links are relative links between doc files;
// they fall under onBrokenMarkdownLinks.
package linkcheck

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Class distinguishes the two policy-governed link classes.
type Class string

const (
	ClassSite     Class = "site"
	ClassMarkdown Class = "markdown"
)

const pathnameScheme = "pathname://"

// pageExtensions are the file types that produce a page under src/pages.
var pageExtensions = []string{".md", ".mdx", ".js", ".jsx", ".ts", ".tsx"}

// Finding is one broken link.
type Finding struct {
	Class  Class
	Source string // where the link was declared
	Link   string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s -> %s", f.Source, f.Link)
}

// Report lists everything a check found, regardless of policy.
type Report struct {
	Checked             int
	BrokenLinks         []Finding
	BrokenMarkdownLinks []Finding
}

// OK reports whether no broken links were found.
func (r *Report) OK() bool {
	return len(r.BrokenLinks) == 0 && len(r.BrokenMarkdownLinks) == 0
}

// Checker checks links of a site rooted at SiteDir.
type Checker struct {
	siteDir   string
	staticDir string
	pagesDir  string
	logger    *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for log and warn policies.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// WithStaticDir overrides the static directory (relative to the site dir).
func WithStaticDir(dir string) Option {
	return func(c *Checker) { c.staticDir = dir }
}

// WithPagesDir overrides the pages directory (relative to the site dir).
func WithPagesDir(dir string) Option {
	return func(c *Checker) { c.pagesDir = dir }
}

// NewChecker creates a checker for the site at siteDir.
func NewChecker(siteDir string, opts ...Option) *Checker {
	c := &Checker{
		siteDir:   siteDir,
		staticDir: "static",
		pagesDir:  filepath.Join("src", "pages"),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// docIndex holds the docs of one docs plugin instance.
type docIndex struct {
	dir    string          // absolute docs directory
	route  string          // docs base route, "" when served at the root
	routes map[string]bool // doc routes relative to route
	files  []string        // slash-separated paths relative to dir
	bodies map[string][]byte
}

// Check scans the site tree, collects broken links and applies cfg's
// policies. The report is returned even when a throw policy produces an error.
func (c *Checker) Check(ctx context.Context, cfg *site.Config) (*Report, error) {
	if info, err := os.Stat(c.siteDir); err != nil || !info.IsDir() {
		return nil, errors.FileSystemError("site directory not found").
			WithContext("path", c.siteDir).
			Build()
	}

	idx, err := c.indexDocs(ctx, cfg.Docs())
	if err != nil {
		return nil, err
	}

	report := &Report{}
	c.checkSiteLinks(cfg, idx, report)
	if idx != nil {
		if err := c.checkMarkdownLinks(ctx, idx, report); err != nil {
			return nil, err
		}
	}

	var fatal []string
	fatal = append(fatal, c.apply(cfg.OnBrokenLinks, ClassSite, report.BrokenLinks)...)
	fatal = append(fatal, c.apply(cfg.OnBrokenMarkdownLinks, ClassMarkdown, report.BrokenMarkdownLinks)...)
	if len(fatal) > 0 {
		return report, errors.LinksError(fmt.Sprintf("found %d broken link(s)", len(fatal))).
			WithContext("links", fatal).
			Build()
	}
	return report, nil
}

func (c *Checker) indexDocs(ctx context.Context, docs *site.DocsOptions) (*docIndex, error) {
	if docs == nil {
		return nil, nil
	}
	idx := &docIndex{
		dir:    filepath.Join(c.siteDir, docs.DocsDir()),
		route:  docs.Route(),
		routes: make(map[string]bool),
		bodies: make(map[string][]byte),
	}
	if info, err := os.Stat(idx.dir); err != nil || !info.IsDir() {
		return nil, errors.FileSystemError("docs directory not found").
			WithContext("path", idx.dir).
			Build()
	}

	err := filepath.WalkDir(idx.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != idx.dir && strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isDocFile(d.Name()) {
			return nil
		}

		raw, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(idx.dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		meta, body, err := frontmatter.ReadDocMeta(raw)
		if err != nil {
			c.logger.Warn("Ignoring unreadable frontmatter", logfields.Path(rel), logfields.Error(err))
		}
		idx.files = append(idx.files, rel)
		idx.bodies[rel] = body
		idx.routes[docRoute(rel, meta)] = true
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to scan docs").
			WithContext("path", idx.dir).
			Build()
	}
	c.logger.Debug("Indexed docs", logfields.Path(idx.dir), logfields.Count(len(idx.files)))
	return idx, nil
}

func isDocFile(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}

type siteLink struct {
	source string
	target string
}

func collectSiteLinks(cfg *site.Config) []siteLink {
	var links []siteLink
	add := func(source, to, href string) {
		switch {
		case to != "":
			links = append(links, siteLink{source: source, target: to})
		case strings.HasPrefix(href, pathnameScheme):
			links = append(links, siteLink{source: source, target: href})
		}
	}
	for _, item := range cfg.ThemeConfig.Navbar.Items {
		add("navbar: "+item.Label, item.To, item.Href)
	}
	for _, group := range cfg.ThemeConfig.Footer.Links {
		for _, item := range group.Items {
			add(fmt.Sprintf("footer: %s/%s", group.Title, item.Label), item.To, item.Href)
		}
	}
	return links
}

func (c *Checker) checkSiteLinks(cfg *site.Config, idx *docIndex, report *Report) {
	for _, l := range collectSiteLinks(cfg) {
		report.Checked++
		var ok bool
		if strings.HasPrefix(l.target, pathnameScheme) {
			ok = c.staticExists(sitePath(strings.TrimPrefix(l.target, pathnameScheme), cfg.BaseURL))
		} else {
			ok = c.routeExists(sitePath(l.target, cfg.BaseURL), idx)
		}
		if !ok {
			report.BrokenLinks = append(report.BrokenLinks, Finding{Class: ClassSite, Source: l.source, Link: l.target})
		}
	}
}

// routeExists reports whether route (slash-free, base URL removed) is served
// by a doc, a page or a static file.
func (c *Checker) routeExists(route string, idx *docIndex) bool {
	if idx != nil {
		switch {
		case idx.route == "":
			if idx.routes[route] {
				return true
			}
		case route == idx.route:
			if idx.routes[""] {
				return true
			}
		case strings.HasPrefix(route, idx.route+"/"):
			return idx.routes[strings.TrimPrefix(route, idx.route+"/")]
		}
	}
	return c.pageExists(route) || c.staticExists(route)
}

func (c *Checker) pageExists(route string) bool {
	base := filepath.Join(c.siteDir, c.pagesDir, filepath.FromSlash(route))
	candidates := make([]string, 0, 2*len(pageExtensions))
	for _, ext := range pageExtensions {
		if route != "" {
			candidates = append(candidates, base+ext)
		}
		candidates = append(candidates, filepath.Join(base, "index"+ext))
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return true
		}
	}
	return false
}

func (c *Checker) staticExists(route string) bool {
	if route == "" {
		return false
	}
	return fileExists(filepath.Join(c.siteDir, c.staticDir, filepath.FromSlash(route)))
}

func (c *Checker) checkMarkdownLinks(ctx context.Context, idx *docIndex, report *Report) error {
	known := make(map[string]bool, len(idx.files))
	for _, f := range idx.files {
		known[f] = true
	}

	for _, file := range idx.files {
		if err := ctx.Err(); err != nil {
			return err
		}
		links, err := markdown.ExtractLinks(idx.bodies[file], markdown.Options{SkipImages: true})
		if err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to parse markdown").
				WithContext("path", file).
				Build()
		}

		seen := make(map[string]bool, len(links))
		for _, l := range links {
			if l.IsExternal() || l.IsAnchor() || !l.IsMarkdownFile() || seen[l.Destination] {
				continue
			}
			seen[l.Destination] = true
			report.Checked++

			if !known[resolveDocLink(file, l.FilePath())] {
				report.BrokenMarkdownLinks = append(report.BrokenMarkdownLinks, Finding{
					Class:  ClassMarkdown,
					Source: path.Join(filepath.ToSlash(filepath.Base(idx.dir)), file),
					Link:   l.Destination,
				})
			}
		}
	}
	return nil
}

// resolveDocLink resolves a link destination found in from against the docs
// root. Absolute destinations are taken relative to the docs root.
func resolveDocLink(from, dest string) string {
	if strings.HasPrefix(dest, "/") {
		return strings.TrimPrefix(path.Clean(dest), "/")
	}
	return strings.TrimPrefix(path.Clean(path.Join(path.Dir(from), dest)), "/")
}

// apply runs policy over findings and returns the descriptions of findings
// that must fail the check.
func (c *Checker) apply(policy site.LinkPolicy, class Class, findings []Finding) []string {
	if len(findings) == 0 || policy == site.LinkPolicyIgnore {
		return nil
	}

	var fatal []string
	for _, f := range findings {
		attrs := []any{logfields.Source(f.Source), logfields.Link(f.Link), logfields.Policy(string(policy))}
		switch policy {
		case site.LinkPolicyLog:
			c.logger.Info(fmt.Sprintf("Broken %s link", class), attrs...)
		case site.LinkPolicyWarn:
			c.logger.Warn(fmt.Sprintf("Broken %s link", class), attrs...)
		default:
			fatal = append(fatal, f.String())
		}
	}
	return fatal
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
