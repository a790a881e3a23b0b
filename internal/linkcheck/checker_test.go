package linkcheck

import (
	"bytes"
	"context"
	stdErrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

var buildTime = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

// nanoSite lays out a site tree matching the default configuration.
func nanoSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "docs/intro.md", "---\ntitle: Intro\n---\n# Intro\n\nSee [examples](./examples.md) and [pub](https://pub.dev/packages/nano).\n\n[Top](#intro)\n")
	writeFile(t, root, "docs/examples.md", "# Examples\n\nBack to [intro](intro.md#install).\n")
	writeFile(t, root, "static/api/index.html", "<html></html>")
	return root
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestCheck_DefaultSiteIsClean(t *testing.T) {
	logger, _ := captureLogger()
	report, err := NewChecker(nanoSite(t), WithLogger(logger)).Check(context.Background(), site.Default(buildTime))
	require.NoError(t, err)
	assert.True(t, report.OK(), "%+v", report)
	// navbar: Examples + API Reference; footer: Get Started + Examples; markdown: 2 relative doc links.
	assert.Equal(t, 6, report.Checked)
}

func TestCheck_BrokenSiteLinksThrow(t *testing.T) {
	root := nanoSite(t)
	require.NoError(t, os.Remove(filepath.Join(root, "static", "api", "index.html")))

	logger, _ := captureLogger()
	report, err := NewChecker(root, WithLogger(logger)).Check(context.Background(), site.Default(buildTime))
	require.Error(t, err)
	require.NotNil(t, report)

	assert.True(t, errors.HasCategory(err, errors.CategoryLinks))
	require.Len(t, report.BrokenLinks, 1)
	assert.Equal(t, Finding{Class: ClassSite, Source: "navbar: API Reference", Link: "pathname:///api/index.html"}, report.BrokenLinks[0])

	classified, _ := errors.AsClassified(err)
	links, _ := classified.Context().Get("links")
	assert.Equal(t, []string{"navbar: API Reference -> pathname:///api/index.html"}, links)
}

func TestCheck_BrokenMarkdownLinksWarn(t *testing.T) {
	root := nanoSite(t)
	writeFile(t, root, "docs/guide/atoms.md", "# Atoms\n\n[Missing](../missing.md) and [ok](../intro.md).\n")

	logger, logs := captureLogger()
	report, err := NewChecker(root, WithLogger(logger)).Check(context.Background(), site.Default(buildTime))
	require.NoError(t, err, "warn policy must not fail the check")

	require.Len(t, report.BrokenMarkdownLinks, 1)
	assert.Equal(t, "docs/guide/atoms.md", report.BrokenMarkdownLinks[0].Source)
	assert.Equal(t, "../missing.md", report.BrokenMarkdownLinks[0].Link)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "Broken markdown link")
}

func TestCheck_PolicyMatrix(t *testing.T) {
	tests := []struct {
		policy  site.LinkPolicy
		fails   bool
		logLine string
	}{
		{site.LinkPolicyIgnore, false, ""},
		{site.LinkPolicyLog, false, "level=INFO msg=\"Broken markdown link\""},
		{site.LinkPolicyWarn, false, "level=WARN msg=\"Broken markdown link\""},
		{site.LinkPolicyThrow, true, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			root := nanoSite(t)
			writeFile(t, root, "docs/broken.md", "[gone](./gone.md)\n")

			cfg := site.Default(buildTime)
			cfg.OnBrokenMarkdownLinks = tt.policy

			logger, logs := captureLogger()
			report, err := NewChecker(root, WithLogger(logger)).Check(context.Background(), cfg)
			require.Len(t, report.BrokenMarkdownLinks, 1)

			if tt.fails {
				require.Error(t, err)
				assert.True(t, errors.HasCategory(err, errors.CategoryLinks))
			} else {
				require.NoError(t, err)
			}
			if tt.logLine != "" {
				assert.Contains(t, logs.String(), tt.logLine)
			} else {
				assert.NotContains(t, logs.String(), "Broken markdown link")
			}
		})
	}
}

func TestCheck_ResolvesPagesSlugsAndBaseURL(t *testing.T) {
	root := nanoSite(t)
	writeFile(t, root, "src/pages/index.tsx", "export default function Home() {}")
	writeFile(t, root, "src/pages/showcase.md", "# Showcase\n")
	writeFile(t, root, "docs/01-guide/02-setup.md", "---\nslug: /start\n---\n# Setup\n")
	writeFile(t, root, "docs/_partials/snippet.md", "[nowhere](./nowhere.md)\n")

	cfg := site.Default(buildTime)
	cfg.ThemeConfig.Footer.Links[0].Items = append(cfg.ThemeConfig.Footer.Links[0].Items,
		site.FooterItem{Label: "Home", To: "/"},
		site.FooterItem{Label: "Showcase", To: "/showcase"},
		site.FooterItem{Label: "Start", To: "/nano/docs/start"},
		site.FooterItem{Label: "Blog", To: "/blog"},
	)

	logger, _ := captureLogger()
	report, err := NewChecker(root, WithLogger(logger)).Check(context.Background(), cfg)
	require.Error(t, err)
	require.Len(t, report.BrokenLinks, 1)
	assert.Equal(t, "/blog", report.BrokenLinks[0].Link)
	assert.Empty(t, report.BrokenMarkdownLinks, "underscore-prefixed partials are not docs")
}

func TestCheck_CustomDocsLocation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "guides/welcome.md", "# Welcome\n")
	writeFile(t, root, "assets/api/index.html", "<html></html>")

	cfg := site.Default(buildTime)
	docs := cfg.Docs()
	docs.Path = "guides"
	docs.RouteBasePath = "/"
	cfg.ThemeConfig.Navbar.Items[1].To = "/welcome"
	cfg.ThemeConfig.Footer.Links[0].Items = []site.FooterItem{{Label: "Welcome", To: "/welcome"}}

	logger, _ := captureLogger()
	report, err := NewChecker(root, WithLogger(logger), WithStaticDir("assets")).Check(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestCheck_Errors(t *testing.T) {
	cfg := site.Default(buildTime)

	t.Run("missing site dir", func(t *testing.T) {
		_, err := NewChecker(filepath.Join(t.TempDir(), "nope")).Check(context.Background(), cfg)
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
	})

	t.Run("missing docs dir", func(t *testing.T) {
		_, err := NewChecker(t.TempDir()).Check(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "docs directory not found")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewChecker(nanoSite(t)).Check(ctx, cfg)
		require.Error(t, err)
		assert.True(t, stdErrors.Is(err, context.Canceled))
	})
}

func TestCheck_WithoutDocsPreset(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/pages/index.md", "# Home\n")

	cfg := site.Default(buildTime)
	cfg.Presets[0].Options.Docs = nil
	cfg.ThemeConfig.Navbar.Items = []site.NavbarItem{{To: "/", Label: "Home", Position: site.PositionLeft}}
	cfg.ThemeConfig.Footer.Links = nil

	report, err := NewChecker(root).Check(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
}
