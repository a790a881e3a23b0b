package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func fieldsOf(res foundation.ValidationResult) []string {
	fields := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestCheck_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"default locale not listed", func(c *Config) { c.I18n.DefaultLocale = "fr" }, "i18n.defaultLocale"},
		{"malformed locale", func(c *Config) { c.I18n.Locales = append(c.I18n.Locales, "not a locale") }, "i18n.locales[1]"},
		{"duplicate locale", func(c *Config) { c.I18n.Locales = []string{"en", "en"} }, "i18n.locales[1]"},
		{"no locales", func(c *Config) { c.I18n.Locales = nil }, "i18n.locales"},
		{"navbar position", func(c *Config) { c.ThemeConfig.Navbar.Items[1].Position = "center" }, "themeConfig.navbar.items[1].position"},
		{"navbar link without target", func(c *Config) { c.ThemeConfig.Navbar.Items[1].To = "" }, "themeConfig.navbar.items[1]"},
		{"navbar unknown type", func(c *Config) { c.ThemeConfig.Navbar.Items[1].Type = "dropdown" }, "themeConfig.navbar.items[1].type"},
		{"sidebar item without id", func(c *Config) { c.ThemeConfig.Navbar.Items[0].SidebarID = "" }, "themeConfig.navbar.items[0].sidebarId"},
		{"sidebar item with href", func(c *Config) { c.ThemeConfig.Navbar.Items[0].Href = "https://example.com" }, "themeConfig.navbar.items[0]"},
		{"doc item without id", func(c *Config) {
			c.ThemeConfig.Navbar.Items[1] = NavbarItem{Type: NavbarItemDoc, Label: "Intro", Position: PositionLeft}
		}, "themeConfig.navbar.items[1].docId"},
		{"footer item with both targets", func(c *Config) {
			c.ThemeConfig.Footer.Links[0].Items[0].Href = "https://example.com"
		}, "themeConfig.footer.links[0].items[0]"},
		{"footer item with no target", func(c *Config) {
			c.ThemeConfig.Footer.Links[1].Items[0].Href = ""
		}, "themeConfig.footer.links[1].items[0]"},
		{"footer relative to", func(c *Config) { c.ThemeConfig.Footer.Links[0].Items[0].To = "docs/intro" }, "themeConfig.footer.links[0].items[0].to"},
		{"footer style", func(c *Config) { c.ThemeConfig.Footer.Style = "neon" }, "themeConfig.footer.style"},
		{"baseUrl without leading slash", func(c *Config) { c.BaseURL = "nano/" }, "baseUrl"},
		{"baseUrl without trailing slash", func(c *Config) { c.BaseURL = "/nano" }, "baseUrl"},
		{"url with path", func(c *Config) { c.URL = "https://superciccio.github.io/nano" }, "url"},
		{"url without scheme", func(c *Config) { c.URL = "superciccio.github.io" }, "url"},
		{"unknown language", func(c *Config) {
			c.ThemeConfig.Prism.AdditionalLanguages = append(c.ThemeConfig.Prism.AdditionalLanguages, "brainfork")
		}, "themeConfig.prism.additionalLanguages[1]"},
		{"unknown prism theme", func(c *Config) { c.ThemeConfig.Prism.Theme = "solarized" }, "themeConfig.prism.theme"},
		{"unknown dark theme", func(c *Config) { c.ThemeConfig.Prism.DarkTheme = "" }, "themeConfig.prism.darkTheme"},
		{"color mode", func(c *Config) { c.ThemeConfig.ColorMode.DefaultMode = "sepia" }, "themeConfig.colorMode.defaultMode"},
		{"link policy", func(c *Config) { c.OnBrokenLinks = "explode" }, "onBrokenLinks"},
		{"markdown link policy", func(c *Config) { c.OnBrokenMarkdownLinks = "" }, "onBrokenMarkdownLinks"},
		{"missing title", func(c *Config) { c.Title = " " }, "title"},
		{"missing project", func(c *Config) { c.ProjectName = "" }, "projectName"},
		{"no presets", func(c *Config) { c.Presets = nil }, "presets"},
		{"preset without name", func(c *Config) { c.Presets[0].Name = "" }, "presets[0].name"},
		{"relative editUrl", func(c *Config) { c.Presets[0].Options.Docs.EditURL = "website/" }, "presets[0].docs.editUrl"},
		{"unresolved copyright", func(c *Config) { c.ThemeConfig.Footer.Copyright = CopyrightTemplate }, "themeConfig.footer.copyright"},
		{"logo without src", func(c *Config) { c.ThemeConfig.Navbar.Logo.Src = "" }, "themeConfig.navbar.logo.src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(buildTime)
			tt.mutate(cfg)

			res := cfg.Check()
			require.False(t, res.Valid)
			assert.Contains(t, fieldsOf(res), tt.field)
		})
	}
}

func TestCheck_AcceptsVariants(t *testing.T) {
	cfg := Default(buildTime)
	cfg.I18n = I18n{DefaultLocale: "pt-BR", Locales: []string{"en", "pt-BR", "zh-Hans"}}
	cfg.URL = "http://localhost:3000/"
	cfg.BaseURL = "/"
	cfg.OnBrokenLinks = LinkPolicyLog
	cfg.ThemeConfig.Footer.Style = FooterStyleLight
	cfg.ThemeConfig.Navbar.Logo = nil
	cfg.ThemeConfig.Navbar.Items = append(cfg.ThemeConfig.Navbar.Items,
		NavbarItem{Type: NavbarItemDoc, DocID: "intro", Label: "Intro", Position: PositionRight})
	cfg.ThemeConfig.Prism.AdditionalLanguages = []string{"dart", "bash", "yaml"}

	res := cfg.Check()
	assert.True(t, res.Valid, "%v", res.Errors)
}

func TestCheck_RequiresResolvedCopyright(t *testing.T) {
	tmpl := Template()
	assert.Equal(t, []string{"themeConfig.footer.copyright"}, fieldsOf(tmpl.Check()))

	resolved, err := tmpl.Resolve(buildTime)
	require.NoError(t, err)
	assert.True(t, resolved.Check().Valid)
	assert.Contains(t, resolved.ThemeConfig.Footer.Copyright, "2025")
}

func TestValidate_ReturnsClassifiedError(t *testing.T) {
	cfg := Default(buildTime)
	cfg.BaseURL = "/nano"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "baseUrl")

	cfg.URL = ""
	err = cfg.Validate()
	require.Error(t, err)
	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	problems, _ := classified.Context().Get("problems")
	assert.Len(t, problems, 2)
}

func TestLinkPolicy(t *testing.T) {
	p, err := ParseLinkPolicy(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, LinkPolicyWarn, p)
	assert.False(t, p.Fatal())
	assert.True(t, LinkPolicyThrow.Fatal())

	_, err = ParseLinkPolicy("explode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throw")
}
