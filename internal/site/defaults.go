package site

import (
	"fmt"
	"time"
)

// CopyrightTemplate is the footer copyright of the default site. Resolve
// expands it against the build clock.
const CopyrightTemplate = "Copyright © {{.Year}} Nano. Built with Docusaurus."

// Default produces the configuration of the Nano documentation site with the
// copyright year taken from now.
func Default(now time.Time) *Config {
	cfg, err := Template().Resolve(now)
	if err != nil {
		// CopyrightTemplate is a constant; failing to render it is a programming error.
		panic(fmt.Sprintf("site: default copyright template: %v", err))
	}
	return cfg
}

// Template is Default with the copyright left as CopyrightTemplate. This is
// the form written by "docsite init".
func Template() *Config {
	return &Config{
		Title:   "Nano",
		Tagline: "Minimalist Atomic State Management for Flutter",
		Favicon: "img/favicon.ico",

		URL:     "https://superciccio.github.io",
		BaseURL: "/nano/",

		OrganizationName: "superciccio",
		ProjectName:      "nano",

		OnBrokenLinks:         LinkPolicyThrow,
		OnBrokenMarkdownLinks: LinkPolicyWarn,

		I18n: I18n{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},

		Presets: []Preset{{
			Name: "classic",
			Options: PresetOptions{
				Docs: &DocsOptions{
					SidebarPath: "./sidebars.js",
					EditURL:     "https://github.com/superciccio/nano/tree/main/website/",
				},
				Blog:  Blog{Enabled: false},
				Theme: &PresetTheme{CustomCSS: "./src/css/custom.css"},
			},
		}},

		ThemeConfig: ThemeConfig{
			Image: "img/docusaurus-social-card.jpg",
			Navbar: Navbar{
				Title: "Nano",
				Logo:  &Logo{Alt: "Nano Logo", Src: "img/logo.svg"},
				Items: []NavbarItem{
					{Type: NavbarItemDocSidebar, SidebarID: "tutorialSidebar", Position: PositionLeft, Label: "Guide"},
					{To: "/docs/examples", Label: "Examples", Position: PositionLeft},
					// Served from static/api, generated outside the docs build.
					{Href: "pathname:///api/index.html", Label: "API Reference", Position: PositionLeft},
					{Href: "https://github.com/superciccio/nano", Label: "GitHub", Position: PositionRight},
				},
			},
			Footer: Footer{
				Style: FooterStyleDark,
				Links: []FooterLinkGroup{
					{Title: "Docs", Items: []FooterItem{
						{Label: "Get Started", To: "/docs/intro"},
						{Label: "Examples", To: "/docs/examples"},
					}},
					{Title: "Community", Items: []FooterItem{
						{Label: "GitHub Issues", Href: "https://github.com/superciccio/nano/issues"},
					}},
					{Title: "More", Items: []FooterItem{
						{Label: "GitHub", Href: "https://github.com/superciccio/nano"},
						{Label: "Pub.dev", Href: "https://pub.dev/packages/nano"},
					}},
				},
				Copyright: CopyrightTemplate,
			},
			ColorMode: ColorModeConfig{
				DefaultMode:               ColorModeLight,
				DisableSwitch:             false,
				RespectPrefersColorScheme: true,
			},
			Prism: Prism{
				Theme:               "github",
				DarkTheme:           "dracula",
				AdditionalLanguages: []string{"dart"},
			},
		},
	}
}

// applyDefaults fills the fields the generator would otherwise default and
// canonicalises enum spellings.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "/"
	}
	c.OnBrokenLinks = normalizeEnum(linkPolicyNormalizer, c.OnBrokenLinks, LinkPolicyThrow)
	c.OnBrokenMarkdownLinks = normalizeEnum(linkPolicyNormalizer, c.OnBrokenMarkdownLinks, LinkPolicyWarn)

	if c.I18n.DefaultLocale == "" {
		c.I18n.DefaultLocale = "en"
	}
	if len(c.I18n.Locales) == 0 {
		c.I18n.Locales = []string{c.I18n.DefaultLocale}
	}

	tc := &c.ThemeConfig
	for i := range tc.Navbar.Items {
		item := &tc.Navbar.Items[i]
		item.Type = normalizeEnum(navbarItemTypeNormalizer, item.Type, NavbarItemLink)
		item.Position = normalizeEnum(positionNormalizer, item.Position, PositionLeft)
	}
	tc.Footer.Style = normalizeEnum(footerStyleNormalizer, tc.Footer.Style, FooterStyleLight)
	tc.ColorMode.DefaultMode = normalizeEnum(colorModeNormalizer, tc.ColorMode.DefaultMode, ColorModeLight)
	if tc.Prism.Theme == "" {
		tc.Prism.Theme = "github"
	}
	if tc.Prism.DarkTheme == "" {
		tc.Prism.DarkTheme = "dracula"
	}
}
