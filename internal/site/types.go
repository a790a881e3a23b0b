// Package site defines the typed configuration record handed to the
// Docusaurus static-site generator, together with its defaults, validation,
// loading and rendering.
//
// A Config has no runtime behaviour. It is produced once (Default or Load),
// resolved against the build clock (Resolve) and encoded for the generator
// (Encode).
package site

import "strings"

// Config is the top-level site configuration.
type Config struct {
	Title   string `json:"title" yaml:"title"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Favicon string `json:"favicon" yaml:"favicon"`

	// URL is the canonical origin (scheme and host, no path).
	URL string `json:"url" yaml:"url"`
	// BaseURL is the path the site is served under. It must start and end with "/".
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	OrganizationName string `json:"organizationName" yaml:"organizationName"`
	ProjectName      string `json:"projectName" yaml:"projectName"`

	OnBrokenLinks         LinkPolicy `json:"onBrokenLinks" yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks LinkPolicy `json:"onBrokenMarkdownLinks" yaml:"onBrokenMarkdownLinks"`

	I18n        I18n        `json:"i18n" yaml:"i18n"`
	Presets     []Preset    `json:"presets" yaml:"presets"`
	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig"`
}

// I18n lists the locales the site is built for.
type I18n struct {
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales"`
}

// Preset is a named bundle of generator behaviour. It is encoded as the
// two-element array [name, options].
type Preset struct {
	Name    string
	Options PresetOptions
}

// PresetOptions configures the classic preset.
type PresetOptions struct {
	Docs  *DocsOptions `json:"docs,omitempty" yaml:"docs,omitempty"`
	Blog  Blog         `json:"blog" yaml:"blog"`
	Theme *PresetTheme `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// DocsOptions configures the documentation section.
type DocsOptions struct {
	// Path is the docs directory relative to the site root. Defaults to "docs".
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// RouteBasePath is the URL segment docs are served under. Defaults to "docs".
	RouteBasePath string `json:"routeBasePath,omitempty" yaml:"routeBasePath,omitempty"`
	SidebarPath   string `json:"sidebarPath,omitempty" yaml:"sidebarPath,omitempty"`
	EditURL       string `json:"editUrl,omitempty" yaml:"editUrl,omitempty"`
}

// Blog toggles the blog section. A disabled blog is encoded as false.
type Blog struct {
	Enabled         bool
	Path            string
	ShowReadingTime bool
	EditURL         string
}

// PresetTheme carries theme options of the classic preset.
type PresetTheme struct {
	CustomCSS string `json:"customCss,omitempty" yaml:"customCss,omitempty"`
}

// ThemeConfig holds the options of the classic theme.
type ThemeConfig struct {
	Image     string          `json:"image,omitempty" yaml:"image,omitempty"`
	Navbar    Navbar          `json:"navbar" yaml:"navbar"`
	Footer    Footer          `json:"footer" yaml:"footer"`
	ColorMode ColorModeConfig `json:"colorMode" yaml:"colorMode"`
	Prism     Prism           `json:"prism" yaml:"prism"`
}

// Navbar is the top navigation bar. Items render in slice order.
type Navbar struct {
	Title string       `json:"title,omitempty" yaml:"title,omitempty"`
	Logo  *Logo        `json:"logo,omitempty" yaml:"logo,omitempty"`
	Items []NavbarItem `json:"items" yaml:"items"`
}

// Logo is the navbar image.
type Logo struct {
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Src string `json:"src" yaml:"src"`
}

// NavbarItem is one navbar entry. Depending on Type it targets a sidebar, a
// doc, an internal path (To) or an external/static link (Href).
type NavbarItem struct {
	Type      NavbarItemType `json:"type,omitempty" yaml:"type,omitempty"`
	SidebarID string         `json:"sidebarId,omitempty" yaml:"sidebarId,omitempty"`
	DocID     string         `json:"docId,omitempty" yaml:"docId,omitempty"`
	To        string         `json:"to,omitempty" yaml:"to,omitempty"`
	Href      string         `json:"href,omitempty" yaml:"href,omitempty"`
	Label     string         `json:"label" yaml:"label"`
	Position  Position       `json:"position" yaml:"position"`
}

// Footer is the page footer.
type Footer struct {
	Style FooterStyle       `json:"style" yaml:"style"`
	Links []FooterLinkGroup `json:"links" yaml:"links"`
	// Copyright may contain {{.Year}} and {{.Title}} template actions which
	// Resolve expands against the build clock.
	Copyright string `json:"copyright" yaml:"copyright"`
}

// FooterLinkGroup is one titled column of footer links.
type FooterLinkGroup struct {
	Title string       `json:"title" yaml:"title"`
	Items []FooterItem `json:"items" yaml:"items"`
}

// FooterItem links either to an internal path (To) or elsewhere (Href), never both.
type FooterItem struct {
	Label string `json:"label" yaml:"label"`
	To    string `json:"to,omitempty" yaml:"to,omitempty"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
}

// ColorModeConfig controls light/dark handling.
type ColorModeConfig struct {
	DefaultMode               ColorMode `json:"defaultMode" yaml:"defaultMode"`
	DisableSwitch             bool      `json:"disableSwitch" yaml:"disableSwitch"`
	RespectPrefersColorScheme bool      `json:"respectPrefersColorScheme" yaml:"respectPrefersColorScheme"`
}

// Prism configures syntax highlighting. Theme names refer to
// prism-react-renderer themes.
type Prism struct {
	Theme               string   `json:"theme" yaml:"theme"`
	DarkTheme           string   `json:"darkTheme" yaml:"darkTheme"`
	AdditionalLanguages []string `json:"additionalLanguages" yaml:"additionalLanguages"`
}

// Docs returns the docs options of the first preset that configures them.
func (c *Config) Docs() *DocsOptions {
	for i := range c.Presets {
		if c.Presets[i].Options.Docs != nil {
			return c.Presets[i].Options.Docs
		}
	}
	return nil
}

// DocsDir returns the docs directory relative to the site root.
func (d *DocsOptions) DocsDir() string {
	if d == nil || d.Path == "" {
		return "docs"
	}
	return d.Path
}

// Route returns the URL segment docs are served under, without slashes.
// A RouteBasePath of "/" serves docs at the site root and yields "".
func (d *DocsOptions) Route() string {
	if d == nil || d.RouteBasePath == "" {
		return "docs"
	}
	return strings.Trim(d.RouteBasePath, "/")
}
