package site

import (
	"slices"
	"strings"
	"text/template"
	"time"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// copyrightData is the data available to the copyright template.
type copyrightData struct {
	Year             int
	Title            string
	OrganizationName string
	ProjectName      string
}

// Resolve returns a copy of c with the copyright template expanded for the
// build time now. A copyright without template actions is kept verbatim.
func (c *Config) Resolve(now time.Time) (*Config, error) {
	out := c.Clone()

	text := out.ThemeConfig.Footer.Copyright
	if !strings.Contains(text, "{{") {
		return out, nil
	}

	tmpl, err := template.New("copyright").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid copyright template").
			Fatal().
			WithContext("field", "themeConfig.footer.copyright").
			Build()
	}

	var b strings.Builder
	data := copyrightData{
		Year:             now.Year(),
		Title:            out.Title,
		OrganizationName: out.OrganizationName,
		ProjectName:      out.ProjectName,
	}
	if err := tmpl.Execute(&b, data); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to render copyright").
			Fatal().
			WithContext("field", "themeConfig.footer.copyright").
			Build()
	}
	out.ThemeConfig.Footer.Copyright = b.String()
	return out, nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.I18n.Locales = slices.Clone(c.I18n.Locales)

	out.Presets = make([]Preset, len(c.Presets))
	for i, p := range c.Presets {
		if p.Options.Docs != nil {
			docs := *p.Options.Docs
			p.Options.Docs = &docs
		}
		if p.Options.Theme != nil {
			theme := *p.Options.Theme
			p.Options.Theme = &theme
		}
		out.Presets[i] = p
	}
	if c.Presets == nil {
		out.Presets = nil
	}

	tc := &out.ThemeConfig
	if c.ThemeConfig.Navbar.Logo != nil {
		logo := *c.ThemeConfig.Navbar.Logo
		tc.Navbar.Logo = &logo
	}
	tc.Navbar.Items = slices.Clone(c.ThemeConfig.Navbar.Items)
	tc.Footer.Links = make([]FooterLinkGroup, len(c.ThemeConfig.Footer.Links))
	for i, g := range c.ThemeConfig.Footer.Links {
		g.Items = slices.Clone(g.Items)
		tc.Footer.Links[i] = g
	}
	if c.ThemeConfig.Footer.Links == nil {
		tc.Footer.Links = nil
	}
	tc.Prism.AdditionalLanguages = slices.Clone(c.ThemeConfig.Prism.AdditionalLanguages)
	return &out
}
