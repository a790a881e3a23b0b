package site

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docsite/internal/foundation"
)

// Validate checks the configuration and returns a classified validation
// error listing every problem, or nil.
func (c *Config) Validate() error {
	return c.Check().ToError()
}

// Check runs all validations and returns the combined result.
func (c *Config) Check() foundation.ValidationResult {
	return configChecks.Validate(c)
}

var configChecks = foundation.NewValidatorChain[*Config]().
	Add(rule((*configValidator).validateIdentity)).
	Add(rule((*configValidator).validateLinkPolicies)).
	Add(rule((*configValidator).validateI18n)).
	Add(rule((*configValidator).validatePresets)).
	Add(rule((*configValidator).validateNavbar)).
	Add(rule((*configValidator).validateFooter)).
	Add(rule((*configValidator).validateCopyright)).
	Add(rule((*configValidator).validateColorMode)).
	Add(rule((*configValidator).validatePrism))

type configValidator struct {
	cfg    *Config
	result foundation.ValidationResult
}

// rule adapts a configValidator step to a foundation.Validator.
func rule(step func(*configValidator)) foundation.Validator[*Config] {
	return func(c *Config) foundation.ValidationResult {
		v := &configValidator{cfg: c, result: foundation.Valid()}
		step(v)
		return v.result
	}
}

func (v *configValidator) fail(field, code, format string, args ...any) {
	v.result.Add(field, code, fmt.Sprintf(format, args...))
}

func (v *configValidator) require(field, value string) bool {
	res := foundation.Required(field)(value)
	v.result = v.result.Combine(res)
	return res.Valid
}

func (v *configValidator) validateIdentity() {
	c := v.cfg
	v.require("title", c.Title)
	v.require("tagline", c.Tagline)
	v.require("favicon", c.Favicon)
	v.require("organizationName", c.OrganizationName)
	v.require("projectName", c.ProjectName)

	if v.require("url", c.URL) {
		u, err := url.Parse(c.URL)
		switch {
		case err != nil:
			v.fail("url", "format", "invalid URL: %v", err)
		case u.Scheme != "http" && u.Scheme != "https":
			v.fail("url", "format", "must be an absolute http(s) URL, got %q", c.URL)
		case u.Host == "":
			v.fail("url", "format", "must include a host, got %q", c.URL)
		case u.Path != "" && u.Path != "/":
			v.fail("url", "format", "must not contain a path (%q); put it in baseUrl", u.Path)
		}
	}

	if v.require("baseUrl", c.BaseURL) {
		if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
			v.fail("baseUrl", "format", "must start and end with '/', got %q", c.BaseURL)
		}
	}
}

func (v *configValidator) validateLinkPolicies() {
	if !v.cfg.OnBrokenLinks.Valid() {
		v.fail("onBrokenLinks", "one_of", "unknown policy %q", v.cfg.OnBrokenLinks)
	}
	if !v.cfg.OnBrokenMarkdownLinks.Valid() {
		v.fail("onBrokenMarkdownLinks", "one_of", "unknown policy %q", v.cfg.OnBrokenMarkdownLinks)
	}
}

func (v *configValidator) validateI18n() {
	i := v.cfg.I18n
	if len(i.Locales) == 0 {
		v.fail("i18n.locales", "required", "at least one locale is required")
	}

	seen := make(map[string]bool, len(i.Locales))
	for idx, loc := range i.Locales {
		field := fmt.Sprintf("i18n.locales[%d]", idx)
		if _, err := language.Parse(loc); err != nil {
			v.fail(field, "format", "%q is not a valid BCP 47 language tag", loc)
		}
		if seen[loc] {
			v.fail(field, "duplicate", "locale %q is listed more than once", loc)
		}
		seen[loc] = true
	}

	if v.require("i18n.defaultLocale", i.DefaultLocale) && !seen[i.DefaultLocale] {
		v.fail("i18n.defaultLocale", "membership", "%q is not one of the configured locales %v", i.DefaultLocale, i.Locales)
	}
}

func (v *configValidator) validatePresets() {
	if len(v.cfg.Presets) == 0 {
		v.fail("presets", "required", "at least one preset is required")
	}
	for idx, p := range v.cfg.Presets {
		field := fmt.Sprintf("presets[%d]", idx)
		v.require(field+".name", p.Name)
		if docs := p.Options.Docs; docs != nil && docs.EditURL != "" {
			if !isAbsoluteHTTP(docs.EditURL) {
				v.fail(field+".docs.editUrl", "format", "must be an absolute http(s) URL, got %q", docs.EditURL)
			}
		}
		if p.Options.Blog.EditURL != "" && !isAbsoluteHTTP(p.Options.Blog.EditURL) {
			v.fail(field+".blog.editUrl", "format", "must be an absolute http(s) URL, got %q", p.Options.Blog.EditURL)
		}
	}
}

func (v *configValidator) validateNavbar() {
	nav := v.cfg.ThemeConfig.Navbar
	if nav.Logo != nil {
		v.require("themeConfig.navbar.logo.src", nav.Logo.Src)
	}

	for idx, item := range nav.Items {
		field := fmt.Sprintf("themeConfig.navbar.items[%d]", idx)
		v.require(field+".label", item.Label)
		if !item.Position.Valid() {
			v.fail(field+".position", "one_of", "must be left or right, got %q", item.Position)
		}

		switch item.Type {
		case NavbarItemDocSidebar:
			v.require(field+".sidebarId", item.SidebarID)
			if item.To != "" || item.Href != "" {
				v.fail(field, "variant", "docSidebar items must not set to or href")
			}
		case NavbarItemDoc:
			v.require(field+".docId", item.DocID)
			if item.To != "" || item.Href != "" {
				v.fail(field, "variant", "doc items must not set to or href")
			}
		case NavbarItemLink:
			v.exactlyOneTarget(field, item.To, item.Href)
		default:
			v.fail(field+".type", "one_of", "unknown navbar item type %q", item.Type)
		}
	}
}

func (v *configValidator) validateFooter() {
	f := v.cfg.ThemeConfig.Footer
	if !f.Style.Valid() {
		v.fail("themeConfig.footer.style", "one_of", "must be light or dark, got %q", f.Style)
	}
	for gi, group := range f.Links {
		for ii, item := range group.Items {
			field := fmt.Sprintf("themeConfig.footer.links[%d].items[%d]", gi, ii)
			v.require(field+".label", item.Label)
			v.exactlyOneTarget(field, item.To, item.Href)
		}
	}
}

func (v *configValidator) validateColorMode() {
	if m := v.cfg.ThemeConfig.ColorMode.DefaultMode; !m.Valid() {
		v.fail("themeConfig.colorMode.defaultMode", "one_of", "must be light or dark, got %q", m)
	}
}

func (v *configValidator) validatePrism() {
	p := v.cfg.ThemeConfig.Prism
	if !KnownPrismTheme(p.Theme) {
		v.fail("themeConfig.prism.theme", "unknown", "unknown prism theme %q", p.Theme)
	}
	if !KnownPrismTheme(p.DarkTheme) {
		v.fail("themeConfig.prism.darkTheme", "unknown", "unknown prism theme %q", p.DarkTheme)
	}
	for idx, lang := range p.AdditionalLanguages {
		if !KnownLanguage(lang) {
			v.fail(fmt.Sprintf("themeConfig.prism.additionalLanguages[%d]", idx), "unknown", "unknown prism language %q", lang)
		}
	}
}

// A copyright that still holds template actions was never resolved.
func (v *configValidator) validateCopyright() {
	if strings.Contains(v.cfg.ThemeConfig.Footer.Copyright, "{{") {
		v.fail("themeConfig.footer.copyright", "unresolved", "copyright template has not been resolved against the build time")
	}
}

func (v *configValidator) exactlyOneTarget(field, to, href string) {
	switch {
	case to == "" && href == "":
		v.fail(field, "target", "one of to or href is required")
	case to != "" && href != "":
		v.fail(field, "target", "to and href are mutually exclusive")
	case to != "" && !strings.HasPrefix(to, "/"):
		v.fail(field+".to", "format", "internal paths must start with '/', got %q", to)
	}
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
