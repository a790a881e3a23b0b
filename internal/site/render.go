package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Format is an encoding of the configuration.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatJS is a docusaurus.config.js ES module.
	FormatJS Format = "js"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "mjs", "javascript":
		return FormatJS, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: json, yaml, js)", s)
	}
}

// FormatFromPath infers a format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".js", ".mjs":
		return FormatJS
	default:
		return FormatYAML
	}
}

const jsHeader = `// @ts-check
// Generated by docsite. Do not edit.
import { themes as prismThemes } from 'prism-react-renderer';

/** @type {import('@docusaurus/types').Config} */
const config = `

const jsFooter = `;

export default config;
`

// prismRef marks a theme name that the JS encoder turns into an expression.
func prismRef(name string) string { return "@@prismThemes." + name + "@@" }

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg *Config, format Format) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = encodeJSON(cfg)
	case FormatYAML:
		out, err = encodeYAML(cfg)
	case FormatJS:
		out, err = encodeJS(cfg)
	default:
		return errors.InternalError("unsupported output format").
			WithContext("format", string(format)).
			Build()
	}
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode configuration").
			Fatal().
			WithContext("format", string(format)).
			Build()
	}
	if _, err := w.Write(out); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration").Build()
	}
	return nil
}

func encodeJSON(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeYAML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJS(cfg *Config) ([]byte, error) {
	for _, name := range []string{cfg.ThemeConfig.Prism.Theme, cfg.ThemeConfig.Prism.DarkTheme} {
		if !KnownPrismTheme(name) {
			return nil, fmt.Errorf("unknown prism theme %q", name)
		}
	}

	marked := cfg.Clone()
	marked.ThemeConfig.Prism.Theme = prismRef(cfg.ThemeConfig.Prism.Theme)
	marked.ThemeConfig.Prism.DarkTheme = prismRef(cfg.ThemeConfig.Prism.DarkTheme)

	body, err := encodeJSON(marked)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimRight(body, "\n")
	for _, name := range []string{cfg.ThemeConfig.Prism.Theme, cfg.ThemeConfig.Prism.DarkTheme} {
		body = bytes.ReplaceAll(body, []byte(`"`+prismRef(name)+`"`), []byte("prismThemes."+name))
	}

	var buf bytes.Buffer
	buf.WriteString(jsHeader)
	buf.Write(body)
	buf.WriteString(jsFooter)
	return buf.Bytes(), nil
}
