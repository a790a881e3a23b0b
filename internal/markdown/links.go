package markdown

import (
	"net/url"
	"path"
	"strings"
)

// Options controls how Markdown is parsed for link analysis.
type Options struct {
	// SkipImages drops image destinations from the result.
	SkipImages bool
}

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// IsExternal reports whether the destination has a scheme (https:, mailto:,
// pathname:) or is protocol-relative.
func (l Link) IsExternal() bool {
	if strings.HasPrefix(l.Destination, "//") {
		return true
	}
	u, err := url.Parse(l.Destination)
	return err == nil && u.Scheme != ""
}

// IsAnchor reports whether the destination only targets a fragment on the same page.
func (l Link) IsAnchor() bool {
	return strings.HasPrefix(l.Destination, "#")
}

// FilePath returns the destination without query or fragment, unescaped.
func (l Link) FilePath() string {
	dest := l.Destination
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	if unescaped, err := url.PathUnescape(dest); err == nil {
		dest = unescaped
	}
	return dest
}

// IsMarkdownFile reports whether the destination points at a .md or .mdx file.
func (l Link) IsMarkdownFile() bool {
	switch strings.ToLower(path.Ext(l.FilePath())) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}
