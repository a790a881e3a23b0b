package linkcheck

import (
	"path"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
)

// numberPrefix matches the ordering prefix Docusaurus strips from doc paths ("01-intro").
var numberPrefix = regexp.MustCompile(`^\d+\s*[-_.]+\s*`)

func stripNumberPrefix(segment string) string {
	if stripped := numberPrefix.ReplaceAllString(segment, ""); stripped != "" {
		return stripped
	}
	return segment
}

// docRoute returns the route of a doc below the docs base path, without
// leading or trailing slashes. rel is the slash-separated file path relative
// to the docs directory.
func docRoute(rel string, meta frontmatter.DocMeta) string {
	dir, file := path.Split(rel)
	dir = strings.Trim(dir, "/")

	var segments []string
	if dir != "" {
		for _, s := range strings.Split(dir, "/") {
			segments = append(segments, stripNumberPrefix(s))
		}
	}
	dir = strings.Join(segments, "/")

	if meta.Slug != "" {
		if strings.HasPrefix(meta.Slug, "/") {
			return strings.Trim(meta.Slug, "/")
		}
		return strings.Trim(path.Join(dir, meta.Slug), "/")
	}

	name := strings.TrimSuffix(file, path.Ext(file))
	if meta.ID != "" {
		return strings.Trim(path.Join(dir, meta.ID), "/")
	}

	lower := strings.ToLower(name)
	parent := ""
	if len(segments) > 0 {
		parent = segments[len(segments)-1]
	}
	if lower == "index" || lower == "readme" || stripNumberPrefix(name) == parent {
		return dir
	}
	return strings.Trim(path.Join(dir, stripNumberPrefix(name)), "/")
}

// sitePath normalises an internal link target to a slash-free route relative
// to the site base URL. Query strings and fragments are dropped.
func sitePath(target, baseURL string) string {
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	if root := strings.TrimSuffix(baseURL, "/"); root != "" {
		switch {
		case target == root:
			target = "/"
		case strings.HasPrefix(target, root+"/"):
			target = strings.TrimPrefix(target, root)
		}
	}
	return strings.Trim(path.Clean("/"+target), "/")
}
