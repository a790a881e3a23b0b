// Package frontmatter splits and decodes the YAML header of Markdown documents.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Style captures the newline shape of a document.
type Style struct {
	Newline string
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a YAML frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style, nil
	}

	frontmatterStart := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[frontmatterStart:], closeLine) {
		bodyStart := frontmatterStart + len(closeLine)
		return []byte{}, content[bodyStart:], true, style, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[frontmatterStart:], closeSeq)
	if idx < 0 {
		return nil, nil, false, style, ErrMissingClosingDelimiter
	}

	frontmatterEnd := frontmatterStart + idx + len(nl)
	bodyStart := frontmatterStart + idx + len(closeSeq)
	return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true, style, nil
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			newline = "\n"
			break
		}
	}

	return Style{Newline: newline}
}

// DocMeta holds the frontmatter keys that influence a doc's route.
type DocMeta struct {
	ID   string
	Slug string
}

// ReadDocMeta extracts id and slug from a document. Documents without
// frontmatter yield a zero DocMeta.
func ReadDocMeta(content []byte) (DocMeta, []byte, error) {
	fm, body, had, _, err := Split(content)
	if err != nil {
		return DocMeta{}, content, err
	}
	if !had {
		return DocMeta{}, body, nil
	}
	fields, err := ParseYAML(fm)
	if err != nil {
		return DocMeta{}, body, err
	}
	var meta DocMeta
	meta.ID, _ = fields["id"].(string)
	meta.Slug, _ = fields["slug"].(string)
	return meta, body, nil
}
