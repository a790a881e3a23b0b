// Package markdown extracts links from Markdown documents using Goldmark.
package markdown

import (
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ExtractLinks parses a Markdown body and extracts link-like constructs.
// Links inside code spans and code blocks are not reported.
func ExtractLinks(body []byte, opts Options) ([]Link, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			if !opts.SkipImages {
				links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
			}
		case *gmast.Link:
			// Reference-style links arrive here already resolved.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	// Reference definitions live in the parse context, not in the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}

	return links, nil
}
