package site

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/foundation"
)

// LinkPolicy is the reaction to a broken link.
type LinkPolicy string

const (
	LinkPolicyIgnore LinkPolicy = "ignore"
	LinkPolicyLog    LinkPolicy = "log"
	LinkPolicyWarn   LinkPolicy = "warn"
	LinkPolicyThrow  LinkPolicy = "throw"
)

// Position places a navbar item on the left or right side.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// FooterStyle is the footer colour scheme.
type FooterStyle string

const (
	FooterStyleLight FooterStyle = "light"
	FooterStyleDark  FooterStyle = "dark"
)

// ColorMode is a light or dark colour mode.
type ColorMode string

const (
	ColorModeLight ColorMode = "light"
	ColorModeDark  ColorMode = "dark"
)

// NavbarItemType selects the navbar item variant. The zero value is a plain link.
type NavbarItemType string

const (
	NavbarItemLink       NavbarItemType = ""
	NavbarItemDocSidebar NavbarItemType = "docSidebar"
	NavbarItemDoc        NavbarItemType = "doc"
)

var (
	linkPolicyNormalizer = foundation.NewNormalizer(map[string]LinkPolicy{
		"ignore": LinkPolicyIgnore,
		"log":    LinkPolicyLog,
		"warn":   LinkPolicyWarn,
		"throw":  LinkPolicyThrow,
	})

	positionNormalizer = foundation.NewNormalizer(map[string]Position{
		"left":  PositionLeft,
		"right": PositionRight,
	})

	footerStyleNormalizer = foundation.NewNormalizer(map[string]FooterStyle{
		"light": FooterStyleLight,
		"dark":  FooterStyleDark,
	})

	colorModeNormalizer = foundation.NewNormalizer(map[string]ColorMode{
		"light": ColorModeLight,
		"dark":  ColorModeDark,
	})

	navbarItemTypeNormalizer = foundation.NewNormalizer(map[string]NavbarItemType{
		"":           NavbarItemLink,
		"default":    NavbarItemLink,
		"docSidebar": NavbarItemDocSidebar,
		"doc":        NavbarItemDoc,
	})

	linkPolicyValidator  = foundation.OneOf("", []LinkPolicy{LinkPolicyIgnore, LinkPolicyLog, LinkPolicyWarn, LinkPolicyThrow})
	positionValidator    = foundation.OneOf("", []Position{PositionLeft, PositionRight})
	footerStyleValidator = foundation.OneOf("", []FooterStyle{FooterStyleLight, FooterStyleDark})
	colorModeValidator   = foundation.OneOf("", []ColorMode{ColorModeLight, ColorModeDark})
	itemTypeValidator    = foundation.OneOf("", []NavbarItemType{NavbarItemLink, NavbarItemDocSidebar, NavbarItemDoc})
)

// ParseLinkPolicy parses a policy name case-insensitively.
func ParseLinkPolicy(s string) (LinkPolicy, error) {
	p, err := linkPolicyNormalizer.NormalizeWithError(s)
	if err != nil {
		return "", fmt.Errorf("invalid link policy %q (valid: %v)", s, linkPolicyNormalizer.Keys())
	}
	return p, nil
}

// Valid reports whether p is a recognised policy.
func (p LinkPolicy) Valid() bool { return linkPolicyValidator(p).Valid }

// Fatal reports whether broken links under this policy abort the build.
func (p LinkPolicy) Fatal() bool { return p == LinkPolicyThrow }

func (p Position) Valid() bool       { return positionValidator(p).Valid }
func (s FooterStyle) Valid() bool    { return footerStyleValidator(s).Valid }
func (m ColorMode) Valid() bool      { return colorModeValidator(m).Valid }
func (t NavbarItemType) Valid() bool { return itemTypeValidator(t).Valid }

// normalizeEnum canonicalises raw. Empty input yields def; unrecognised input
// is returned unchanged so validation can report it.
func normalizeEnum[T ~string](n *foundation.Normalizer[T], raw T, def T) T {
	if raw == "" {
		return def
	}
	v, err := n.NormalizeWithError(string(raw))
	if err != nil {
		return raw
	}
	return v
}
