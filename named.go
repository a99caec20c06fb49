package ggcolor

import (
	"strings"

	"golang.org/x/image/colornames"

	icolor "github.com/gogpu/gg-color/internal/color"
)

// Named returns the SVG 1.1 color keyword name, matched case-insensitively
// and ignoring surrounding spaces. All keywords are opaque.
//
// Example:
//
//	c, _ := ggcolor.Named("CornflowerBlue")
//	c.Hex() // "#6495ed"
func Named(name string) (*Color, error) {
	v, ok := lookupNamed(name)
	if !ok {
		return nil, &ParseError{
			Notation: NotationNamed,
			Source:   name,
			Offset:   -1,
			Err:      ErrUnknownColorName,
		}
	}
	return FromValue(v), nil
}

// NamedColors returns the SVG 1.1 color keywords in alphabetical order.
func NamedColors() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}

func lookupNamed(name string) (uint32, bool) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, false
	}
	return icolor.Pack(icolor.ColorU8{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}), true
}
