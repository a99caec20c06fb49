// Package ggcolor provides packed 32-bit RGBA color values for Go.
//
// # Overview
//
// A [Color] holds one uint32 laid out as 0xRRGGBBAA. Channels are read and
// written through mask-and-shift accessors; nothing else is stored. Colors
// are parsed from and rendered to the two common textual notations:
//
//   - hexadecimal: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - functional: "rgb(r, g, b)", "rgba(r, g, b, a)"
//
// # Quick Start
//
//	import "github.com/gogpu/gg-color"
//
//	c, err := ggcolor.Parse("rgba(66, 134, 244, 0.4)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.Hex()          // "#4286f466"
//	c.RGBNotation()  // "rgb(66, 134, 244)"
//	c.Luminance()    // 128
//
//	_ = c.SetA(255)
//	c.Hex()          // "#4286f4"
//
// # Parsing
//
// [Parse] picks the notation from the first character: '#' selects the hex
// parser and 'r' the functional parser. Other sources yield transparent
// black unless [WithStrict] is given. [ParseHex] and [ParseFunctional] can
// be called directly and write into an existing color.
//
// Errors wrap one of the sentinel errors ([ErrInvalidHex],
// [ErrInvalidFunctional], [ErrInvalidComponent], ...) and are usually a
// [*ParseError] carrying the offending byte offset. A failed parse never
// modifies its target.
//
// # Derived Properties
//
// Luminance uses the ITU-R BT.709 coefficients. [Color.DistanceTo] is a
// cheap perceptual RGB metric. [Color.DropPrecisionTo] quantizes channels
// to fewer bits.
//
// # Interoperability
//
// *Color implements [image/color.Color]. [Color.GPUColor] converts to the
// float color used by gogpu render passes, and [Named] resolves SVG 1.1
// color keywords.
//
// # Concurrency
//
// A Color is a plain value with no internal locking. Share it between
// goroutines only with external synchronization. Package-level functions
// are safe for concurrent use.
package ggcolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
