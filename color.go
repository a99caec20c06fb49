package ggcolor

import (
	icolor "github.com/gogpu/gg-color/internal/color"
)

// Color is an RGBA color packed into a single 32-bit value laid out as
// 0xRRGGBBAA. The packed value is the only state; channels are views.
//
// The zero value is fully transparent black.
type Color struct {
	value uint32
}

// Notation identifies a textual color form.
type Notation uint8

const (
	// NotationNone means the source selected no notation.
	NotationNone Notation = iota
	// NotationHex is #rgb, #rgba, #rrggbb or #rrggbbaa.
	NotationHex
	// NotationFunctional is rgb(r, g, b) or rgba(r, g, b, a).
	NotationFunctional
	// NotationNamed is an SVG 1.1 color keyword.
	NotationNamed
)

// String returns the notation name.
func (n Notation) String() string {
	switch n {
	case NotationHex:
		return "hex"
	case NotationFunctional:
		return "functional"
	case NotationNamed:
		return "named"
	default:
		return "none"
	}
}

// notationOf selects the parser from the leading character only.
func notationOf(source string) Notation {
	if source == "" {
		return NotationNone
	}
	switch source[0] {
	case '#':
		return NotationHex
	case 'r', 'R':
		return NotationFunctional
	default:
		return NotationNone
	}
}

// New returns a fully transparent black color.
func New() *Color {
	return &Color{}
}

// FromValue creates a color from a packed 0xRRGGBBAA value.
func FromValue(v uint32) *Color {
	return &Color{value: v}
}

// FromRGBA creates a color from four channel bytes.
func FromRGBA(r, g, b, a uint8) *Color {
	return &Color{value: icolor.Pack(icolor.ColorU8{R: r, G: g, B: b, A: a})}
}

// Parse creates a color from a source string. The leading character picks
// the notation: '#' for hex, 'r' for functional. Any other leading
// character yields transparent black and no error unless WithStrict is
// given.
//
// Example:
//
//	c, err := ggcolor.Parse("rgba(230, 251, 225, 0.4)")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Hex()) // #e6fbe166
func Parse(source string, opts ...ParseOption) (*Color, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	target := o.target
	if target == nil {
		target = New()
	}

	if o.named {
		if v, ok := lookupNamed(source); ok {
			Logger().Debug("ggcolor: parse", "source", source, "notation", NotationNamed)
			target.value = v
			return target, nil
		}
	}

	n := notationOf(source)
	Logger().Debug("ggcolor: parse", "source", source, "notation", n)

	var err error
	switch n {
	case NotationHex:
		_, err = ParseHex(source, target)
	case NotationFunctional:
		_, err = ParseFunctional(source, target)
	default:
		if o.strict {
			err = &ParseError{
				Notation: NotationNone,
				Source:   source,
				Offset:   0,
				Reason:   "leading character selects no notation",
				Err:      ErrUnknownNotation,
			}
		}
	}
	if err != nil {
		Logger().Debug("ggcolor: parse failed", "source", source, "err", err)
		return nil, err
	}
	return target, nil
}

// MustParse is like Parse but panics if the source cannot be parsed.
// It simplifies initialization of package-level colors.
func MustParse(source string, opts ...ParseOption) *Color {
	c, err := Parse(source, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the packed 0xRRGGBBAA value.
func (c *Color) Value() uint32 {
	return c.value
}

// SetValue replaces the packed value. No validation is needed: every
// uint32 decodes to four valid channels.
func (c *Color) SetValue(v uint32) {
	c.value = v
}

// Get returns the value of channel ch in [0, 255].
// ch must be one of the Channel constants.
func (c *Color) Get(ch Channel) int {
	return int(icolor.Get(c.value, icolor.Channel(ch)))
}

// Set replaces channel ch with v, leaving the other channels untouched.
// It returns an error wrapping ErrInvalidComponent, and leaves the color
// unchanged, if v is outside [0, 255].
func (c *Color) Set(ch Channel, v int) error {
	if err := validateChannel(ch, v); err != nil {
		return err
	}
	//nolint:gosec // G115: v validated to [0,255]
	c.value = icolor.Set(c.value, icolor.Channel(ch), uint8(v))
	return nil
}

// R returns the red channel.
func (c *Color) R() int { return c.Get(ChannelRed) }

// G returns the green channel.
func (c *Color) G() int { return c.Get(ChannelGreen) }

// B returns the blue channel.
func (c *Color) B() int { return c.Get(ChannelBlue) }

// A returns the alpha channel. 255 is fully opaque.
func (c *Color) A() int { return c.Get(ChannelAlpha) }

// SetR replaces the red channel.
func (c *Color) SetR(v int) error { return c.Set(ChannelRed, v) }

// SetG replaces the green channel.
func (c *Color) SetG(v int) error { return c.Set(ChannelGreen, v) }

// SetB replaces the blue channel.
func (c *Color) SetB(v int) error { return c.Set(ChannelBlue, v) }

// SetA replaces the alpha channel.
func (c *Color) SetA(v int) error { return c.Set(ChannelAlpha, v) }

// Clone returns an independent copy of c.
func (c *Color) Clone() *Color {
	return &Color{value: c.value}
}

// Equal reports whether both colors have the same packed value.
func (c *Color) Equal(other *Color) bool {
	return c.value == other.value
}

// String returns the Hex form, so colors print naturally with %v.
func (c *Color) String() string {
	return c.Hex()
}
