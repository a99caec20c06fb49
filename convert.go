package ggcolor

import (
	"image/color"
)

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// channels, as the interface requires.
func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts to the standard non-premultiplied 8-bit color.
func (c *Color) NRGBA() color.NRGBA {
	//nolint:gosec // G115: channels are in [0,255]
	return color.NRGBA{
		R: uint8(c.R()),
		G: uint8(c.G()),
		B: uint8(c.B()),
		A: uint8(c.A()),
	}
}

// FromColor converts a standard color.Color to a Color.
// Premultiplied sources are unpremultiplied; fully transparent ones
// become transparent black.
func FromColor(c color.Color) *Color {
	if cc, ok := c.(*Color); ok {
		return cc.Clone()
	}
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, n.A)
}
