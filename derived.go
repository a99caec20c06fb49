package ggcolor

import (
	"math"
	"strconv"
)

// ITU-R BT.709 luma coefficients.
const (
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722
)

// luminanceMidpoint separates dark from light colors. A color exactly on
// it is neither.
const luminanceMidpoint = 128

// Luminance returns the BT.709 luma of the color, rounded up, in [0, 255].
// Alpha is ignored.
func (c *Color) Luminance() int {
	// Explicit conversions keep each product rounded on its own; a fused
	// multiply-add would push white to 256.
	l := float64(lumaRed*float64(c.R())) +
		float64(lumaGreen*float64(c.G())) +
		float64(lumaBlue*float64(c.B()))
	return int(math.Ceil(l))
}

// IsDark reports whether the luminance is below 128.
func (c *Color) IsDark() bool {
	return c.Luminance() < luminanceMidpoint
}

// IsLight reports whether the luminance is above 128.
func (c *Color) IsLight() bool {
	return c.Luminance() > luminanceMidpoint
}

// Hex8 returns "#rrggbbaa" in lowercase.
func (c *Color) Hex8() string {
	const digits = "0123456789abcdef"
	var b [9]byte
	b[0] = '#'
	v := c.value
	for i := 8; i > 0; i-- {
		b[i] = digits[v&0xf]
		v >>= 4
	}
	return string(b[:])
}

// Hex6 returns "#rrggbb" in lowercase, dropping alpha.
func (c *Color) Hex6() string {
	return c.Hex8()[:7]
}

// Hex returns Hex8 for translucent colors and Hex6 for opaque ones.
func (c *Color) Hex() string {
	if c.A() < ComponentMax {
		return c.Hex8()
	}
	return c.Hex6()
}

// RGBNotation returns "rgb(r, g, b)".
func (c *Color) RGBNotation() string {
	b := make([]byte, 0, len("rgb(255, 255, 255)"))
	b = append(b, "rgb("...)
	b = c.appendRGB(b)
	b = append(b, ')')
	return string(b)
}

// RGBANotation returns "rgba(r, g, b, a)" with alpha as a fraction of 255
// in its shortest form, e.g. "rgba(66, 134, 244, 0.4)".
func (c *Color) RGBANotation() string {
	b := make([]byte, 0, len("rgba(255, 255, 255, 0.00392156862745098)"))
	b = append(b, "rgba("...)
	b = c.appendRGB(b)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, float64(c.A())/ComponentMax, 'f', -1, 64)
	b = append(b, ')')
	return string(b)
}

func (c *Color) appendRGB(b []byte) []byte {
	b = strconv.AppendInt(b, int64(c.R()), 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, int64(c.G()), 10)
	b = append(b, ", "...)
	return strconv.AppendInt(b, int64(c.B()), 10)
}
