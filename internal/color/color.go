// Package color holds the packed 0xRRGGBBAA channel layout used by ggcolor.
package color

// Channel identifies one 8-bit field of a packed color value.
type Channel uint8

const (
	// Red occupies bits 24-31.
	Red Channel = iota
	// Green occupies bits 16-23.
	Green
	// Blue occupies bits 8-15.
	Blue
	// Alpha occupies bits 0-7.
	Alpha
)

// NumChannels is the number of channels in a packed value.
const NumChannels = 4

// Layout describes where a channel lives inside a packed value.
type Layout struct {
	Name   string
	Offset uint
	Mask   uint32
}

// Layouts is indexed by Channel. The masks cover all 32 bits exactly once.
var Layouts = [NumChannels]Layout{
	Red:   {Name: "r", Offset: 24, Mask: 0xff000000},
	Green: {Name: "g", Offset: 16, Mask: 0x00ff0000},
	Blue:  {Name: "b", Offset: 8, Mask: 0x0000ff00},
	Alpha: {Name: "a", Offset: 0, Mask: 0x000000ff},
}

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// Get extracts channel ch from the packed value v.
func Get(v uint32, ch Channel) uint8 {
	return uint8(v >> Layouts[ch].Offset)
}

// Set returns v with channel ch replaced by x. The other channels are untouched.
func Set(v uint32, ch Channel, x uint8) uint32 {
	l := Layouts[ch]
	return v&^l.Mask | (uint32(x)<<l.Offset)&l.Mask
}

// Unpack splits a packed value into its four channels.
func Unpack(v uint32) ColorU8 {
	return ColorU8{
		R: Get(v, Red),
		G: Get(v, Green),
		B: Get(v, Blue),
		A: Get(v, Alpha),
	}
}

// Pack joins four channels into a packed value.
func Pack(c ColorU8) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
