package ggcolor

import (
	"strconv"

	icolor "github.com/gogpu/gg-color/internal/color"
)

// Precision is the number of low bits DropPrecisionTo discards per channel.
type Precision uint8

const (
	// Precision32 keeps all 8 bits per channel: rrrrrrrr-gggggggg-bbbbbbbb-aaaaaaaa.
	Precision32 Precision = 0
	// Precision24 keeps 6 bits per channel: rrrrrr-gggggg-bbbbbb-aaaaaa.
	Precision24 Precision = 2
	// Precision16 keeps 4 bits per channel: rrrr-gggg-bbbb-aaaa.
	Precision16 Precision = 4
	// Precision8 keeps 2 bits per channel: rr-gg-bb-aa.
	Precision8 Precision = 6
)

// Bits returns the number of bits kept per channel.
func (p Precision) Bits() int {
	return 8 - int(p)
}

func (p Precision) String() string {
	return "Precision" + strconv.Itoa(4*p.Bits())
}

// DropPrecisionTo quantizes every channel, alpha included, to p.Bits()
// bits and rescales it back to [0, 255]:
//
//	c = (c >> p) * 255 / (255 >> p)
//
// The result is truncated, so repeated drops are stable and 0 and 255 are
// preserved. Any shift from 0 to 7 is accepted; larger ones fail with
// ErrInvalidPrecision and leave the color unchanged.
//
// Example:
//
//	c := ggcolor.MustParse("#cd7f32")
//	_ = c.DropPrecisionTo(ggcolor.Precision16)
//	c.Hex() // "#cc7733"
func (c *Color) DropPrecisionTo(p Precision) error {
	if p > icolor.MaxShift {
		return ErrInvalidPrecision
	}
	c.value = icolor.QuantizePacked(c.value, uint(p))
	return nil
}
