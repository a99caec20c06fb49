package ggcolor

import (
	"math"
	"strconv"

	icolor "github.com/gogpu/gg-color/internal/color"
)

// Component bounds. Values outside are rejected, never clamped.
const (
	ComponentMin = 0x00
	ComponentMax = 0xff
)

// Channel identifies one of the four 8-bit fields of a packed color.
type Channel uint8

// Channels in packed order, most significant first.
const (
	ChannelRed   = Channel(icolor.Red)
	ChannelGreen = Channel(icolor.Green)
	ChannelBlue  = Channel(icolor.Blue)
	ChannelAlpha = Channel(icolor.Alpha)
)

// Channels lists every channel in packed order.
var Channels = [icolor.NumChannels]Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha}

// String returns the short channel name: "r", "g", "b" or "a".
func (c Channel) String() string {
	if !c.valid() {
		return "Channel(" + strconv.Itoa(int(c)) + ")"
	}
	return icolor.Layouts[c].Name
}

// Offset returns the bit offset of the channel inside the packed value.
func (c Channel) Offset() uint {
	return icolor.Layouts[c].Offset
}

// Mask returns the bits the channel occupies inside the packed value.
func (c Channel) Mask() uint32 {
	return icolor.Layouts[c].Mask
}

func (c Channel) valid() bool {
	return c < icolor.NumChannels
}

// IsValidComponentValue reports whether v is an integer in [0, 255].
// NaN, infinities and fractional values are not valid.
func IsValidComponentValue(v float64) bool {
	return v >= ComponentMin && v <= ComponentMax && v == math.Trunc(v)
}

// ValidateComponent returns an error wrapping ErrInvalidComponent
// unless v is a valid component value.
func ValidateComponent(v float64) error {
	if !IsValidComponentValue(v) {
		return &ComponentError{Value: v}
	}
	return nil
}

// validateChannel gates every channel setter.
func validateChannel(ch Channel, v int) error {
	if v < ComponentMin || v > ComponentMax {
		return &ComponentError{Channel: ch.String(), Value: float64(v)}
	}
	return nil
}
