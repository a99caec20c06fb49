package ggcolor

import (
	"math"

	"github.com/gogpu/gputypes"
)

// GPUColor converts to a float color with channels in [0, 1], suitable as
// a render pass ClearValue or blend constant. The color is not premultiplied.
func (c *Color) GPUColor() gputypes.Color {
	return gputypes.Color{
		R: float64(c.R()) / ComponentMax,
		G: float64(c.G()) / ComponentMax,
		B: float64(c.B()) / ComponentMax,
		A: float64(c.A()) / ComponentMax,
	}
}

// FromGPUColor converts a float color back, clamping each channel to
// [0, 1] and rounding to the nearest byte. HDR values saturate.
func FromGPUColor(gc gputypes.Color) *Color {
	return FromRGBA(unitToByte(gc.R), unitToByte(gc.G), unitToByte(gc.B), unitToByte(gc.A))
}

// unitToByte clamps v to [0,1] and converts it to a byte with rounding.
func unitToByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return ComponentMax
	}
	return uint8(v*ComponentMax + 0.5)
}
