package color

// Quantization lookup tables.
//
// Dropping a channel to fewer bits and rescaling it back to [0,255] is
//
//	q = (v >> shift) * 255 / (255 >> shift)
//
// with integer truncation. The tables hold that result for every byte and
// every shift, 2KB in total, so a whole color is requantized with four
// array lookups.

// MaxShift is the largest supported shift. A shift of 8 would leave no bits.
const MaxShift = 7

var quantizeLUT [MaxShift + 1][256]uint8

func init() {
	for shift := uint(0); shift <= MaxShift; shift++ {
		for i := 0; i < 256; i++ {
			quantizeLUT[shift][i] = QuantizeSlow(uint8(i), shift)
		}
	}
}

// QuantizeFast requantizes v to 8-shift bits using the lookup table.
// shift must not exceed MaxShift.
//
// Example:
//
//	q := QuantizeFast(0xcd, 4) // 0xcc
func QuantizeFast(v uint8, shift uint) uint8 {
	return quantizeLUT[shift][v]
}

// QuantizeSlow computes the same result as QuantizeFast arithmetically.
// Used to build the tables and for verification.
func QuantizeSlow(v uint8, shift uint) uint8 {
	levels := 255 >> shift
	//nolint:gosec // G115: (v>>shift)*255/levels never exceeds 255
	return uint8(int(v>>shift) * 255 / levels)
}

// QuantizePacked requantizes all four channels of a packed value.
func QuantizePacked(v uint32, shift uint) uint32 {
	c := Unpack(v)
	return Pack(ColorU8{
		R: QuantizeFast(c.R, shift),
		G: QuantizeFast(c.G, shift),
		B: QuantizeFast(c.B, shift),
		A: QuantizeFast(c.A, shift),
	})
}
