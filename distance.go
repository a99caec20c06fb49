package ggcolor

import "math"

// DistanceTo returns the distance between c and other. See DistanceBetween.
func (c *Color) DistanceTo(other *Color) float64 {
	return DistanceBetween(c, other)
}

// DistanceBetween returns a low-cost perceptual distance between two colors,
// ignoring alpha. It weights the red and blue differences by the mean red
// level, which tracks human perception far better than plain Euclidean RGB
// at a fraction of the cost of a Lab conversion.
//
// The red and blue terms are truncated to integers before the >>8 scaling.
//
// Reference: https://www.compuphase.com/cmetric.htm
func DistanceBetween(c1, c2 *Color) float64 {
	rMean := float64(c1.R()+c2.R()) / 2
	r := float64(c1.R() - c2.R())
	g := c1.G() - c2.G()
	b := float64(c1.B() - c2.B())

	red := int64((512+rMean)*r*r) >> 8
	green := int64(4 * g * g)
	blue := int64((767-rMean)*b*b) >> 8

	return math.Sqrt(float64(red + green + blue))
}
