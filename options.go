package ggcolor

// ParseOption configures Parse.
// Use functional options to customize dispatch behavior.
//
// Example:
//
//	// Permissive default: unknown notations yield transparent black
//	c, err := ggcolor.Parse("#4286f4")
//
//	// Reject anything that is not hex or functional notation
//	c, err := ggcolor.Parse(input, ggcolor.WithStrict())
type ParseOption func(*parseOptions)

// parseOptions holds optional configuration for Parse.
type parseOptions struct {
	strict bool
	named  bool
	target *Color
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() parseOptions {
	return parseOptions{
		strict: false,
		named:  false,
		target: nil, // Will be allocated if nil
	}
}

// WithStrict makes Parse fail with ErrUnknownNotation when the source's
// leading character selects neither hex nor functional notation.
// Without it such sources yield the zero color and no error.
func WithStrict() ParseOption {
	return func(o *parseOptions) {
		o.strict = true
	}
}

// WithNamedColors lets Parse resolve SVG 1.1 color keywords such as
// "cornflowerblue" or "Red" before falling back to notation dispatch.
func WithNamedColors() ParseOption {
	return func(o *parseOptions) {
		o.named = true
	}
}

// WithTarget makes Parse write into c instead of allocating a new Color.
// Functional notation ORs its channels into the existing value.
func WithTarget(c *Color) ParseOption {
	return func(o *parseOptions) {
		o.target = c
	}
}
