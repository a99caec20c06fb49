package ggcolor

import (
	"errors"
	"strconv"
)

// Sentinel errors for ggcolor.
var (
	// ErrInvalidComponent is returned when a channel value is not an
	// integer in [0, 255].
	ErrInvalidComponent = errors.New("ggcolor: not a valid component value")

	// ErrInvalidHex is returned when a source is not a #rgb, #rgba,
	// #rrggbb or #rrggbbaa string.
	ErrInvalidHex = errors.New("ggcolor: not a valid hexadecimal")

	// ErrInvalidFunctional is returned when a source is not a well-formed
	// rgb() or rgba() string.
	ErrInvalidFunctional = errors.New("ggcolor: not a valid rgb value")

	// ErrUnknownNotation is returned in strict mode when the leading
	// character selects no notation.
	ErrUnknownNotation = errors.New("ggcolor: unknown color notation")

	// ErrUnknownColorName is returned when a name is not an SVG 1.1 color keyword.
	ErrUnknownColorName = errors.New("ggcolor: unknown color name")

	// ErrInvalidPrecision is returned when a precision would drop every bit.
	ErrInvalidPrecision = errors.New("ggcolor: invalid precision")
)

// ParseError describes where parsing a color source failed.
type ParseError struct {
	Notation Notation
	Source   string
	Offset   int // byte offset of the offending character, -1 if not positional
	Reason   string
	Err      error // one of the sentinel errors above
}

func (e *ParseError) Error() string {
	msg := e.Err.Error() + " " + strconv.Quote(e.Source)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Offset >= 0 {
		msg += " at offset " + strconv.Itoa(e.Offset)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ComponentError reports a rejected channel value.
type ComponentError struct {
	Channel string // "r", "g", "b", "a" or empty when validated standalone
	Value   float64
}

func (e *ComponentError) Error() string {
	v := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if e.Channel == "" {
		return ErrInvalidComponent.Error() + ": " + v
	}
	return ErrInvalidComponent.Error() + ": " + e.Channel + "=" + v
}

func (e *ComponentError) Unwrap() error {
	return ErrInvalidComponent
}
