package ggcolor

import (
	"strconv"
)

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" into target
// and returns it. A nil target allocates a new Color.
//
// Short forms double every digit, so "#fcf" is "#ffccff". Sources without
// alpha are fully opaque. The target is assigned only once the whole
// source is known to be valid.
func ParseHex(source string, target *Color) (*Color, error) {
	if source == "" || source[0] != '#' {
		return nil, hexError(source, 0, "missing leading '#'")
	}

	raw := source[1:]
	switch len(raw) {
	case 3, 4:
		raw = expandShortHex(raw)
	case 6, 8:
	default:
		return nil, hexError(source, -1, "want 3, 4, 6 or 8 digits, got "+strconv.Itoa(len(raw)))
	}

	for i := 1; i < len(source); i++ {
		if !isHexDigit(source[i]) {
			return nil, hexError(source, i, "not a hexadecimal digit")
		}
	}

	if len(raw) == 6 {
		raw += "ff"
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return nil, &ParseError{Notation: NotationHex, Source: source, Offset: -1, Err: ErrInvalidHex}
	}

	if target == nil {
		target = New()
	}
	target.value = uint32(v)
	return target, nil
}

// expandShortHex doubles every digit: "fcfc" -> "ffccffcc".
func expandShortHex(s string) string {
	b := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		b = append(b, s[i], s[i])
	}
	return string(b)
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}

func hexError(source string, offset int, reason string) *ParseError {
	return &ParseError{
		Notation: NotationHex,
		Source:   source,
		Offset:   offset,
		Reason:   reason,
		Err:      ErrInvalidHex,
	}
}
