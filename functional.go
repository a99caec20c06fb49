package ggcolor

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// functionalPrefix is the longest keyword; "rgb" is its first three bytes.
const functionalPrefix = "rgba"

// maxComponents is the component count of rgba().
const maxComponents = 4

// alphaIndex is the only component that may carry a decimal point.
const alphaIndex = 3

// charClass is the scanner's classification of a single source byte.
type charClass uint8

const (
	classInvalid charClass = iota
	classPrefix            // r, g, b, a
	classOpen              // (
	classNumber            // 0-9 and .
	classCloser            // , and )
	classSpace             // ignored
)

func classify(c byte) charClass {
	switch {
	case strings.IndexByte(functionalPrefix, c) >= 0:
		return classPrefix
	case c == '(':
		return classOpen
	case '0' <= c && c <= '9', c == '.':
		return classNumber
	case c == ',', c == ')':
		return classCloser
	case c == ' ':
		return classSpace
	default:
		return classInvalid
	}
}

// functionalParser holds the working state of a single ParseFunctional call.
type functionalParser struct {
	source     string
	prefixLen  int // prefix letters accepted so far
	count      int // expected components: 3 for rgb, 4 for rgba
	index      int // component cursor
	opened     bool
	closed     bool
	text       [maxComponents]strings.Builder
	components [maxComponents]uint32
}

// ParseFunctional parses "rgb(r, g, b)" or "rgba(r, g, b, a)" into target
// and returns it. A nil target allocates a new Color.
//
// Red, green and blue must be integers in [0, 255]. Alpha is a fraction in
// [0, 1], scaled by 255 and floored, so 0.4 becomes 102. Spaces are
// ignored anywhere and the source is matched case-insensitively.
//
// The decoded channels are OR-ed into the target's existing value; rgb()
// also sets the alpha byte to 0xff. Nothing is written unless the whole
// source is valid.
func ParseFunctional(source string, target *Color) (*Color, error) {
	p := &functionalParser{
		source: foldCase(source),
		count:  3,
	}
	packed, err := p.parse()
	if err != nil {
		err.Source = source
		return nil, err
	}

	if target == nil {
		target = New()
	}
	target.value |= packed
	return target, nil
}

func (p *functionalParser) parse() (uint32, *ParseError) {
	for i := 0; i < len(p.source); i++ {
		c := p.source[i]

		if p.closed && c != ' ' {
			return 0, p.fail(i, "unexpected character after ')'")
		}

		var err *ParseError
		switch classify(c) {
		case classPrefix:
			err = p.prefix(i, c)
		case classOpen:
			err = p.open(i)
		case classNumber:
			err = p.number(i, c)
		case classCloser:
			err = p.closer(i, c)
		case classSpace:
		default:
			err = p.fail(i, "unexpected character "+strconv.QuoteRune(rune(c)))
		}
		if err != nil {
			return 0, err
		}
	}

	if p.index < p.count {
		return 0, p.fail(len(p.source), "want "+strconv.Itoa(p.count)+" components, got "+strconv.Itoa(p.index))
	}
	if !p.closed {
		return 0, p.fail(len(p.source), "missing ')'")
	}

	var packed uint32
	for i := 0; i < p.index; i++ {
		packed |= p.components[i] << (24 - i*8)
	}
	if p.index < maxComponents {
		packed |= 0xff
	}
	return packed, nil
}

// prefix accepts a keyword letter only at its own index in "rgba".
func (p *functionalParser) prefix(i int, c byte) *ParseError {
	if strings.IndexByte(functionalPrefix, c) != i || p.prefixLen != i {
		return p.fail(i, "misplaced "+strconv.QuoteRune(rune(c)))
	}
	p.prefixLen++
	if c == functionalPrefix[alphaIndex] {
		p.count++
	}
	return nil
}

// open accepts '(' only right after a complete "rgb" or "rgba" keyword.
func (p *functionalParser) open(i int) *ParseError {
	if i != p.count || p.prefixLen != p.count {
		return p.fail(i, "'(' does not follow rgb or rgba")
	}
	p.opened = true
	return nil
}

func (p *functionalParser) number(i int, c byte) *ParseError {
	if !p.opened {
		return p.fail(i, "number before '('")
	}
	if p.index >= maxComponents {
		return p.fail(i, "too many components")
	}
	if c == '.' && p.index < alphaIndex {
		return p.fail(i, "red, green and blue must be integers")
	}
	p.text[p.index].WriteByte(c)
	return nil
}

// closer finalizes the current component on ',' or ')'.
func (p *functionalParser) closer(i int, c byte) *ParseError {
	if !p.opened {
		return p.fail(i, "separator before '('")
	}
	if p.index >= p.count {
		return p.fail(i, "too many components")
	}

	text := p.text[p.index].String()
	if text == "" {
		return p.fail(i, "empty component")
	}

	var v float64
	if p.index == alphaIndex {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return p.fail(i, "alpha "+strconv.Quote(text)+" is not a number")
		}
		v = math.Floor(f * ComponentMax)
	} else {
		n, err := strconv.Atoi(text)
		if err != nil {
			return p.fail(i, "component "+strconv.Quote(text)+" is not an integer")
		}
		v = float64(n)
	}
	if !IsValidComponentValue(v) {
		return p.fail(i, "component "+strconv.Quote(text)+" out of range")
	}

	p.components[p.index] = uint32(v)
	p.index++
	if c == ')' {
		p.closed = true
	}
	return nil
}

// foldCase lowercases a source. Casers are stateful and must not be shared
// between goroutines, so each call builds its own.
func foldCase(source string) string {
	return cases.Lower(language.Und).String(source)
}

func (p *functionalParser) fail(offset int, reason string) *ParseError {
	return &ParseError{
		Notation: NotationFunctional,
		Source:   p.source,
		Offset:   offset,
		Reason:   reason,
		Err:      ErrInvalidFunctional,
	}
}
