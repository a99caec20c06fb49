package ggcolor

import (
	"errors"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "positional",
			err:  &ParseError{Notation: NotationHex, Source: "#ggg", Offset: 1, Err: ErrInvalidHex},
			want: `ggcolor: not a valid hexadecimal "#ggg" at offset 1`,
		},
		{
			name: "with reason",
			err:  &ParseError{Notation: NotationHex, Source: "#12", Offset: -1, Reason: "want 3, 4, 6 or 8 digits, got 2", Err: ErrInvalidHex},
			want: `ggcolor: not a valid hexadecimal "#12": want 3, 4, 6 or 8 digits, got 2`,
		},
		{
			name: "reason and offset",
			err:  &ParseError{Notation: NotationFunctional, Source: "rgb(256, 0, 0)", Offset: 7, Reason: "component out of range", Err: ErrInvalidFunctional},
			want: `ggcolor: not a valid rgb value "rgb(256, 0, 0)": component out of range at offset 7`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Error("ParseError does not unwrap to its sentinel")
			}
		})
	}
}

func TestComponentErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ComponentError
		want string
	}{
		{&ComponentError{Value: 256}, "ggcolor: not a valid component value: 256"},
		{&ComponentError{Channel: "g", Value: -1}, "ggcolor: not a valid component value: g=-1"},
		{&ComponentError{Channel: "a", Value: 0.5}, "ggcolor: not a valid component value: a=0.5"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, ErrInvalidComponent) {
			t.Errorf("%v does not unwrap to ErrInvalidComponent", tt.err)
		}
	}
}
