package ggcolor

import (
	"errors"
	"math"
	"testing"
)

func TestIsValidComponentValue(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"zero", 0, true},
		{"max", 255, true},
		{"middle", 125, true},
		{"above max", 256, false},
		{"below zero", -1, false},
		{"fraction", 12.5, false},
		{"tiny fraction", 204.00000000000003, false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
		{"negative inf", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidComponentValue(tt.v); got != tt.want {
				t.Errorf("IsValidComponentValue(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestValidateComponent(t *testing.T) {
	if err := ValidateComponent(128); err != nil {
		t.Errorf("ValidateComponent(128) = %v, want nil", err)
	}

	err := ValidateComponent(300)
	if !errors.Is(err, ErrInvalidComponent) {
		t.Fatalf("ValidateComponent(300) = %v, want ErrInvalidComponent", err)
	}
	var ce *ComponentError
	if !errors.As(err, &ce) {
		t.Fatalf("ValidateComponent(300) error %T is not a *ComponentError", err)
	}
	if ce.Value != 300 || ce.Channel != "" {
		t.Errorf("ComponentError = %+v, want Value 300 and no channel", ce)
	}
}

func TestChannelString(t *testing.T) {
	want := map[Channel]string{
		ChannelRed:   "r",
		ChannelGreen: "g",
		ChannelBlue:  "b",
		ChannelAlpha: "a",
		Channel(9):   "Channel(9)",
	}
	for ch, name := range want {
		if got := ch.String(); got != name {
			t.Errorf("Channel(%d).String() = %q, want %q", uint8(ch), got, name)
		}
	}
}

func TestChannelLayout(t *testing.T) {
	tests := []struct {
		ch     Channel
		offset uint
		mask   uint32
	}{
		{ChannelRed, 24, 0xff000000},
		{ChannelGreen, 16, 0x00ff0000},
		{ChannelBlue, 8, 0x0000ff00},
		{ChannelAlpha, 0, 0x000000ff},
	}
	for _, tt := range tests {
		if tt.ch.Offset() != tt.offset || tt.ch.Mask() != tt.mask {
			t.Errorf("%s: offset %d mask %#08x, want %d %#08x", tt.ch, tt.ch.Offset(), tt.ch.Mask(), tt.offset, tt.mask)
		}
	}
}
