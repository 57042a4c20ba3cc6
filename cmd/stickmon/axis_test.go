package main

import (
	"testing"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
)

func TestAxisRangeNormalize(t *testing.T) {
	tests := []struct {
		name string
		r    axisRange
		v    int32
		want int
	}{
		{"unsigned min", axisRange{0, 255}, 0, -constants.AxisMax},
		{"unsigned max", axisRange{0, 255}, 255, constants.AxisMax},
		{"signed center", axisRange{-32768, 32767}, 0, 0},
		{"signed max", axisRange{-32768, 32767}, 32767, constants.AxisMax},
		{"signed min", axisRange{-32768, 32767}, -32768, -constants.AxisMax},
		{"out of range", axisRange{-100, 100}, 500, constants.AxisMax},
		{"empty range", axisRange{10, 10}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.normalize(tt.v); got != tt.want {
				t.Errorf("normalize(%d) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}
