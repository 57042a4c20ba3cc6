package main

import "github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"

// axisRange is the raw range a device reports for one axis.
type axisRange struct {
	Min, Max int32
}

// normalize maps a raw device value onto -AxisMax..AxisMax with the
// midpoint of the range as center.
func (r axisRange) normalize(v int32) int {
	if r.Max <= r.Min {
		return 0
	}
	mid := (float64(r.Min) + float64(r.Max)) / 2
	half := (float64(r.Max) - float64(r.Min)) / 2
	n := (float64(v) - mid) / half * constants.AxisMax
	return max(-constants.AxisMax, min(constants.AxisMax, int(n)))
}

// frame is one synchronized report: [stick][x, y] in normalized units.
type frame [2][2]int

// frameSource delivers synchronized stick frames from a device.
type frameSource interface {
	Name() string
	Next() (frame, error)
	Close() error
}
