package internal

import (
	"math"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
)

// DirectionResolver maps a raw analog position onto one of the eight
// compass directions. Raw Y grows downward, as reported by most devices.
type DirectionResolver struct {
	DeadZone      float64             // Radial dead zone in raw units
	DiagonalRange float64             // Width of each diagonal zone in degrees (0..90)
	Mode          constants.StickMode // Eight-way or four-way cardinal
}

// NewDirectionResolver creates a resolver with the default dead zone and
// diagonal range in eight-way mode.
func NewDirectionResolver() DirectionResolver {
	return DirectionResolver{
		DeadZone:      constants.DefaultDeadZone,
		DiagonalRange: constants.DefaultDiagonalRange,
		Mode:          constants.StickModeEightWay,
	}
}

// Angle returns the bearing of (x, y) in degrees, clockwise from up, in [0, 360).
func Angle(x, y float64) float64 {
	a := math.Atan2(x, -y) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// angularDistance returns the shortest distance between two bearings in degrees.
func angularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Resolve returns the direction the position (x, y) falls in, or
// DirectionCentered inside the dead zone.
func (r DirectionResolver) Resolve(x, y int) constants.Direction {
	fx, fy := float64(x), float64(y)
	if math.Hypot(fx, fy) <= r.DeadZone {
		return constants.DirectionCentered
	}

	diagonal := math.Max(0, math.Min(90, r.DiagonalRange))
	cardinal := 90 - diagonal
	angle := Angle(fx, fy)

	result := constants.DirectionCentered
	for i, d := range constants.Directions {
		half := cardinal / 2
		if d.IsDiagonal() {
			half = diagonal / 2
		}
		if angularDistance(angle, float64(i)*45) <= half {
			result = d
			break
		}
	}

	if r.Mode == constants.StickModeFourWayCardinal && result.IsDiagonal() {
		if math.Abs(fx) > math.Abs(fy) {
			return result.Horizontal()
		}
		return result.Vertical()
	}

	return result
}
