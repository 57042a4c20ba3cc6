package stickmap

import (
	"math"
	"strconv"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/internal"
)

// StickOptions configures a Stick. Zero values select the defaults.
type StickOptions struct {
	DeadZone      int                 // Radial dead zone in raw units
	MaxZone       int                 // Raw distance treated as full deflection
	DiagonalRange int                 // Width of each diagonal zone in degrees
	Mode          constants.StickMode // Eight-way or four-way cardinal
	NoModifier    bool                // Create the stick without a modifier button
}

// Stick turns a two-axis analog position into directional button presses.
// It owns one DirectionalButton per compass direction and an optional
// ModifierButton, all created with the stick and kept for its lifetime.
//
// A Stick is not safe for concurrent use; confine it to the goroutine that
// feeds it samples.
type Stick struct {
	index       int
	name        string
	defaultName string

	deadZone      int
	maxZone       int
	diagonalRange int
	mode          constants.StickMode

	x, y         int
	lastX, lastY int
	// last position outside the exact center, used for the stick angle
	angleX, angleY int

	direction constants.Direction

	buttons  [constants.DirectionUpLeft + 1]*DirectionalButton
	modifier *ModifierButton

	directionObservers []func(from, to constants.Direction)
}

// NewStick creates the stick with the given zero-based index.
func NewStick(index int, opts StickOptions) *Stick {
	s := &Stick{
		index:         index,
		deadZone:      constants.DefaultDeadZone,
		maxZone:       constants.DefaultMaxZone,
		diagonalRange: constants.DefaultDiagonalRange,
		mode:          opts.Mode,
	}

	s.SetDeadZone(opts.DeadZone)
	s.SetMaxZone(opts.MaxZone)
	s.SetDiagonalRange(opts.DiagonalRange)

	for _, d := range constants.Directions {
		s.buttons[d] = NewDirectionalButton(s, d)
	}
	if !opts.NoModifier {
		s.modifier = NewModifierButton(s)
	}

	return s
}

// Index returns the zero-based stick index.
func (s *Stick) Index() int {
	return s.index
}

// RealJoyIndex returns the one-based stick number shown to users.
func (s *Stick) RealJoyIndex() int {
	return s.index + 1
}

func (s *Stick) Name() string        { return s.name }
func (s *Stick) DefaultName() string { return s.defaultName }

func (s *Stick) SetName(name string)        { s.name = name }
func (s *Stick) SetDefaultName(name string) { s.defaultName = name }

// PartialName returns the stick's display name: the user name when
// displayNames is set, else the default name, else "Stick <number>".
// Names only get the "Stick " prefix when forceFullFormat is set.
func (s *Stick) PartialName(forceFullFormat, displayNames bool) string {
	stickToken := internal.Translate("Stick") + " "

	switch {
	case s.name != "" && displayNames:
		if forceFullFormat {
			return stickToken + s.name
		}
		return s.name
	case s.defaultName != "":
		if forceFullFormat {
			return stickToken + s.defaultName
		}
		return s.defaultName
	default:
		return stickToken + strconv.Itoa(s.RealJoyIndex())
	}
}

func (s *Stick) DeadZone() int                 { return s.deadZone }
func (s *Stick) MaxZone() int                  { return s.maxZone }
func (s *Stick) DiagonalRange() int            { return s.diagonalRange }
func (s *Stick) Mode() constants.StickMode     { return s.mode }
func (s *Stick) SetMode(m constants.StickMode) { s.mode = m }

// SetDeadZone sets the dead zone. Values outside 1..AxisMax are ignored.
func (s *Stick) SetDeadZone(v int) {
	if v > 0 && v <= constants.AxisMax {
		s.deadZone = v
	}
}

// SetMaxZone sets the full deflection distance. Values outside 1..AxisMax are ignored.
func (s *Stick) SetMaxZone(v int) {
	if v > 0 && v <= constants.AxisMax {
		s.maxZone = v
	}
}

// SetDiagonalRange sets the diagonal zone width. Values outside 1..90 are ignored.
func (s *Stick) SetDiagonalRange(v int) {
	if v > 0 && v <= 90 {
		s.diagonalRange = v
	}
}

// Button returns the directional button for d, or nil when d is not a
// compass direction.
func (s *Stick) Button(d constants.Direction) *DirectionalButton {
	if !d.IsCompass() {
		return nil
	}
	return s.buttons[d]
}

// Buttons returns the eight directional buttons in clockwise order from Up.
func (s *Stick) Buttons() []*DirectionalButton {
	out := make([]*DirectionalButton, 0, len(constants.Directions))
	for _, d := range constants.Directions {
		out = append(out, s.buttons[d])
	}
	return out
}

// Modifier returns the modifier button, or nil.
func (s *Stick) Modifier() *ModifierButton {
	return s.modifier
}

// ModifierButton returns the modifier as seen by directional buttons, or
// nil when the stick has none.
func (s *Stick) ModifierButton() Modifier {
	if s.modifier == nil {
		return nil
	}
	return s.modifier
}

// Position returns the current raw sample.
func (s *Stick) Position() (x, y int) {
	return s.x, s.y
}

// CurrentDirection returns the direction of the current sample.
func (s *Stick) CurrentDirection() constants.Direction {
	return s.direction
}

// OnDirectionChanged registers a callback fired after the held direction
// changes and the buttons have been updated.
func (s *Stick) OnDirectionChanged(fn func(from, to constants.Direction)) {
	s.directionObservers = append(s.directionObservers, fn)
}

func clampAxis(v int) int {
	return max(-constants.AxisMax, min(constants.AxisMax, v))
}

func (s *Stick) resolver() internal.DirectionResolver {
	return internal.DirectionResolver{
		DeadZone:      float64(s.deadZone),
		DiagonalRange: float64(s.diagonalRange),
		Mode:          s.mode,
	}
}

// Update feeds a raw sample to the stick. Raw Y grows downward. When the
// direction changes the old button is released before the new one is
// pressed; the modifier is held whenever the stick is outside the dead zone.
func (s *Stick) Update(x, y int) {
	s.lastX, s.lastY = s.x, s.y
	s.x, s.y = clampAxis(x), clampAxis(y)
	if s.x != 0 || s.y != 0 {
		s.angleX, s.angleY = s.x, s.y
	}

	previous := s.direction
	current := s.resolver().Resolve(s.x, s.y)
	if current == previous {
		return
	}
	s.direction = current

	if b := s.Button(previous); b != nil {
		b.SetButtonState(false)
	}
	if s.modifier != nil {
		s.modifier.SetButtonState(current != constants.DirectionCentered)
	}
	if b := s.Button(current); b != nil {
		b.SetButtonState(true)
	}

	internal.GetInternalLogger().Debug("Stick direction changed",
		"stick", s.index, "from", previous.String(), "to", current.String())

	for _, fn := range s.directionObservers {
		fn(previous, current)
	}
}

// Reset centers the stick, releasing every button.
func (s *Stick) Reset() {
	s.Update(0, 0)
	s.lastX, s.lastY = 0, 0
}

func (s *Stick) normalize(distance float64) float64 {
	span := float64(s.maxZone - s.deadZone)
	if span <= 0 {
		if distance > float64(s.deadZone) {
			return 1
		}
		return 0
	}
	return max(0, min(1, (distance-float64(s.deadZone))/span))
}

// XDistanceFromDeadZone returns the normalized horizontal distance of the current sample.
func (s *Stick) XDistanceFromDeadZone() float64 {
	return s.normalize(math.Abs(float64(s.x)))
}

// YDistanceFromDeadZone returns the normalized vertical distance of the current sample.
func (s *Stick) YDistanceFromDeadZone() float64 {
	return s.normalize(math.Abs(float64(s.y)))
}

// RadialDistanceFromDeadZone returns the normalized radial distance of the current sample.
func (s *Stick) RadialDistanceFromDeadZone() float64 {
	return s.normalize(math.Hypot(float64(s.x), float64(s.y)))
}

// DirectionalDistance returns the normalized distance along the current
// direction: the X or Y distance for cardinals, the radial distance for
// diagonals, 0 when centered.
func (s *Stick) DirectionalDistance() float64 {
	switch {
	case s.direction.IsHorizontal():
		return s.XDistanceFromDeadZone()
	case s.direction.IsVertical():
		return s.YDistanceFromDeadZone()
	case s.direction.IsDiagonal():
		return s.RadialDistanceFromDeadZone()
	}
	return 0
}

// projectedDistance returns the normalized distance of (x, y) along d.
// Positions pointing away from d score 0.
func (s *Stick) projectedDistance(d constants.Direction, x, y int) float64 {
	if !d.IsCompass() {
		return 0
	}

	if h := d.Horizontal(); (h == constants.DirectionRight && x <= 0) || (h == constants.DirectionLeft && x >= 0) {
		return 0
	}
	if v := d.Vertical(); (v == constants.DirectionDown && y <= 0) || (v == constants.DirectionUp && y >= 0) {
		return 0
	}

	switch {
	case d.IsHorizontal():
		return s.normalize(math.Abs(float64(x)))
	case d.IsVertical():
		return s.normalize(math.Abs(float64(y)))
	default:
		return s.normalize(math.Hypot(float64(x), float64(y)))
	}
}

// MouseDirectionalDistance returns the mouse scaling factor for b from the
// current sample.
func (s *Stick) MouseDirectionalDistance(b *DirectionalButton) float64 {
	return s.projectedDistance(b.Direction(), s.x, s.y)
}

// LastMouseDirectionalDistance returns the mouse scaling factor for b from
// the previous sample.
func (s *Stick) LastMouseDirectionalDistance(b *DirectionalButton) float64 {
	return s.projectedDistance(b.Direction(), s.lastX, s.lastY)
}

// AccelerationDistance returns the distance used by acceleration curves for
// b from the current sample.
func (s *Stick) AccelerationDistance(b *DirectionalButton) float64 {
	return s.projectedDistance(b.Direction(), s.x, s.y)
}

// LastAccelerationButtonDistance returns the distance used by acceleration
// curves for b from the previous sample.
func (s *Stick) LastAccelerationButtonDistance(b *DirectionalButton) float64 {
	return s.projectedDistance(b.Direction(), s.lastX, s.lastY)
}

func (s *Stick) deadZoneRatio() float64 {
	if s.maxZone <= 0 {
		return 0
	}
	return min(1, float64(s.deadZone)/float64(s.maxZone))
}

// SpringDeadCircleX returns the dead zone to max zone ratio projected on
// the X axis at the stick's angle. A centered stick keeps the angle of the
// last deflected sample.
func (s *Stick) SpringDeadCircleX() float64 {
	angle := internal.Angle(float64(s.angleX), float64(s.angleY)) * math.Pi / 180
	return math.Abs(math.Sin(angle)) * s.deadZoneRatio()
}

// SpringDeadCircleY is the Y axis counterpart of SpringDeadCircleX.
func (s *Stick) SpringDeadCircleY() float64 {
	angle := internal.Angle(float64(s.angleX), float64(s.angleY)) * math.Pi / 180
	return math.Abs(math.Cos(angle)) * s.deadZoneRatio()
}
