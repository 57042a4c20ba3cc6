package stickmap

import (
	"strings"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/internal"
)

// Modifier is the view of a stick's modifier button consulted when
// building directional summaries.
type Modifier interface {
	ButtonState() bool
	HasActiveSlots() bool
	CalculatedActiveZoneSummary() string
}

// StickSource is what a DirectionalButton needs from the stick that owns
// it. The button only borrows the stick: it never outlives or mutates it.
type StickSource interface {
	Index() int
	PartialName(forceFullFormat, displayNames bool) string

	DirectionalDistance() float64
	MouseDirectionalDistance(b *DirectionalButton) float64
	LastAccelerationButtonDistance(b *DirectionalButton) float64
	AccelerationDistance(b *DirectionalButton) float64
	LastMouseDirectionalDistance(b *DirectionalButton) float64

	SpringDeadCircleX() float64
	SpringDeadCircleY() float64

	// ModifierButton returns nil when the stick has no modifier.
	ModifierButton() Modifier
}

// SetAssignment describes a live set switch registered or removed by a
// directional button.
type SetAssignment struct {
	Direction  constants.Direction
	StickIndex int
	TargetSet  int
	Condition  constants.SetChangeCondition
}

// DirectionalButton is one of the virtual buttons of an analog stick.
// It adds direction-aware naming, dead zone queries, turbo gating and set
// change handling on top of Button.
type DirectionalButton struct {
	*Button

	stick     StickSource
	direction constants.Direction

	setAssignmentObservers []func(SetAssignment)
}

// NewDirectionalButton creates the button for direction on stick.
func NewDirectionalButton(stick StickSource, direction constants.Direction) *DirectionalButton {
	return &DirectionalButton{
		Button:    NewButton(),
		stick:     stick,
		direction: direction,
	}
}

// Direction returns the direction the button was created for.
func (b *DirectionalButton) Direction() constants.Direction {
	return b.direction
}

// Stick returns the owning stick.
func (b *DirectionalButton) Stick() StickSource {
	return b.stick
}

// RealJoyNumber returns the direction code, which doubles as the button number.
func (b *DirectionalButton) RealJoyNumber() int {
	return int(b.direction)
}

// DirectionLabel returns the localized label for a compass direction:
// "Up", "Right", "Up+Right" and so on, vertical part first. Any other
// value returns "".
func DirectionLabel(d constants.Direction) string {
	if !d.IsCompass() {
		return ""
	}

	var parts []string
	if v := d.Vertical(); v != constants.DirectionCentered {
		parts = append(parts, internal.Translate(directionMessageID(v)))
	}
	if h := d.Horizontal(); h != constants.DirectionCentered {
		parts = append(parts, internal.Translate(directionMessageID(h)))
	}
	return strings.Join(parts, "+")
}

func directionMessageID(d constants.Direction) string {
	switch d {
	case constants.DirectionUp:
		return "Up"
	case constants.DirectionDown:
		return "Down"
	case constants.DirectionLeft:
		return "Left"
	case constants.DirectionRight:
		return "Right"
	}
	return ""
}

// DirectionName returns the label for the button's direction.
func (b *DirectionalButton) DirectionName() string {
	return DirectionLabel(b.direction)
}

// DisplayName returns "<stick>: <label>". The label is the user name when
// displayNames is set, else the default name, else "Button <direction>".
// Names only get the "Button " prefix when forceFullFormat is set.
func (b *DirectionalButton) DisplayName(forceFullFormat, displayNames bool) string {
	var sb strings.Builder
	sb.WriteString(b.stick.PartialName(forceFullFormat, displayNames))
	sb.WriteString(": ")

	buttonToken := internal.Translate("Button") + " "

	switch {
	case b.Name() != "" && displayNames:
		if forceFullFormat {
			sb.WriteString(buttonToken)
		}
		sb.WriteString(b.Name())
	case b.DefaultName() != "":
		if forceFullFormat {
			sb.WriteString(buttonToken)
		}
		sb.WriteString(b.DefaultName())
	default:
		sb.WriteString(buttonToken)
		sb.WriteString(b.DirectionName())
	}

	return sb.String()
}

// DistanceFromDeadZone returns the stick's normalized distance from its
// dead zone along the current direction.
func (b *DirectionalButton) DistanceFromDeadZone() float64 {
	return b.stick.DirectionalDistance()
}

// MouseDistanceFromDeadZone returns the distance factor used to scale
// mouse movement for this button.
func (b *DirectionalButton) MouseDistanceFromDeadZone() float64 {
	return b.stick.MouseDirectionalDistance(b)
}

// LastMouseDistanceFromDeadZone returns the mouse distance factor of the
// previous stick sample.
func (b *DirectionalButton) LastMouseDistanceFromDeadZone() float64 {
	return b.stick.LastMouseDirectionalDistance(b)
}

// LastAccelerationDistance returns the acceleration distance of the
// previous stick sample.
func (b *DirectionalButton) LastAccelerationDistance() float64 {
	return b.stick.LastAccelerationButtonDistance(b)
}

// AccelerationDistance returns the current acceleration distance.
func (b *DirectionalButton) AccelerationDistance() float64 {
	return b.stick.AccelerationDistance(b)
}

// IsPartRealAxis reports true: directional buttons are always driven by a
// physical axis.
func (b *DirectionalButton) IsPartRealAxis() bool {
	return true
}

// SetTurboMode sets the turbo mode. It is ignored when the button is not
// part of a real axis.
func (b *DirectionalButton) SetTurboMode(mode constants.TurboMode) {
	if b.IsPartRealAxis() {
		b.turboMode = mode
	}
}

// CurrentSpringDeadCircle returns the spring dead circle radius for the
// button's axis. Diagonals never use one; full-axis markers use the raw
// multiplier fraction.
func (b *DirectionalButton) CurrentSpringDeadCircle() float64 {
	result := float64(b.springDeadCircleMultiplier) * 0.01

	switch {
	case b.direction.IsHorizontal():
		result = b.stick.SpringDeadCircleX() * result
	case b.direction.IsVertical():
		result = b.stick.SpringDeadCircleY() * result
	case b.direction.IsDiagonal():
		result = 0.0
	}

	return result
}

// OnSetAssignmentChanged registers a callback fired when the button starts
// or stops switching configuration sets. Callbacks run synchronously in
// registration order.
func (b *DirectionalButton) OnSetAssignmentChanged(fn func(SetAssignment)) {
	b.setAssignmentObservers = append(b.setAssignmentObservers, fn)
}

func (b *DirectionalButton) emitSetAssignmentChanged(condition constants.SetChangeCondition) {
	a := SetAssignment{
		Direction:  b.direction,
		StickIndex: b.stick.Index(),
		TargetSet:  b.setSelection,
		Condition:  condition,
	}
	for _, fn := range b.setAssignmentObservers {
		fn(a)
	}
}

// SetChangeSetCondition changes the set change condition. Passive changes
// come from profile restoration and never emit set assignment events.
// Active changes register the new switch, or unregister the old one when
// switching is turned off. Setting the current condition actively is a
// no-op.
func (b *DirectionalButton) SetChangeSetCondition(condition constants.SetChangeCondition, passive bool) {
	oldCondition := b.setSelectionCondition

	if passive {
		b.setSelectionCondition = condition
	} else if condition != b.setSelectionCondition {
		if condition.IsSwitching() {
			b.emitSetAssignmentChanged(condition)
		} else if b.setSelectionCondition.IsSwitching() {
			b.emitSetAssignmentChanged(constants.SetChangeDisabled)
		}
		b.setSelectionCondition = condition
	}

	if b.setSelectionCondition == constants.SetChangeDisabled {
		b.SetChangeSetSelection(constants.NoSet)
	}

	if b.setSelectionCondition != oldCondition {
		b.BuildActiveZoneSummaryString()
		b.emitPropertyUpdated()
	}
}

// CalculatedActiveZoneSummary describes everything pressing this button
// produces right now: the held modifier's slots first, then its own.
func (b *DirectionalButton) CalculatedActiveZoneSummary() string {
	var parts []string

	if modifier := b.stick.ModifierButton(); modifier != nil &&
		modifier.ButtonState() && modifier.HasActiveSlots() && b.ButtonState() {
		summary := modifier.CalculatedActiveZoneSummary()
		internal.GetInternalLogger().Debug("Modifier active zone summary", "summary", summary)
		parts = append(parts, summary)
	}

	parts = append(parts, b.ActiveZoneSummary())
	joined := strings.Join(parts, ", ")

	internal.GetInternalLogger().Debug("Calculated active zone summary",
		"direction", b.direction.String(), "summary", joined)

	return joined
}
