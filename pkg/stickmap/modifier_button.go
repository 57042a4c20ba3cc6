package stickmap

import (
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/internal"
)

// ModifierButton is held whenever its stick leaves the dead zone,
// regardless of direction. Its slots are reported alongside those of the
// held directional button.
type ModifierButton struct {
	*Button

	stick StickSource
}

// NewModifierButton creates the modifier for stick.
func NewModifierButton(stick StickSource) *ModifierButton {
	return &ModifierButton{
		Button: NewButton(),
		stick:  stick,
	}
}

// Direction is always DirectionCentered for a modifier.
func (m *ModifierButton) Direction() constants.Direction {
	return constants.DirectionCentered
}

// DisplayName follows the directional naming rules with "Modifier" as the
// generated label.
func (m *ModifierButton) DisplayName(forceFullFormat, displayNames bool) string {
	prefix := m.stick.PartialName(forceFullFormat, displayNames) + ": "
	buttonToken := internal.Translate("Button") + " "

	label := ""
	switch {
	case m.Name() != "" && displayNames:
		label = m.Name()
	case m.DefaultName() != "":
		label = m.DefaultName()
	default:
		return prefix + internal.Translate("Modifier")
	}

	if forceFullFormat {
		return prefix + buttonToken + label
	}
	return prefix + label
}

// DistanceFromDeadZone returns the stick's distance along its current direction.
func (m *ModifierButton) DistanceFromDeadZone() float64 {
	return m.stick.DirectionalDistance()
}

// IsPartRealAxis reports true: the modifier follows a physical stick.
func (m *ModifierButton) IsPartRealAxis() bool {
	return true
}

// SetTurboMode sets the turbo mode when the modifier is eligible.
func (m *ModifierButton) SetTurboMode(mode constants.TurboMode) {
	if m.IsPartRealAxis() {
		m.turboMode = mode
	}
}
