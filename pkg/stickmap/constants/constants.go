// Package constants defines shared constants, enums, and configuration values
// used throughout the stickmap remapping engine.
package constants

import (
	"os"
	"strings"
)

// LogLevelEnvVar is the environment variable name that overrides the log level.
const LogLevelEnvVar = "STICKMAP_LOG_LEVEL"

// LanguageEnvVar is the environment variable name for the label language (e.g. "de").
const LanguageEnvVar = "STICKMAP_LANG"

// EnvLanguage returns the language requested through LanguageEnvVar, if any.
func EnvLanguage() string {
	return strings.TrimSpace(os.Getenv(LanguageEnvVar))
}

// Direction identifies one directional virtual button of an analog stick.
// The eight compass values are laid out clockwise starting at Up.
type Direction int

const (
	DirectionCentered Direction = iota
	DirectionUp
	DirectionUpRight
	DirectionRight
	DirectionDownRight
	DirectionDown
	DirectionDownLeft
	DirectionLeft
	DirectionUpLeft

	// Full-axis markers. They never name a compass direction and are only
	// consulted when choosing the spring dead circle axis.
	DirectionLeftStickAxis
	DirectionRightStickAxis
)

// Directions lists the eight compass directions in clockwise order.
var Directions = [...]Direction{
	DirectionUp,
	DirectionUpRight,
	DirectionRight,
	DirectionDownRight,
	DirectionDown,
	DirectionDownLeft,
	DirectionLeft,
	DirectionUpLeft,
}

// IsCompass reports whether d is one of the eight compass directions.
func (d Direction) IsCompass() bool {
	return d >= DirectionUp && d <= DirectionUpLeft
}

// IsDiagonal reports whether d combines a vertical and a horizontal component.
func (d Direction) IsDiagonal() bool {
	switch d {
	case DirectionUpRight, DirectionDownRight, DirectionDownLeft, DirectionUpLeft:
		return true
	}
	return false
}

// IsHorizontal reports whether d lies on the X axis only.
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// IsVertical reports whether d lies on the Y axis only.
func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// IsAxis reports whether d is one of the full-axis markers.
func (d Direction) IsAxis() bool {
	return d == DirectionLeftStickAxis || d == DirectionRightStickAxis
}

// Vertical returns the vertical component of d, or DirectionCentered.
func (d Direction) Vertical() Direction {
	switch d {
	case DirectionUp, DirectionUpRight, DirectionUpLeft:
		return DirectionUp
	case DirectionDown, DirectionDownRight, DirectionDownLeft:
		return DirectionDown
	}
	return DirectionCentered
}

// Horizontal returns the horizontal component of d, or DirectionCentered.
func (d Direction) Horizontal() Direction {
	switch d {
	case DirectionRight, DirectionUpRight, DirectionDownRight:
		return DirectionRight
	case DirectionLeft, DirectionUpLeft, DirectionDownLeft:
		return DirectionLeft
	}
	return DirectionCentered
}

var directionTokens = map[Direction]string{
	DirectionCentered:       "centered",
	DirectionUp:             "up",
	DirectionUpRight:        "up-right",
	DirectionRight:          "right",
	DirectionDownRight:      "down-right",
	DirectionDown:           "down",
	DirectionDownLeft:       "down-left",
	DirectionLeft:           "left",
	DirectionUpLeft:         "up-left",
	DirectionLeftStickAxis:  "left-stick-axis",
	DirectionRightStickAxis: "right-stick-axis",
}

// String returns the configuration token for d, e.g. "up-right".
// Unknown values return an empty string.
func (d Direction) String() string {
	return directionTokens[d]
}

// ParseDirection converts a configuration token back into a Direction.
// Matching is case-insensitive and accepts "_" in place of "-".
func ParseDirection(s string) (Direction, bool) {
	token := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for d, t := range directionTokens {
		if t == token {
			return d, true
		}
	}
	return DirectionCentered, false
}

// SetChangeCondition controls how a button switches the active configuration set.
type SetChangeCondition int

const (
	SetChangeDisabled  SetChangeCondition = iota // Button never switches sets
	SetChangeWhileHeld                           // Target set is active only while the button is held
	SetChangeTwoWay                              // Each press toggles between the target set and the previous one
)

// IsSwitching reports whether c registers a live set switch.
func (c SetChangeCondition) IsSwitching() bool {
	return c == SetChangeWhileHeld || c == SetChangeTwoWay
}

func (c SetChangeCondition) String() string {
	switch c {
	case SetChangeDisabled:
		return "disabled"
	case SetChangeWhileHeld:
		return "while-held"
	case SetChangeTwoWay:
		return "two-way"
	default:
		return ""
	}
}

// ParseSetChangeCondition converts a configuration token into a SetChangeCondition.
// An empty string means SetChangeDisabled.
func ParseSetChangeCondition(s string) (SetChangeCondition, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", "disabled":
		return SetChangeDisabled, true
	case "while-held":
		return SetChangeWhileHeld, true
	case "two-way":
		return SetChangeTwoWay, true
	}
	return SetChangeDisabled, false
}

// TurboMode selects how a button repeats its slots while turbo is enabled.
type TurboMode int

const (
	TurboNormal   TurboMode = iota // Fixed on/off cycle
	TurboGradient                  // Duty cycle follows the distance from the dead zone
	TurboPulse                     // Frequency follows the distance from the dead zone
)

func (m TurboMode) String() string {
	switch m {
	case TurboNormal:
		return "normal"
	case TurboGradient:
		return "gradient"
	case TurboPulse:
		return "pulse"
	default:
		return ""
	}
}

// ParseTurboMode converts a configuration token into a TurboMode.
// An empty string means TurboNormal.
func ParseTurboMode(s string) (TurboMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return TurboNormal, true
	case "gradient":
		return TurboGradient, true
	case "pulse":
		return TurboPulse, true
	}
	return TurboNormal, false
}

// StickMode controls which directional buttons a stick can hold at once.
type StickMode int

const (
	StickModeEightWay        StickMode = iota // One of eight compass buttons, diagonals included
	StickModeFourWayCardinal                  // Diagonal zones collapse onto the nearest cardinal
)

func (m StickMode) String() string {
	switch m {
	case StickModeEightWay:
		return "eight-way"
	case StickModeFourWayCardinal:
		return "four-way-cardinal"
	default:
		return ""
	}
}

// ParseStickMode converts a configuration token into a StickMode.
// An empty string means StickModeEightWay.
func ParseStickMode(s string) (StickMode, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", "eight-way":
		return StickModeEightWay, true
	case "four-way-cardinal":
		return StickModeFourWayCardinal, true
	}
	return StickModeEightWay, false
}

// Configuration sets.
const (
	MaxSets = 8  // Number of configuration sets per controller
	NoSet   = -1 // No set change target
)

// Stick defaults. Raw axis values span -AxisMax..AxisMax.
const (
	AxisMax              = 32767
	DefaultDeadZone      = 8000
	DefaultMaxZone       = 30000
	DefaultDiagonalRange = 45 // degrees
)
