package stickmap

import (
	"fmt"
	"strings"
)

// SlotKind identifies what an output slot does when its button activates.
type SlotKind int

const (
	SlotKeyPress      SlotKind = iota // Press a keyboard key
	SlotMouseButton                   // Press a mouse button
	SlotMouseMovement                 // Move the mouse cursor in a direction
	SlotCycle                         // Delimiter between cycle groups
)

// Slot is a single output action assigned to a button.
type Slot struct {
	Kind SlotKind
	Code string // Key name, mouse button name, or movement direction
}

// String returns the label shown in active zone summaries.
func (s Slot) String() string {
	switch s.Kind {
	case SlotKeyPress:
		return strings.ToUpper(s.Code)
	case SlotMouseButton:
		if label, ok := mouseButtons[s.Code]; ok {
			return label
		}
		return "Mouse " + capitalize(s.Code)
	case SlotMouseMovement:
		return "Mouse " + capitalize(s.Code)
	case SlotCycle:
		return "Cycle"
	default:
		return ""
	}
}

// Token returns the profile form of s, the inverse of ParseSlot.
func (s Slot) Token() string {
	switch s.Kind {
	case SlotKeyPress:
		return "key:" + s.Code
	case SlotMouseButton:
		return "mousebutton:" + s.Code
	case SlotMouseMovement:
		return "mouse:" + s.Code
	case SlotCycle:
		return "cycle"
	default:
		return ""
	}
}

var mouseMovements = map[string]bool{"up": true, "down": true, "left": true, "right": true}

// mouseButtons maps mouse button codes to their summary labels.
var mouseButtons = map[string]string{
	"left":      "LB",
	"right":     "RB",
	"middle":    "MB",
	"wheelup":   "Wheel Up",
	"wheeldown": "Wheel Down",
}

// ParseSlot parses a profile slot token such as "key:w", "mouse:up",
// "mousebutton:left" or "cycle".
func ParseSlot(token string) (Slot, error) {
	token = strings.TrimSpace(token)
	if strings.EqualFold(token, "cycle") {
		return Slot{Kind: SlotCycle}, nil
	}

	kind, code, ok := strings.Cut(token, ":")
	code = strings.ToLower(strings.TrimSpace(code))
	if !ok || code == "" {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, token)
	}

	switch strings.ToLower(kind) {
	case "key":
		return Slot{Kind: SlotKeyPress, Code: code}, nil
	case "mouse":
		if mouseMovements[code] {
			return Slot{Kind: SlotMouseMovement, Code: code}, nil
		}
	case "mousebutton":
		if _, ok := mouseButtons[code]; ok {
			return Slot{Kind: SlotMouseButton, Code: code}, nil
		}
	}

	return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, token)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
