package sets

import (
	"github.com/BrandonKowalski/stickmap/pkg/stickmap"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/internal"
)

// Set is a configuration set index.
type Set int

// NoSet is the zero-target marker used by disabled buttons.
const NoSet Set = constants.NoSet

// Key identifies a directional button across sticks.
type Key struct {
	StickIndex int
	Direction  constants.Direction
}

// ChangeFunc is called after the active set changes.
type ChangeFunc func(from, to Set)

type assignment struct {
	target    Set
	condition constants.SetChangeCondition
}

// Switcher tracks which configuration set is active. Buttons register
// live set switches through Register; Press and Release then drive the
// switches the same way for every button.
type Switcher struct {
	active      Set
	assignments map[Key]assignment
	stack       *Stack
	observers   []ChangeFunc
}

// New creates a Switcher with the given set active.
func New(initial Set) *Switcher {
	return &Switcher{
		active:      initial,
		assignments: make(map[Key]assignment),
		stack:       NewStack(),
	}
}

// Active returns the active set.
func (s *Switcher) Active() Set {
	return s.active
}

// Stack returns the pending switches.
func (s *Switcher) Stack() *Stack {
	return s.stack
}

// OnChange adds a callback fired after every set change.
func (s *Switcher) OnChange(fn ChangeFunc) *Switcher {
	s.observers = append(s.observers, fn)
	return s
}

// Register records a live set switch for key. A non-switching condition
// or an out-of-range target removes it, undoing any pending while-held
// switch it caused.
func (s *Switcher) Register(key Key, target Set, condition constants.SetChangeCondition) *Switcher {
	if !condition.IsSwitching() || target < 0 || target >= constants.MaxSets {
		if _, ok := s.assignments[key]; ok {
			delete(s.assignments, key)
			s.unwind(key)
			internal.GetInternalLogger().Debug("Set switch removed",
				"stick", key.StickIndex, "direction", key.Direction.String())
		}
		return s
	}

	s.assignments[key] = assignment{target: target, condition: condition}
	internal.GetInternalLogger().Debug("Set switch registered",
		"stick", key.StickIndex, "direction", key.Direction.String(),
		"target", int(target), "condition", condition.String())
	return s
}

// Assignment returns the switch registered for key.
func (s *Switcher) Assignment(key Key) (target Set, condition constants.SetChangeCondition, ok bool) {
	a, ok := s.assignments[key]
	if !ok {
		return NoSet, constants.SetChangeDisabled, false
	}
	return a.target, a.condition, true
}

// Press applies the switch registered for key and reports whether the
// active set changed. While-held switches move to the target; two-way
// switches move to the target, or back to where they came from when the
// target is already active.
func (s *Switcher) Press(key Key) bool {
	a, ok := s.assignments[key]
	if !ok {
		return false
	}

	switch a.condition {
	case constants.SetChangeWhileHeld:
		if s.active == a.target {
			return false
		}
		s.stack.Push(s.active, key)
		s.switchTo(a.target)
		return true

	case constants.SetChangeTwoWay:
		if s.active == a.target {
			entry, _ := s.stack.Remove(key)
			if entry == nil {
				return false
			}
			s.switchTo(entry.From)
			return true
		}
		s.stack.Push(s.active, key)
		s.switchTo(a.target)
		return true
	}

	return false
}

// Release undoes a while-held switch caused by key and reports whether the
// active set changed.
func (s *Switcher) Release(key Key) bool {
	a, ok := s.assignments[key]
	if !ok || a.condition != constants.SetChangeWhileHeld {
		return false
	}
	return s.unwind(key)
}

func (s *Switcher) unwind(key Key) bool {
	entry, top := s.stack.Remove(key)
	if entry == nil || !top {
		return false
	}
	s.switchTo(entry.From)
	return true
}

func (s *Switcher) switchTo(to Set) {
	from := s.active
	if from == to {
		return
	}
	s.active = to

	internal.GetInternalLogger().Debug("Active set changed", "from", int(from), "to", int(to))

	for _, fn := range s.observers {
		fn(from, to)
	}
}

// HandleAssignment registers a set assignment emitted by a directional button.
func (s *Switcher) HandleAssignment(a stickmap.SetAssignment) {
	s.Register(Key{StickIndex: a.StickIndex, Direction: a.Direction}, Set(a.TargetSet), a.Condition)
}

// Attach registers the current switches of every button on stick and
// follows later assignment changes and presses. Call it after restoring a
// profile, since passive restoration emits no assignment events.
//
// Buttons emit no assignment event when only their target set changes, so
// Attach also watches property updates and moves a registered switch to
// the button's new target.
func (s *Switcher) Attach(stick *stickmap.Stick) {
	for _, b := range stick.Buttons() {
		key := Key{StickIndex: stick.Index(), Direction: b.Direction()}
		s.Register(key, Set(b.SetSelection()), b.SetSelectionCondition())

		b.OnSetAssignmentChanged(s.HandleAssignment)
		b.OnPropertyUpdated(func() {
			target, condition, ok := s.Assignment(key)
			if ok && condition == b.SetSelectionCondition() && target != Set(b.SetSelection()) {
				s.Register(key, Set(b.SetSelection()), condition)
			}
		})
		b.OnStateChanged(func(pressed bool) {
			if pressed {
				s.Press(key)
			} else {
				s.Release(key)
			}
		})
	}
}
