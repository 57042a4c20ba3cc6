package sets

import (
	"reflect"
	"testing"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
)

var (
	keyUp    = Key{StickIndex: 0, Direction: constants.DirectionUp}
	keyDown  = Key{StickIndex: 0, Direction: constants.DirectionDown}
	keyRight = Key{StickIndex: 1, Direction: constants.DirectionRight}
)

func recordChanges(s *Switcher) *[][2]Set {
	var changes [][2]Set
	s.OnChange(func(from, to Set) { changes = append(changes, [2]Set{from, to}) })
	return &changes
}

func TestSwitcherWhileHeld(t *testing.T) {
	s := New(0).Register(keyUp, 2, constants.SetChangeWhileHeld)
	changes := recordChanges(s)

	if !s.Press(keyUp) || s.Active() != 2 {
		t.Fatalf("Press() should switch to 2, active = %d", s.Active())
	}
	if s.Press(keyUp) {
		t.Error("pressing while already in the target set should not switch")
	}
	if !s.Release(keyUp) || s.Active() != 0 {
		t.Fatalf("Release() should switch back to 0, active = %d", s.Active())
	}
	if s.Release(keyUp) {
		t.Error("releasing twice should not switch")
	}

	want := [][2]Set{{0, 2}, {2, 0}}
	if !reflect.DeepEqual(*changes, want) {
		t.Errorf("changes = %v, want %v", *changes, want)
	}
}

func TestSwitcherOverlappingWhileHeld(t *testing.T) {
	tests := []struct {
		name    string
		release []Key
		want    [][2]Set
	}{
		{
			name:    "reverse order",
			release: []Key{keyDown, keyUp},
			want:    [][2]Set{{0, 2}, {2, 3}, {3, 2}, {2, 0}},
		},
		{
			name:    "press order",
			release: []Key{keyUp, keyDown},
			want:    [][2]Set{{0, 2}, {2, 3}, {3, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(0).
				Register(keyUp, 2, constants.SetChangeWhileHeld).
				Register(keyDown, 3, constants.SetChangeWhileHeld)
			changes := recordChanges(s)

			s.Press(keyUp)
			s.Press(keyDown)
			for _, k := range tt.release {
				s.Release(k)
			}

			if s.Active() != 0 || !s.Stack().IsEmpty() {
				t.Errorf("active = %d, stack = %d entries", s.Active(), s.Stack().Len())
			}
			if !reflect.DeepEqual(*changes, tt.want) {
				t.Errorf("changes = %v, want %v", *changes, tt.want)
			}
		})
	}
}

func TestSwitcherTwoWay(t *testing.T) {
	s := New(1).Register(keyRight, 4, constants.SetChangeTwoWay)

	if !s.Press(keyRight) || s.Active() != 4 {
		t.Fatalf("first press: active = %d, want 4", s.Active())
	}
	if s.Release(keyRight) {
		t.Error("releasing a two-way switch should not switch")
	}
	if !s.Press(keyRight) || s.Active() != 1 {
		t.Fatalf("second press: active = %d, want 1", s.Active())
	}

	// Already in the target with nothing to return to.
	s = New(4).Register(keyRight, 4, constants.SetChangeTwoWay)
	if s.Press(keyRight) {
		t.Error("press without a pending switch should do nothing")
	}
}

func TestSwitcherRegister(t *testing.T) {
	s := New(0)

	s.Register(keyUp, constants.MaxSets, constants.SetChangeWhileHeld)
	if _, _, ok := s.Assignment(keyUp); ok {
		t.Error("out of range target should not register")
	}
	s.Register(keyUp, 2, constants.SetChangeDisabled)
	if _, _, ok := s.Assignment(keyUp); ok {
		t.Error("disabled condition should not register")
	}

	s.Register(keyUp, 2, constants.SetChangeWhileHeld)
	target, cond, ok := s.Assignment(keyUp)
	if !ok || target != 2 || cond != constants.SetChangeWhileHeld {
		t.Errorf("Assignment() = %d, %v, %v", target, cond, ok)
	}

	if s.Press(keyDown) || s.Release(keyDown) {
		t.Error("unregistered keys should not switch")
	}
}

func TestSwitcherDisableWhileHeld(t *testing.T) {
	s := New(0).Register(keyUp, 2, constants.SetChangeWhileHeld)
	changes := recordChanges(s)

	s.Press(keyUp)
	s.Register(keyUp, 2, constants.SetChangeDisabled)

	if s.Active() != 0 {
		t.Errorf("removing a held switch should restore set 0, active = %d", s.Active())
	}
	if s.Release(keyUp) {
		t.Error("release after removal should do nothing")
	}
	if len(*changes) != 2 {
		t.Errorf("changes = %v", *changes)
	}
}

func TestSwitcherAttach(t *testing.T) {
	stick := stickmap.NewStick(0, stickmap.StickOptions{})
	up := stick.Button(constants.DirectionUp)
	down := stick.Button(constants.DirectionDown)

	// Restored passively before attaching.
	down.SetChangeSetSelection(6)
	down.SetChangeSetCondition(constants.SetChangeTwoWay, true)

	s := New(0)
	s.Attach(stick)
	changes := recordChanges(s)

	if target, cond, ok := s.Assignment(keyDown); !ok || target != 6 || cond != constants.SetChangeTwoWay {
		t.Fatalf("passive switch not synced: %d, %v, %v", target, cond, ok)
	}

	up.SetChangeSetSelection(2)
	up.SetChangeSetCondition(constants.SetChangeWhileHeld, false)

	stick.Update(0, -32767)
	if s.Active() != 2 {
		t.Errorf("holding up: active = %d, want 2", s.Active())
	}
	stick.Update(0, 0)
	if s.Active() != 0 {
		t.Errorf("releasing up: active = %d, want 0", s.Active())
	}

	stick.Update(0, 32767)
	stick.Update(0, 0)
	if s.Active() != 6 {
		t.Errorf("toggling down: active = %d, want 6", s.Active())
	}

	up.SetChangeSetCondition(constants.SetChangeDisabled, false)
	if _, _, ok := s.Assignment(keyUp); ok {
		t.Error("disabling the button should remove its switch")
	}

	want := [][2]Set{{0, 2}, {2, 0}, {0, 6}}
	if !reflect.DeepEqual(*changes, want) {
		t.Errorf("changes = %v, want %v", *changes, want)
	}
}

func TestSwitcherAttachFollowsRetarget(t *testing.T) {
	stick := stickmap.NewStick(0, stickmap.StickOptions{})
	up := stick.Button(constants.DirectionUp)
	up.SetChangeSetSelection(3)
	up.SetChangeSetCondition(constants.SetChangeWhileHeld, false)

	s := New(0)
	s.Attach(stick)

	up.SetChangeSetSelection(5)
	if target, _, ok := s.Assignment(keyUp); !ok || target != 5 {
		t.Fatalf("Assignment() target = %d, %v; want 5", target, ok)
	}

	stick.Update(0, -32767)
	if s.Active() != 5 {
		t.Errorf("holding up: active = %d, want 5", s.Active())
	}
	stick.Update(0, 0)
	if s.Active() != 0 {
		t.Errorf("releasing up: active = %d, want 0", s.Active())
	}

	up.SetChangeSetCondition(constants.SetChangeDisabled, false)
	if _, _, ok := s.Assignment(keyUp); ok {
		t.Error("disabled button should stay unregistered")
	}
}
