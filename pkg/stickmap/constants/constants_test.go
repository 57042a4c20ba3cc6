package constants

import "testing"

func TestDirectionTokensRoundTrip(t *testing.T) {
	for d := DirectionCentered; d <= DirectionRightStickAxis; d++ {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", d.String(), got, ok, d)
		}
	}

	if got, ok := ParseDirection(" Up_Left "); !ok || got != DirectionUpLeft {
		t.Errorf("ParseDirection(\" Up_Left \") = %v, %v", got, ok)
	}
	if _, ok := ParseDirection("north"); ok {
		t.Error("ParseDirection(\"north\") should fail")
	}
	if s := Direction(42).String(); s != "" {
		t.Errorf("Direction(42).String() = %q, want empty", s)
	}
}

func TestDirectionComponents(t *testing.T) {
	tests := []struct {
		d          Direction
		vertical   Direction
		horizontal Direction
		diagonal   bool
	}{
		{DirectionUp, DirectionUp, DirectionCentered, false},
		{DirectionUpRight, DirectionUp, DirectionRight, true},
		{DirectionRight, DirectionCentered, DirectionRight, false},
		{DirectionDownRight, DirectionDown, DirectionRight, true},
		{DirectionDown, DirectionDown, DirectionCentered, false},
		{DirectionDownLeft, DirectionDown, DirectionLeft, true},
		{DirectionLeft, DirectionCentered, DirectionLeft, false},
		{DirectionUpLeft, DirectionUp, DirectionLeft, true},
		{DirectionLeftStickAxis, DirectionCentered, DirectionCentered, false},
	}

	for _, tt := range tests {
		if got := tt.d.Vertical(); got != tt.vertical {
			t.Errorf("%v.Vertical() = %v, want %v", tt.d, got, tt.vertical)
		}
		if got := tt.d.Horizontal(); got != tt.horizontal {
			t.Errorf("%v.Horizontal() = %v, want %v", tt.d, got, tt.horizontal)
		}
		if got := tt.d.IsDiagonal(); got != tt.diagonal {
			t.Errorf("%v.IsDiagonal() = %v, want %v", tt.d, got, tt.diagonal)
		}
	}

	if !DirectionRightStickAxis.IsAxis() || DirectionRightStickAxis.IsCompass() {
		t.Error("right stick axis marker should be an axis, not a compass direction")
	}
}

func TestSetChangeCondition(t *testing.T) {
	if SetChangeDisabled.IsSwitching() {
		t.Error("disabled should not switch")
	}
	if !SetChangeWhileHeld.IsSwitching() || !SetChangeTwoWay.IsSwitching() {
		t.Error("while-held and two-way should switch")
	}

	for _, c := range []SetChangeCondition{SetChangeDisabled, SetChangeWhileHeld, SetChangeTwoWay} {
		got, ok := ParseSetChangeCondition(c.String())
		if !ok || got != c {
			t.Errorf("ParseSetChangeCondition(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if got, ok := ParseSetChangeCondition(""); !ok || got != SetChangeDisabled {
		t.Errorf("empty condition = %v, %v; want disabled", got, ok)
	}
	if _, ok := ParseSetChangeCondition("one-way"); ok {
		t.Error("one-way is not a supported condition")
	}
}

func TestParseModes(t *testing.T) {
	if m, ok := ParseTurboMode("Gradient"); !ok || m != TurboGradient {
		t.Errorf("ParseTurboMode(Gradient) = %v, %v", m, ok)
	}
	if _, ok := ParseTurboMode("fast"); ok {
		t.Error("ParseTurboMode(fast) should fail")
	}
	if m, ok := ParseStickMode("four_way_cardinal"); !ok || m != StickModeFourWayCardinal {
		t.Errorf("ParseStickMode(four_way_cardinal) = %v, %v", m, ok)
	}
	if m, ok := ParseStickMode(""); !ok || m != StickModeEightWay {
		t.Errorf("ParseStickMode(\"\") = %v, %v", m, ok)
	}
}
