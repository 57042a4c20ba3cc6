package stickmap

import (
	"strings"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
)

// VirtualButton is the capability set shared by every button variant:
// held state, assigned slots, display names and turbo eligibility.
type VirtualButton interface {
	ButtonState() bool
	HasActiveSlots() bool
	ActiveZoneList() []Slot
	CalculatedActiveZoneSummary() string
	Name() string
	DefaultName() string
	IsPartRealAxis() bool
}

// Button is the base virtual button. It stores the slot list, names, held
// state and set change settings that every button variant shares.
// Variants embed it and add their own naming and gating rules.
type Button struct {
	name        string
	defaultName string

	slots []Slot
	cycle int

	pressed atomic.Bool

	turboMode                  constants.TurboMode
	setSelection               int
	setSelectionCondition      constants.SetChangeCondition
	springDeadCircleMultiplier int

	activeZoneString string

	propertyObservers   []func()
	activeZoneObservers []func(summary string)
	stateObservers      []func(pressed bool)
}

// NewButton creates a button with no slots and no set change target.
func NewButton() *Button {
	return &Button{
		setSelection: constants.NoSet,
	}
}

// Name returns the user-assigned display name, or "" when unset.
func (b *Button) Name() string {
	return b.name
}

// SetName sets the user-assigned display name.
func (b *Button) SetName(name string) {
	if name == b.name {
		return
	}
	b.name = name
	b.emitPropertyUpdated()
}

// DefaultName returns the built-in display name, or "" when unset.
func (b *Button) DefaultName() string {
	return b.defaultName
}

// SetDefaultName sets the built-in display name.
func (b *Button) SetDefaultName(name string) {
	if name == b.defaultName {
		return
	}
	b.defaultName = name
	b.emitPropertyUpdated()
}

// AddSlot appends an output slot.
func (b *Button) AddSlot(s Slot) {
	b.slots = append(b.slots, s)
	b.BuildActiveZoneSummaryString()
	b.emitPropertyUpdated()
}

// SetSlots replaces every output slot and restarts the cycle.
func (b *Button) SetSlots(slots []Slot) {
	b.slots = append([]Slot(nil), slots...)
	b.cycle = 0
	b.BuildActiveZoneSummaryString()
	b.emitPropertyUpdated()
}

// Slots returns a copy of the assigned slots, cycle delimiters included.
func (b *Button) Slots() []Slot {
	return append([]Slot(nil), b.slots...)
}

// cycleGroups splits the slot list on cycle delimiters. There is always at
// least one group, possibly empty.
func (b *Button) cycleGroups() [][]Slot {
	groups := [][]Slot{nil}
	for _, s := range b.slots {
		if s.Kind == SlotCycle {
			groups = append(groups, nil)
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], s)
	}
	return groups
}

// ActiveZoneList returns the slots of the current cycle group: the slots
// that are active while the button is held, or that would activate on the
// next press.
func (b *Button) ActiveZoneList() []Slot {
	groups := b.cycleGroups()
	return append([]Slot(nil), groups[b.cycle%len(groups)]...)
}

// HasActiveSlots reports whether the button is held with at least one slot
// currently executing.
func (b *Button) HasActiveSlots() bool {
	return b.ButtonState() && len(b.ActiveZoneList()) > 0
}

// ButtonState reports whether the button is currently held.
func (b *Button) ButtonState() bool {
	return b.pressed.Load()
}

// SetButtonState presses or releases the button and reports whether the
// state changed. Releasing advances to the next cycle group.
func (b *Button) SetButtonState(pressed bool) bool {
	if b.pressed.Swap(pressed) == pressed {
		return false
	}

	if !pressed {
		if groups := b.cycleGroups(); len(groups) > 1 {
			b.cycle = (b.cycle + 1) % len(groups)
		}
	}

	b.BuildActiveZoneSummaryString()
	for _, fn := range b.stateObservers {
		fn(pressed)
	}
	return true
}

// BuildActiveZoneSummary formats a slot list as a comma separated string.
func (b *Button) BuildActiveZoneSummary(list []Slot) string {
	labels := make([]string, 0, len(list))
	for _, s := range list {
		if s.Kind == SlotCycle {
			continue
		}
		labels = append(labels, s.String())
	}
	return strings.Join(labels, ", ")
}

// BuildActiveZoneSummaryString refreshes the cached summary and notifies
// active zone observers.
func (b *Button) BuildActiveZoneSummaryString() {
	b.activeZoneString = b.BuildActiveZoneSummary(b.ActiveZoneList())
	for _, fn := range b.activeZoneObservers {
		fn(b.activeZoneString)
	}
}

// ActiveZoneString returns the summary cached by the last rebuild.
func (b *Button) ActiveZoneString() string {
	return b.activeZoneString
}

// ActiveZoneSummary describes the slots of the current cycle group: the
// slots active while the button is held, or that activate on its next press.
func (b *Button) ActiveZoneSummary() string {
	return b.BuildActiveZoneSummary(b.ActiveZoneList())
}

// CalculatedActiveZoneSummary describes everything pressing the button
// produces. Plain buttons produce only their own slots.
func (b *Button) CalculatedActiveZoneSummary() string {
	return b.ActiveZoneSummary()
}

// TurboMode returns the current turbo mode.
func (b *Button) TurboMode() constants.TurboMode {
	return b.turboMode
}

// IsPartRealAxis reports whether the button is driven by a physical axis.
// Plain buttons are not.
func (b *Button) IsPartRealAxis() bool {
	return false
}

// SetSelection returns the configuration set the button switches to, or
// constants.NoSet.
func (b *Button) SetSelection() int {
	return b.setSelection
}

// SetChangeSetSelection sets the configuration set to switch to. Values
// outside NoSet..MaxSets-1 are ignored.
func (b *Button) SetChangeSetSelection(index int) {
	if index < constants.NoSet || index >= constants.MaxSets || index == b.setSelection {
		return
	}
	b.setSelection = index
	b.BuildActiveZoneSummaryString()
	b.emitPropertyUpdated()
}

// SetSelectionCondition returns the current set change condition.
func (b *Button) SetSelectionCondition() constants.SetChangeCondition {
	return b.setSelectionCondition
}

// SpringDeadCircleMultiplier returns the spring dead circle percentage.
func (b *Button) SpringDeadCircleMultiplier() int {
	return b.springDeadCircleMultiplier
}

// SetSpringDeadCircleMultiplier sets the spring dead circle percentage.
// Values outside 0..100 are ignored.
func (b *Button) SetSpringDeadCircleMultiplier(value int) {
	if value < 0 || value > 100 || value == b.springDeadCircleMultiplier {
		return
	}
	b.springDeadCircleMultiplier = value
	b.emitPropertyUpdated()
}

// OnPropertyUpdated registers a callback fired after any setting changes.
func (b *Button) OnPropertyUpdated(fn func()) {
	b.propertyObservers = append(b.propertyObservers, fn)
}

// OnActiveZoneChanged registers a callback fired whenever the cached
// active zone summary is rebuilt.
func (b *Button) OnActiveZoneChanged(fn func(summary string)) {
	b.activeZoneObservers = append(b.activeZoneObservers, fn)
}

// OnStateChanged registers a callback fired when the button is pressed or released.
func (b *Button) OnStateChanged(fn func(pressed bool)) {
	b.stateObservers = append(b.stateObservers, fn)
}

func (b *Button) emitPropertyUpdated() {
	for _, fn := range b.propertyObservers {
		fn()
	}
}
