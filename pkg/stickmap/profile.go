package stickmap

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/internal"
)

// Profile is the persisted configuration of one or more sticks.
//
//	name = "Shooter"
//
//	[[stick]]
//	index = 0
//	dead_zone = 8000
//
//	  [[stick.button]]
//	  direction = "up"
//	  slots = ["key:w"]
//	  set_selection = 2
//	  set_condition = "while-held"
type Profile struct {
	Name   string         `toml:"name,omitempty"`
	Sticks []StickProfile `toml:"stick"`
}

// StickProfile configures one stick.
type StickProfile struct {
	Index         int             `toml:"index"`
	Name          string          `toml:"name,omitempty"`
	DeadZone      int             `toml:"dead_zone,omitempty"`
	MaxZone       int             `toml:"max_zone,omitempty"`
	DiagonalRange int             `toml:"diagonal_range,omitempty"`
	Mode          string          `toml:"mode,omitempty"`
	Modifier      *ButtonProfile  `toml:"modifier,omitempty"`
	Buttons       []ButtonProfile `toml:"button,omitempty"`
}

// ButtonProfile configures one directional or modifier button.
type ButtonProfile struct {
	Direction        string   `toml:"direction,omitempty"`
	Name             string   `toml:"name,omitempty"`
	TurboMode        string   `toml:"turbo_mode,omitempty"`
	SetSelection     *int     `toml:"set_selection,omitempty"`
	SetCondition     string   `toml:"set_condition,omitempty"`
	SpringDeadCircle int      `toml:"spring_dead_circle,omitempty"`
	Slots            []string `toml:"slots,omitempty"`
}

// DecodeProfile parses a TOML profile. Unknown keys are rejected.
func DecodeProfile(data string) (*Profile, error) {
	var p Profile
	md, err := toml.Decode(data, &p)
	if err != nil {
		return nil, NewProfileError("decode", err)
	}
	return checkUndecoded(&p, md)
}

// LoadProfile reads a TOML profile from path. Unknown keys are rejected.
func LoadProfile(path string) (*Profile, error) {
	var p Profile
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, NewProfileError("load", err)
	}
	return checkUndecoded(&p, md)
}

func checkUndecoded(p *Profile, md toml.MetaData) (*Profile, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, NewProfileError("decode", fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}
	return p, nil
}

// Save writes the profile as TOML.
func (p *Profile) Save(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return NewProfileError("save", err)
	}
	return nil
}

type buttonPlan struct {
	name      string
	turbo     constants.TurboMode
	target    int
	condition constants.SetChangeCondition
	spring    int
	slots     []Slot
}

func (bp ButtonProfile) plan() (buttonPlan, error) {
	var errs []error

	turbo, ok := constants.ParseTurboMode(bp.TurboMode)
	if !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownTurboMode, bp.TurboMode))
	}
	condition, ok := constants.ParseSetChangeCondition(bp.SetCondition)
	if !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCondition, bp.SetCondition))
	}

	target := constants.NoSet
	if bp.SetSelection != nil {
		target = *bp.SetSelection
		if target < constants.NoSet || target >= constants.MaxSets {
			errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidSet, target))
		}
	}

	if bp.SpringDeadCircle < 0 || bp.SpringDeadCircle > 100 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidSpring, bp.SpringDeadCircle))
	}

	slots := make([]Slot, 0, len(bp.Slots))
	for _, token := range bp.Slots {
		slot, err := ParseSlot(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		slots = append(slots, slot)
	}

	return buttonPlan{
		name:      bp.Name,
		turbo:     turbo,
		target:    target,
		condition: condition,
		spring:    bp.SpringDeadCircle,
		slots:     slots,
	}, errors.Join(errs...)
}

// Validate checks every token in the profile without applying it.
func (p *Profile) Validate() error {
	var errs []error
	for _, sp := range p.Sticks {
		if _, ok := constants.ParseStickMode(sp.Mode); !ok {
			errs = append(errs, fmt.Errorf("stick %d: %w: %q", sp.Index, ErrUnknownStickMode, sp.Mode))
		}
		if sp.Modifier != nil {
			if _, err := sp.Modifier.plan(); err != nil {
				errs = append(errs, fmt.Errorf("stick %d modifier: %w", sp.Index, err))
			}
		}
		for _, bp := range sp.Buttons {
			if d, ok := constants.ParseDirection(bp.Direction); !ok || !d.IsCompass() {
				errs = append(errs, fmt.Errorf("stick %d: %w: %q", sp.Index, ErrUnknownDirection, bp.Direction))
			}
			if _, err := bp.plan(); err != nil {
				errs = append(errs, fmt.Errorf("stick %d %s: %w", sp.Index, bp.Direction, err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return NewProfileError("validate", err)
	}
	return nil
}

// Apply restores the profile onto sticks, matched by index. Every listed
// stick is reset first: zones missing from the profile take their defaults
// and buttons the profile leaves out are cleared. Set change conditions are
// restored passively, so no set assignment events fire; attach set
// switchers afterwards. Nothing is changed when the profile is invalid or
// names a stick that was not passed in.
func (p *Profile) Apply(sticks ...*Stick) error {
	if err := p.Validate(); err != nil {
		return err
	}

	byIndex := make(map[int]*Stick, len(sticks))
	for _, s := range sticks {
		byIndex[s.Index()] = s
	}
	for _, sp := range p.Sticks {
		if _, ok := byIndex[sp.Index]; !ok {
			return NewProfileError("apply", fmt.Errorf("%w: index %d", ErrStickNotFound, sp.Index))
		}
	}

	for _, sp := range p.Sticks {
		s := byIndex[sp.Index]
		mode, _ := constants.ParseStickMode(sp.Mode)

		s.SetName(sp.Name)
		s.SetDeadZone(cmp.Or(sp.DeadZone, constants.DefaultDeadZone))
		s.SetMaxZone(cmp.Or(sp.MaxZone, constants.DefaultMaxZone))
		s.SetDiagonalRange(cmp.Or(sp.DiagonalRange, constants.DefaultDiagonalRange))
		s.SetMode(mode)

		for _, b := range s.Buttons() {
			resetButton(b)
		}
		if m := s.Modifier(); m != nil {
			m.SetName("")
			m.SetTurboMode(constants.TurboNormal)
			m.SetSlots(nil)
		}

		if sp.Modifier != nil && s.Modifier() != nil {
			plan, _ := sp.Modifier.plan()
			m := s.Modifier()
			m.SetName(plan.name)
			m.SetTurboMode(plan.turbo)
			m.SetSlots(plan.slots)
		}

		for _, bp := range sp.Buttons {
			d, _ := constants.ParseDirection(bp.Direction)
			plan, _ := bp.plan()
			b := s.Button(d)

			b.SetName(plan.name)
			b.SetTurboMode(plan.turbo)
			b.SetSpringDeadCircleMultiplier(plan.spring)
			b.SetSlots(plan.slots)
			b.SetChangeSetSelection(plan.target)
			b.SetChangeSetCondition(plan.condition, true)
		}
	}

	internal.GetInternalLogger().Debug("Profile applied", "profile", p.Name, "sticks", len(p.Sticks))
	return nil
}

// resetButton clears every setting a profile can carry.
func resetButton(b *DirectionalButton) {
	b.SetName("")
	b.SetTurboMode(constants.TurboNormal)
	b.SetSpringDeadCircleMultiplier(0)
	b.SetSlots(nil)
	b.SetChangeSetCondition(constants.SetChangeDisabled, true)
}

// Snapshot captures the current configuration of sticks as a profile.
// Buttons without any settings are left out.
func Snapshot(name string, sticks ...*Stick) *Profile {
	p := &Profile{Name: name}

	for _, s := range sticks {
		sp := StickProfile{
			Index:         s.Index(),
			Name:          s.Name(),
			DeadZone:      s.DeadZone(),
			MaxZone:       s.MaxZone(),
			DiagonalRange: s.DiagonalRange(),
			Mode:          s.Mode().String(),
		}

		if m := s.Modifier(); m != nil && (m.Name() != "" || len(m.Slots()) > 0 || m.TurboMode() != constants.TurboNormal) {
			sp.Modifier = &ButtonProfile{
				Name:      m.Name(),
				TurboMode: m.TurboMode().String(),
				Slots:     slotTokens(m.Slots()),
			}
		}

		for _, b := range s.Buttons() {
			bp := ButtonProfile{
				Direction:        b.Direction().String(),
				Name:             b.Name(),
				SpringDeadCircle: b.SpringDeadCircleMultiplier(),
				Slots:            slotTokens(b.Slots()),
			}
			if b.TurboMode() != constants.TurboNormal {
				bp.TurboMode = b.TurboMode().String()
			}
			if b.SetSelectionCondition() != constants.SetChangeDisabled {
				target := b.SetSelection()
				bp.SetSelection = &target
				bp.SetCondition = b.SetSelectionCondition().String()
			}

			if bp.Name == "" && bp.TurboMode == "" && bp.SetSelection == nil &&
				bp.SpringDeadCircle == 0 && len(bp.Slots) == 0 {
				continue
			}
			sp.Buttons = append(sp.Buttons, bp)
		}

		p.Sticks = append(p.Sticks, sp)
	}

	return p
}

func slotTokens(slots []Slot) []string {
	if len(slots) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(slots))
	for _, s := range slots {
		tokens = append(tokens, s.Token())
	}
	return tokens
}
