// Package sets switches between configuration sets in response to
// directional buttons.
//
// Buttons announce live set switches through their set assignment events;
// a Switcher records them and applies them when the buttons are pressed
// and released.
//
// # Basic Usage
//
//	stick := stickmap.NewStick(0, stickmap.StickOptions{})
//
//	up := stick.Button(constants.DirectionUp)
//	up.SetChangeSetSelection(2)
//
//	sw := sets.New(0)
//	sw.Attach(stick)
//	sw.OnChange(func(from, to sets.Set) {
//	    log.Printf("set %d -> %d", from, to)
//	})
//
//	// Registers the switch through the button's set assignment event.
//	up.SetChangeSetCondition(constants.SetChangeWhileHeld, false)
//
//	stick.Update(0, -32767) // set 0 -> 2
//	stick.Update(0, 0)      // set 2 -> 0
//
// # Switch Conditions
//
// While-held switches push the current set on a Stack and restore it on
// release. Releases may arrive in any order: removing an entry from the
// middle of the stack hands its origin set to the entry above it, so the
// last release always lands on the set that was active before the first
// press.
//
// Two-way switches toggle: the first press moves to the target, the next
// press of the same button moves back.
package sets
