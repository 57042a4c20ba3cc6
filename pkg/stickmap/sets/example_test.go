package sets_test

import (
	"fmt"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/sets"
)

// Example demonstrates a while-held set switch driven by a stick.
func Example() {
	stick := stickmap.NewStick(0, stickmap.StickOptions{})

	up := stick.Button(constants.DirectionUp)
	up.SetChangeSetSelection(2)

	sw := sets.New(0)
	sw.Attach(stick)
	sw.OnChange(func(from, to sets.Set) {
		fmt.Printf("set %d -> %d\n", from, to)
	})

	// Registers the switch through the button's set assignment event
	up.SetChangeSetCondition(constants.SetChangeWhileHeld, false)

	stick.Update(0, -32767)
	stick.Update(0, 0)

	// Output:
	// set 0 -> 2
	// set 2 -> 0
}

// Example_twoWay demonstrates a toggle that returns on the second press.
func Example_twoWay() {
	stick := stickmap.NewStick(0, stickmap.StickOptions{})

	right := stick.Button(constants.DirectionRight)
	right.SetChangeSetSelection(5)
	right.SetChangeSetCondition(constants.SetChangeTwoWay, true)

	// Passive restoration emits nothing, so Attach picks up the switch
	sw := sets.New(1)
	sw.Attach(stick)

	for i := 0; i < 2; i++ {
		stick.Update(32767, 0)
		stick.Update(0, 0)
		fmt.Println("active:", sw.Active())
	}

	// Output:
	// active: 5
	// active: 1
}

// Example_overlapping demonstrates releasing while-held switches out of order.
func Example_overlapping() {
	move := sets.Key{StickIndex: 0, Direction: constants.DirectionUp}
	look := sets.Key{StickIndex: 1, Direction: constants.DirectionLeft}

	sw := sets.New(0).
		Register(move, 2, constants.SetChangeWhileHeld).
		Register(look, 3, constants.SetChangeWhileHeld)

	sw.Press(move)
	sw.Press(look)
	fmt.Println("both held:", sw.Active())

	sw.Release(move)
	fmt.Println("look held:", sw.Active())

	sw.Release(look)
	fmt.Println("released:", sw.Active())

	// Output:
	// both held: 3
	// look held: 3
	// released: 0
}
