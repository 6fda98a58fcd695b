package dispatch

import (
	"fmt"
	"strings"

	"drayage/internal/pkg/errs"
)

// Instruction is the physical logistics action performed by a task.
type Instruction int

const (
	// UnknownInstruction catches uninitialized values.
	UnknownInstruction Instruction = iota

	// FetchChassis picks up an empty chassis before the container moves.
	FetchChassis
	// Prepull pulls a loaded container from the terminal ahead of delivery.
	Prepull
	// BobtailTo drives the tractor without chassis or container.
	BobtailTo
	// PickupEmpty picks up an empty container.
	PickupEmpty
	// DropEmpty drops an empty container.
	DropEmpty
	// LiveLoad waits at the shipper while the container is loaded.
	LiveLoad
	// PickupLoaded picks up a loaded container.
	PickupLoaded
	// DropLoaded drops a loaded container.
	DropLoaded
	// LiveUnload waits at the consignee while the container is unloaded.
	LiveUnload
	// TerminateEmpty returns an empty container to the terminal.
	TerminateEmpty
	// TerminateChassis returns the chassis.
	TerminateChassis
	// Ingate delivers a loaded container through the terminal gate.
	Ingate
	// YardPull pulls a container that was left in the yard.
	YardPull
	// StreetTurn hands an empty container directly to the next shipper.
	StreetTurn
)

// instructionCount is the number of valid instructions.
const instructionCount = int(StreetTurn)

func getInstructionStrings() map[Instruction]string {
	return map[Instruction]string{
		UnknownInstruction: "UNKNOWN",
		FetchChassis:       "FETCH_CHASSIS",
		Prepull:            "PREPULL",
		BobtailTo:          "BOBTAIL_TO",
		PickupEmpty:        "PICKUP_EMPTY",
		DropEmpty:          "DROP_EMPTY",
		LiveLoad:           "LIVE_LOAD",
		PickupLoaded:       "PICKUP_LOADED",
		DropLoaded:         "DROP_LOADED",
		LiveUnload:         "LIVE_UNLOAD",
		TerminateEmpty:     "TERMINATE_EMPTY",
		TerminateChassis:   "TERMINATE_CHASSIS",
		Ingate:             "INGATE",
		YardPull:           "YARD_PULL",
		StreetTurn:         "STREET_TURN",
	}
}

// Instructions returns every valid instruction in declaration order.
func Instructions() []Instruction {
	all := make([]Instruction, 0, instructionCount)
	for i := FetchChassis; i <= StreetTurn; i++ {
		all = append(all, i)
	}
	return all
}

// ParseInstruction accepts the upper-snake name in any letter case,
// e.g. "pickup_empty" or "PICKUP_EMPTY".
func ParseInstruction(s string) (Instruction, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, str := range getInstructionStrings() {
		if i != UnknownInstruction && str == name {
			return i, nil
		}
	}
	return UnknownInstruction, errs.NewValueIsInvalidErrorWithCause(
		"instruction",
		fmt.Errorf("%q is not a known instruction", s),
	)
}

// Validate rejects UnknownInstruction and out of range values.
func (i Instruction) Validate() error {
	if i < FetchChassis || i > StreetTurn {
		return errs.NewValueIsInvalidErrorWithCause("instruction", fmt.Errorf("%d is not a valid instruction", i))
	}
	return nil
}

func (i Instruction) String() string {
	if str, ok := getInstructionStrings()[i]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresContainer reports whether a task with this instruction moves a container.
// Chassis and bobtail moves never do.
func (i Instruction) RequiresContainer() bool {
	switch i { //nolint:exhaustive // every other instruction moves a container
	case FetchChassis, BobtailTo, TerminateChassis, UnknownInstruction:
		return false
	default:
		return true
	}
}

// CanStopOff reports whether a task with this instruction may be finished in place
// as a mid-route stop.
func (i Instruction) CanStopOff() bool {
	switch i { //nolint:exhaustive // every other instruction allows a stop-off
	case BobtailTo, FetchChassis, TerminateChassis, StreetTurn, UnknownInstruction:
		return false
	default:
		return true
	}
}
