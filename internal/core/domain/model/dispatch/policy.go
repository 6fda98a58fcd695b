package dispatch

import "fmt"

// instructionSet is a bitset of instructions indexed by ordinal.
type instructionSet uint16

func (s instructionSet) has(i Instruction) bool {
	if i.Validate() != nil {
		return false
	}
	return s&(1<<i) != 0
}

func (s instructionSet) members() []Instruction {
	out := make([]Instruction, 0, instructionCount)
	for _, i := range Instructions() {
		if s.has(i) {
			out = append(out, i)
		}
	}
	return out
}

// allowedFollowers is the instruction policy: for each instruction, the
// instructions that may come right after it in a plan.
// YARD_PULL is never a follower; it only enters a plan after a stop-off.
var allowedFollowers = [...]instructionSet{
	UnknownInstruction: 0,
	FetchChassis:       1<<Prepull | 1<<PickupEmpty | 1<<PickupLoaded,
	Prepull:            1<<DropLoaded | 1<<LiveUnload,
	BobtailTo:          1<<PickupEmpty | 1<<PickupLoaded,
	PickupEmpty:        1<<DropEmpty | 1<<LiveLoad | 1<<TerminateEmpty | 1<<StreetTurn,
	DropEmpty:          1<<BobtailTo | 1<<PickupEmpty | 1<<PickupLoaded,
	LiveLoad:           1<<LiveLoad | 1<<Ingate,
	PickupLoaded:       1<<DropLoaded | 1<<LiveUnload | 1<<Ingate,
	DropLoaded:         1<<BobtailTo | 1<<PickupEmpty | 1<<PickupLoaded,
	LiveUnload:         1<<LiveUnload | 1<<TerminateEmpty | 1<<StreetTurn,
	TerminateEmpty:     1 << TerminateChassis,
	TerminateChassis:   0,
	Ingate:             1 << TerminateChassis,
	YardPull: 1<<LiveLoad | 1<<LiveUnload | 1<<DropEmpty | 1<<DropLoaded |
		1<<TerminateEmpty | 1<<Ingate | 1<<StreetTurn,
	StreetTurn: 0,
}

const (
	startable instructionSet = 1<<FetchChassis | 1<<BobtailTo | 1<<PickupEmpty | 1<<PickupLoaded | 1<<Prepull
	endable   instructionSet = 1<<BobtailTo | 1<<TerminateEmpty | 1<<Ingate | 1<<TerminateChassis | 1<<StreetTurn
)

// AllowedFollowers returns the instructions that may directly follow i.
// The result is a fresh slice in declaration order; invalid instructions have no followers.
func AllowedFollowers(i Instruction) []Instruction {
	if i.Validate() != nil {
		return []Instruction{}
	}
	return allowedFollowers[i].members()
}

// Startable returns the instructions a plan may begin with.
func Startable() []Instruction {
	return startable.members()
}

// Endable returns the instructions a plan may end with.
func Endable() []Instruction {
	return endable.members()
}

// CanFollow reports whether next may come right after prev.
func CanFollow(prev, next Instruction) bool {
	if prev.Validate() != nil {
		return false
	}
	return allowedFollowers[prev].has(next)
}

// IsStartable reports whether a plan may begin with i.
func IsStartable(i Instruction) bool {
	return startable.has(i)
}

// IsEndable reports whether a plan may end with i.
func IsEndable(i Instruction) bool {
	return endable.has(i)
}

// PlanViolation is one broken policy rule. Position is the 1-based task
// priority the rule was checked at, or 0 for rules about the plan as a whole.
type PlanViolation struct {
	Position int
	Err      error
}

func (v PlanViolation) Error() string {
	if v.Position == 0 {
		return v.Err.Error()
	}
	return fmt.Sprintf("task %d: %s", v.Position, v.Err)
}

func (v PlanViolation) Unwrap() error {
	return v.Err
}

// ValidatePlan checks a sequence of instructions against the instruction policy
// and the plan length bounds, reporting every violation rather than the first.
// An empty result means the plan may be started as far as instructions go.
//
// Example:
//
//	violations := dispatch.ValidatePlan([]dispatch.Instruction{
//	    dispatch.DropLoaded, dispatch.PickupEmpty, dispatch.TerminateEmpty,
//	})
//	// violations[0].Err == dispatch.ErrIllogicalFirstInstruction
func ValidatePlan(instructions []Instruction) []PlanViolation {
	violations := make([]PlanViolation, 0)

	switch {
	case len(instructions) < MinTasks:
		violations = append(violations, PlanViolation{Err: ErrTooFewTasks})
	case len(instructions) > MaxTasks:
		violations = append(violations, PlanViolation{Err: ErrTooManyTasks})
	}

	if len(instructions) == 0 {
		return violations
	}

	if !IsStartable(instructions[0]) {
		violations = append(violations, PlanViolation{Position: 1, Err: ErrIllogicalFirstInstruction})
	}

	for idx := 1; idx < len(instructions); idx++ {
		if !CanFollow(instructions[idx-1], instructions[idx]) {
			violations = append(violations, PlanViolation{Position: idx + 1, Err: ErrIllogicalAdjacentInstructions})
		}
	}

	if last := len(instructions); !IsEndable(instructions[last-1]) {
		violations = append(violations, PlanViolation{Position: last, Err: ErrIllogicalLastInstruction})
	}

	return violations
}
