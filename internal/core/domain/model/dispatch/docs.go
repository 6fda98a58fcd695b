// Package dispatch provides the Dispatch aggregate: one transport job made of a
// broker reference, an optional driver reference, up to four containers and an
// ordered plan of tasks.
//
// The package includes:
//   - Instruction: the fourteen logistics actions a task can perform
//   - InstructionPolicy (AllowedFollowers, Startable, Endable, ValidatePlan): the adjacency rules of a plan
//   - Container and Appointment: immutable value objects carried by tasks
//   - TaskStatus and Task: a single plan step with its own progress state machine
//   - Status and Dispatch: the aggregate root and its lifecycle state machine
//
// Key business rules:
//   - A plan always holds between 2 and 10 tasks numbered 1..N without gaps
//   - A plan must start with a startable instruction, end with an endable one and
//     every adjacent pair must be allowed by the instruction policy before the dispatch starts
//   - A dispatch with exactly one container assigns it to every task that needs one
//   - Tasks start in plan order; the preceding task must be completed or stopped off
//   - At least one appointment must exist on any dispatch that left the draft status
//
// Status transitions of both state machines are table driven: every move is
// a lookup of (current status, event), and a missing entry is an invalid transition.
package dispatch
