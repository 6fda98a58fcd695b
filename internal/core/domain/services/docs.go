// Package services provides domain services that orchestrate business operations
// across more than one aggregate of the dispatch system.
//
// The package includes:
//   - DispatchCoordinator: the only code allowed to change a Dispatch and a Driver
//     together (driver assignment and the start/pause/resume/complete/cancel and
//     revert-to-draft macro transitions)
//
// Services hold no state and perform no I/O. Callers load both aggregates, call the
// service and persist both aggregates in one transaction.
package services
