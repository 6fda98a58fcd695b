package ports

// Outcome labels for DispatchMetrics.ObserveTransition.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// DispatchMetrics receives operational signals about dispatch lifecycle changes.
type DispatchMetrics interface {
	// ObserveTransition records one dispatch macro transition attempt.
	// action is the transition name (start, pause, ...), outcome one of the Outcome constants.
	ObserveTransition(action, outcome string)

	// ObserveStartRollback records a start that was compensated back to draft.
	ObserveStartRollback()

	// SetDispatchCounts publishes the number of dispatches per status name.
	SetDispatchCounts(counts map[string]int)
}
