package planner

import "errors"

// Failure taxonomy. Validation errors never reach the network; request
// failures come back from a collaborator; stale responses are discarded
// under the generation fence. None of these are fatal to the session.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrValidation          = errors.New("trip parameters incomplete")
	ErrWrongPhase          = errors.New("action not allowed in current phase")
	ErrIncompleteSelection = errors.New("selection incomplete for this transition")
	ErrSubmitInFlight      = errors.New("submission already in progress")
	ErrStaleResponse       = errors.New("stale response discarded")
)
