package dbft

import "errors"

// Error kinds per spec §7. None are retried internally: the core is a
// state machine, not a controller — upper layers decide retry/view
// change.
var (
	// ErrStaleCheckpoint is returned by Load when the persisted
	// Version or Index does not match the chain tip.
	ErrStaleCheckpoint = errors.New("dbft: checkpoint is stale or for the wrong chain")

	// ErrCorruptCheckpoint is returned by Load on any deserialization
	// failure; treated identically to ErrStaleCheckpoint by callers.
	ErrCorruptCheckpoint = errors.New("dbft: checkpoint is corrupt")

	errWrongMessageType = errors.New("dbft: payload does not decode to the expected message type")
)
