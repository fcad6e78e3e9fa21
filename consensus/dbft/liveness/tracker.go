// Package liveness implements the per-validator "height of last seen
// message" table (spec component 4.D) that feeds the CountFailed
// predicate.
package liveness

import "github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"

// Tracker is the LastSeenMessage map of spec §3/§4.D.
type Tracker struct {
	seen map[ledger.PublicKey]uint32
}

// New builds an empty Tracker.
func New() *Tracker {
	return &Tracker{seen: make(map[ledger.PublicKey]uint32)}
}

// Observe records that a message at blockIndex arrived from validator,
// raising its last-seen height if blockIndex is more recent.
func (t *Tracker) Observe(validator ledger.PublicKey, blockIndex uint32) {
	if cur, ok := t.seen[validator]; !ok || blockIndex > cur {
		t.seen[validator] = blockIndex
	}
}

// Stamp raises validator's last-seen height to at least height, used by the
// lifecycle controller when we are about to act in a round (spec
// invariant 7: LastSeenMessage[Vs[Mi]] >= H whenever we send a payload).
func (t *Tracker) Stamp(validator ledger.PublicKey, height uint32) {
	if cur, ok := t.seen[validator]; !ok || height > cur {
		t.seen[validator] = height
	}
}

// LastSeen returns the last-seen height for validator and whether any
// message has ever been observed from it.
func (t *Tracker) LastSeen(validator ledger.PublicKey) (uint32, bool) {
	h, ok := t.seen[validator]
	return h, ok
}

// CountFailed returns the number of validators, among the given set,
// whose last-seen height is absent or strictly less than height-1, per
// spec §4.D.
func (t *Tracker) CountFailed(validators []ledger.PublicKey, height uint32) int {
	failed := 0
	for _, v := range validators {
		h, ok := t.seen[v]
		if !ok || (height > 0 && h < height-1) {
			failed++
		}
	}
	return failed
}

// RebuildOnValidatorChange returns a fresh Tracker carrying forward
// entries for validators still present in newSet, and initializing
// validators new to the committee to currentHeight — not the −1
// sentinel a stale comment in the source implies; spec §9 documents
// this as the implemented (and followed) behavior.
func (t *Tracker) RebuildOnValidatorChange(newSet []ledger.PublicKey, currentHeight uint32) *Tracker {
	next := New()
	for _, v := range newSet {
		if h, ok := t.seen[v]; ok {
			next.seen[v] = h
		} else {
			next.seen[v] = currentHeight
		}
	}
	return next
}
