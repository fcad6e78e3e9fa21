// Package dbft is the dBFT round state machine: the in-memory context
// over which one block-production round executes (spec §1-§5). It owns
// the validator set view, the two candidate proposal slots, the
// view-wide change-view slots, the message cache and the liveness
// tracker, and exposes the derived predicates the outer protocol driver
// reads to decide what to do next.
package dbft

import (
	"github.com/OnBlockIO/neo-modules/consensus/dbft/cache"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/liveness"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/validators"
	"github.com/OnBlockIO/neo-modules/internal/log"
)

// PriorityCandidate and FallbackCandidate index the two-element
// candidate array (spec §3, §9 "Dual candidate").
const (
	PriorityCandidate = 0
	FallbackCandidate = 1
)

// WatchOnly is the sentinel MyIndex value for a node holding no
// committee key (spec invariant 2).
const WatchOnly = -1

// PrimaryTimerMultiplier is exposed as a hook so outer layers can scale
// the primary timeout; spec §5 fixes it at 1.0 and does not prescribe
// any other value.
const PrimaryTimerMultiplier = 1.0

// Round is the tuple of spec §3: height, view, validator list, my
// index, and the two candidate proposals.
type Round struct {
	Height uint32
	View   byte
	MyIdx  int

	Validators *validators.Set
	Candidates [2]*Candidate

	ChangeView     []*payload.Payload
	LastChangeView []*payload.Payload

	Cache    *cache.Cache
	Liveness *liveness.Tracker

	Ledger ledger.Ledger
	Wallet ledger.Wallet

	myKey       ledger.PublicKey
	witnessSize int

	log *log.Logger
}

// New creates a bare Round bound to its external collaborators. Call
// Reset(0) before using it, the way the lifecycle controller does on
// startup (spec §3 "Lifecycles").
func New(l ledger.Ledger, w ledger.Wallet, cacheSize int) *Round {
	return &Round{
		Ledger:   l,
		Wallet:   w,
		Cache:    cache.New(cacheSize),
		Liveness: liveness.New(),
		MyIdx:    WatchOnly,
		log:      log.New("dbft"),
	}
}

// N is the committee size for the current round.
func (r *Round) N() int {
	if r.Validators == nil {
		return 0
	}
	return r.Validators.N()
}

// F is the maximum tolerated faulty validator count.
func (r *Round) F() int {
	if r.Validators == nil {
		return 0
	}
	return r.Validators.F()
}

// M is the quorum size.
func (r *Round) M() int {
	if r.Validators == nil {
		return 0
	}
	return r.Validators.M()
}

// WitnessSize returns the cached upper-bound witness size estimate
// (spec §4.F `_witnessSize`), recomputed whenever N changes.
func (r *Round) WitnessSize() int { return r.witnessSize }

// MyKey is the committee public key this node signs with, valid only
// when MyIdx >= 0.
func (r *Round) MyKey() ledger.PublicKey { return r.myKey }
