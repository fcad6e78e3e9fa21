package dbft

import (
	"github.com/OnBlockIO/neo-modules/consensus/dbft/block"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/validators"
)

// Reset implements the Lifecycle Controller (spec component 4.H): a
// full re-initialization at view 0, or a partial transition at view >
// 0 that tears down the fallback candidate.
func (r *Round) Reset(view byte) error {
	if view == 0 {
		return r.resetFull()
	}
	return r.resetPartial(view)
}

func (r *Round) resetFull() error {
	changed, err := ValidatorsChanged(r.Ledger)
	if err != nil {
		r.log.Warn("could not evaluate committee rotation, assuming changed", "err", err)
		changed = true
	}

	oldN := r.N()

	set, err := validators.FromLedger(r.Ledger, r.committeeSize())
	if err != nil {
		return err
	}

	head, err := r.Ledger.GetHeader(r.Ledger.CurrentHash())
	if err != nil {
		return err
	}

	r.View = 0
	r.Height = head.Index + 1
	r.Validators = set

	if set.N() != oldN {
		r.witnessSize = block.WitnessSize(set.M(), set.Keys())
	}

	r.Candidates[PriorityCandidate] = r.seedCandidate(head, set.PriorityPrimary(r.Height, 0))
	r.Candidates[FallbackCandidate] = r.seedCandidate(head, set.FallbackPrimary(r.Height, 0))

	r.ChangeView = make([]*payload.Payload, set.N())
	r.LastChangeView = make([]*payload.Payload, set.N())

	r.MyIdx = WatchOnly
	for i, k := range set.Keys() {
		if _, ok := r.Wallet.GetAccount(k); ok {
			r.MyIdx = i
			r.myKey = k
			break
		}
	}

	if changed {
		r.Liveness = r.Liveness.RebuildOnValidatorChange(set.Keys(), r.Height)
	}

	r.Cache.Clear()

	if r.MyIdx >= 0 {
		r.Liveness.Stamp(r.myKey, r.Height)
	}
	return nil
}

func (r *Round) resetPartial(view byte) error {
	if r.Validators == nil {
		return r.resetFull()
	}

	next := make([]*payload.Payload, r.N())
	for i, p := range r.ChangeView {
		if p == nil {
			continue
		}
		cv, err := decodeChangeView(p)
		if err != nil {
			continue
		}
		if cv.NewViewNumber >= view {
			next[i] = p
		}
	}
	r.LastChangeView = next

	r.View = view
	primary := uint8(r.Validators.PriorityPrimary(r.Height, view))
	if r.Candidates[PriorityCandidate] != nil {
		r.Candidates[PriorityCandidate].resetMutable(primary)
	}
	r.Candidates[FallbackCandidate] = nil

	if r.MyIdx >= 0 {
		r.Liveness.Stamp(r.myKey, r.Height)
	}
	return nil
}

func (r *Round) seedCandidate(head *ledger.Header, primaryIndex int) *Candidate {
	c := newCandidate(r.N())
	c.Header.Version = block.Version
	c.Header.PrevHash = head.Hash
	c.Header.Index = r.Height
	c.Header.PrimaryIndex = uint8(primaryIndex)
	c.Header.NextConsensus = head.NextConsensus
	return c
}

func (r *Round) committeeSize() int {
	if r.Validators == nil {
		return 0
	}
	return r.Validators.N()
}
