package dbft

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

// predicates.go implements the derived predicates of spec §4.E: pure
// functions of the Round's current state, never stored, always
// recomputed from the slot tables and view-wide fields.

// IsPriorityPrimary reports whether this node is the priority primary
// for the current (height, view): Mi == (H - V) mod N.
func (r *Round) IsPriorityPrimary() bool {
	if r.MyIdx < 0 || r.Validators == nil {
		return false
	}
	return r.MyIdx == r.Validators.PriorityPrimary(r.Height, r.View)
}

// IsFallbackPrimary reports whether this node is the fallback primary:
// Mi == (H - V - 1) mod N. Meaningful only while V = 0 (spec invariant
// 3); the predicate is still well-defined at V > 0, it simply never
// matters because Candidates[FallbackCandidate] is nil there.
func (r *Round) IsFallbackPrimary() bool {
	if r.MyIdx < 0 || r.Validators == nil {
		return false
	}
	return r.MyIdx == r.Validators.FallbackPrimary(r.Height, r.View)
}

// IsBackup reports the asymmetric "backup" role spec §4.E calls out: a
// node that is not the priority primary but is the fallback primary.
// Every other non-primary node is a plain validator.
func (r *Round) IsBackup() bool {
	return r.MyIdx >= 0 && !r.IsPriorityPrimary() && r.IsFallbackPrimary()
}

// WatchOnlyNode reports whether this node holds no committee key.
func (r *Round) WatchOnlyNode() bool {
	return r.MyIdx < 0
}

// RequestSentOrReceived reports whether the primary's preparation slot
// is non-null for either candidate.
func (r *Round) RequestSentOrReceived() bool {
	for k, c := range r.Candidates {
		if c == nil {
			continue
		}
		primary := r.primaryIndexFor(k)
		if primary >= 0 && primary < len(c.Preparation) && c.Preparation[primary] != nil {
			return true
		}
	}
	return false
}

// ResponseSent reports whether this node's own preparation slot is
// non-null for either candidate.
func (r *Round) ResponseSent() bool {
	if r.WatchOnlyNode() {
		return false
	}
	for _, c := range r.Candidates {
		if c == nil {
			continue
		}
		if r.MyIdx < len(c.Preparation) && c.Preparation[r.MyIdx] != nil {
			return true
		}
	}
	return false
}

// CommitSent reports whether this node's own commit slot is non-null
// for either candidate.
func (r *Round) CommitSent() bool {
	if r.WatchOnlyNode() {
		return false
	}
	for _, c := range r.Candidates {
		if c == nil {
			continue
		}
		if r.MyIdx < len(c.Commit) && c.Commit[r.MyIdx] != nil {
			return true
		}
	}
	return false
}

// BlockSent reports whether either candidate has been finalized by the
// Block Builder — the terminal marker of spec §4.E/§5.
func (r *Round) BlockSent() bool {
	for _, c := range r.Candidates {
		if c != nil && c.Built != nil {
			return true
		}
	}
	return false
}

// ViewChanging reports whether this node has proposed a view strictly
// greater than the current one.
func (r *Round) ViewChanging() bool {
	if r.WatchOnlyNode() || r.MyIdx >= len(r.ChangeView) {
		return false
	}
	p := r.ChangeView[r.MyIdx]
	if p == nil {
		return false
	}
	cv, err := r.decodeChangeView(p)
	if err != nil {
		return false
	}
	return cv.NewViewNumber > r.View
}

// CountCommitted returns the number of distinct validator indices with
// a non-null commit slot in either candidate (spec §8 property 4: <= N,
// non-decreasing within one round).
func (r *Round) CountCommitted() int {
	n := r.N()
	count := 0
	for i := 0; i < n; i++ {
		committed := false
		for _, c := range r.Candidates {
			if c != nil && i < len(c.Commit) && c.Commit[i] != nil {
				committed = true
				break
			}
		}
		if committed {
			count++
		}
	}
	return count
}

// CountFailed returns the number of validators whose last-seen height
// is absent or < H-1 (spec §4.D).
func (r *Round) CountFailed() int {
	if r.Validators == nil {
		return 0
	}
	return r.Liveness.CountFailed(r.Validators.Keys(), r.Height)
}

// MoreThanFNodesCommittedOrLost is CountCommitted + CountFailed > F.
func (r *Round) MoreThanFNodesCommittedOrLost() bool {
	return r.CountCommitted()+r.CountFailed() > r.F()
}

// NotAcceptingPayloadsDueToViewChanging is the safety valve of spec
// §4.E: once more than F nodes have committed or are lost, a node
// trying to change view must still accept protocol payloads.
func (r *Round) NotAcceptingPayloadsDueToViewChanging() bool {
	return r.ViewChanging() && !r.MoreThanFNodesCommittedOrLost()
}

// ValidatorsChanged reports whether the committed next-consensus hash
// differs between the chain tip and its parent, i.e. whether the
// committee rotated between the two most recently finalized blocks.
// Used only to decide whether the liveness tracker needs rebuilding
// (spec §4.E).
func ValidatorsChanged(l ledger.Ledger) (bool, error) {
	cur, err := l.GetHeader(l.CurrentHash())
	if err != nil {
		return false, err
	}
	if cur.PrevHash == (common.Hash{}) {
		return true, nil
	}
	prev, err := l.GetHeader(cur.PrevHash)
	if err != nil {
		return false, err
	}
	return cur.NextConsensus != prev.NextConsensus, nil
}

func (r *Round) primaryIndexFor(candidateIdx int) int {
	switch candidateIdx {
	case PriorityCandidate:
		if r.Validators == nil {
			return -1
		}
		return r.Validators.PriorityPrimary(r.Height, r.View)
	case FallbackCandidate:
		if r.Validators == nil {
			return -1
		}
		return r.Validators.FallbackPrimary(r.Height, r.View)
	default:
		return -1
	}
}
