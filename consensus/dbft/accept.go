package dbft

import (
	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

// Accept writes a decoded, already-verified payload into its slot (spec
// §4.B): the driver resolves equivocation and signature checks before
// ever calling this, so Accept itself only ever overwrites — it never
// refuses a second payload for an already-filled slot. Every payload
// that reaches here, regardless of slot outcome, updates the liveness
// tracker and the decode cache (spec §4.C, §4.D).
func (r *Round) Accept(p *payload.Payload, senderIndex int) error {
	m, err := r.cachedDecode(p)
	if err != nil {
		return err
	}

	r.Liveness.Observe(r.senderKey(senderIndex), m.GetBlockIndex())

	switch body := m.(type) {
	case *message.PrepareRequest:
		r.acceptPreparation(p, senderIndex, body.GetViewNumber())
	case *message.PrepareResponse:
		r.acceptPreparation(p, senderIndex, body.GetViewNumber())
	case *message.PreCommit:
		r.acceptCandidateSlot(p, senderIndex, func(c *Candidate) []*payload.Payload { return c.PreCommit })
	case *message.Commit:
		r.acceptCandidateSlot(p, senderIndex, func(c *Candidate) []*payload.Payload { return c.Commit })
	case *message.ChangeView:
		r.acceptChangeView(p, senderIndex)
	}
	return nil
}

// acceptPreparation routes a view-0 preparation payload whose sender is
// the fallback candidate's primary to the fallback candidate (dual
// proposal, spec invariant 3); every other preparation goes to the
// priority candidate, the only one that exists at any later view.
func (r *Round) acceptPreparation(p *payload.Payload, senderIndex int, view byte) {
	candidate := r.Candidates[PriorityCandidate]
	if view == 0 {
		if fb := r.Candidates[FallbackCandidate]; fb != nil && senderIndex == int(fb.Header.PrimaryIndex) {
			candidate = fb
		}
	}
	if candidate == nil || senderIndex < 0 || senderIndex >= len(candidate.Preparation) {
		return
	}
	candidate.Preparation[senderIndex] = p
}

// acceptCandidateSlot writes p into the named slot array on every live
// candidate; PreCommit and Commit are not candidate-disambiguated by
// the message itself, so the payload lands in whichever candidate(s)
// are still live for this sender's index.
func (r *Round) acceptCandidateSlot(p *payload.Payload, senderIndex int, slot func(*Candidate) []*payload.Payload) {
	if senderIndex < 0 {
		return
	}
	for _, c := range r.Candidates {
		if c == nil {
			continue
		}
		s := slot(c)
		if senderIndex < len(s) {
			s[senderIndex] = p
		}
	}
}

func (r *Round) acceptChangeView(p *payload.Payload, senderIndex int) {
	if senderIndex < 0 || senderIndex >= len(r.ChangeView) {
		return
	}
	r.ChangeView[senderIndex] = p
}

func (r *Round) cachedDecode(p *payload.Payload) (message.Message, error) {
	hash := p.Hash()
	if cached := r.Cache.Message(hash); cached != nil {
		return cached, nil
	}
	m, err := p.Decoded()
	if err != nil {
		return nil, err
	}
	r.Cache.TryInsert(hash, m)
	return m, nil
}

func (r *Round) senderKey(senderIndex int) ledger.PublicKey {
	var zero ledger.PublicKey
	if r.Validators == nil || senderIndex < 0 || senderIndex >= len(r.Validators.Keys()) {
		return zero
	}
	return r.Validators.Keys()[senderIndex]
}
