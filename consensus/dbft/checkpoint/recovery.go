package checkpoint

import (
	"github.com/OnBlockIO/neo-modules/consensus/dbft"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

// BuildRecoveryMessage assembles the payloads a lagging node needs to
// catch up with the round without replaying every message: every known
// change-view payload, the priority candidate's prepare request, every
// non-null preparation on the priority candidate, and every non-null
// commit across both candidates.
func BuildRecoveryMessage(r *dbft.Round) *message.RecoveryMessage {
	rm := &message.RecoveryMessage{
		Base: message.Base{
			BlockIndex:     r.Height,
			ValidatorIndex: uint8(r.MyIdx),
			ViewNumber:     r.View,
		},
	}

	for _, p := range r.ChangeView {
		if p != nil {
			rm.ChangeViewPayloads = append(rm.ChangeViewPayloads, typedOf(p))
		}
	}

	priority := r.Candidates[dbft.PriorityCandidate]
	if priority != nil {
		for i, p := range priority.Preparation {
			if p == nil {
				continue
			}
			if i == int(priority.Header.PrimaryIndex) {
				t := typedOf(p)
				rm.PrepareRequestPayload = &t
				continue
			}
			rm.PreparationPayloads = append(rm.PreparationPayloads, typedOf(p))
		}
	}

	for _, c := range r.Candidates {
		if c == nil {
			continue
		}
		for _, p := range c.Commit {
			if p != nil {
				rm.CommitPayloads = append(rm.CommitPayloads, typedOf(p))
			}
		}
	}

	return rm
}

func typedOf(p *payload.Payload) message.Typed {
	m, err := p.Decoded()
	if err != nil {
		return message.Typed{}
	}
	return message.Typed{Message: m}
}
