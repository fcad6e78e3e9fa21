package dbft

import (
	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

// decodeChangeView decodes a cached or wire payload into its
// message.ChangeView body, consulting the Round's message cache before
// falling back to a full decode (spec component 4.C: "read-through when
// predicates need to inspect a stored payload's fields").
func (r *Round) decodeChangeView(p *payload.Payload) (*message.ChangeView, error) {
	hash := p.Hash()
	if cached := r.Cache.Message(hash); cached != nil {
		if cv, ok := cached.(*message.ChangeView); ok {
			return cv, nil
		}
	}
	cv, err := decodeChangeView(p)
	if err != nil {
		return nil, err
	}
	r.Cache.TryInsert(hash, cv)
	return cv, nil
}

func decodeChangeView(p *payload.Payload) (*message.ChangeView, error) {
	m, err := p.Decoded()
	if err != nil {
		return nil, err
	}
	cv, ok := m.(*message.ChangeView)
	if !ok {
		return nil, errWrongMessageType
	}
	return cv, nil
}
