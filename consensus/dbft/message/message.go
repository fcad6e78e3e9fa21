// Package message defines the closed set of dBFT wire messages and their
// RLP encoding. Dispatch is by tagged variant, never open interface
// assertion, mirroring accountability.typedMessage in the teacher.
package message

import (
	"errors"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// Type is the wire tag identifying a message's concrete variant.
type Type uint8

const (
	PrepareRequestType Type = iota + 1
	PrepareResponseType
	PreCommitType
	CommitType
	ChangeViewType
	RecoveryRequestType
	RecoveryMessageType
)

var errUnknownType = errors.New("message: unrecognized type tag")

// Message is implemented by every concrete variant.
type Message interface {
	Type() Type
	GetBlockIndex() uint32
	GetValidatorIndex() uint8
	GetViewNumber() byte
}

// Base carries the fields common to every dBFT message.
type Base struct {
	BlockIndex     uint32
	ValidatorIndex uint8
	ViewNumber     byte
}

func (b *Base) GetBlockIndex() uint32    { return b.BlockIndex }
func (b *Base) GetValidatorIndex() uint8 { return b.ValidatorIndex }
func (b *Base) GetViewNumber() byte      { return b.ViewNumber }

// PrepareRequest is sent by the primary to propose a candidate block.
type PrepareRequest struct {
	Base
	Timestamp         uint64
	Nonce             uint64
	TransactionHashes []common.Hash
}

func (*PrepareRequest) Type() Type { return PrepareRequestType }

// PrepareResponse is sent by a backup to acknowledge a PrepareRequest.
type PrepareResponse struct {
	Base
	PreparationHash common.Hash
}

func (*PrepareResponse) Type() Type { return PrepareResponseType }

// PreCommit is an intermediate quorum-tracking message ahead of Commit.
type PreCommit struct {
	Base
	PreparationHash common.Hash
}

func (*PreCommit) Type() Type { return PreCommitType }

// Commit carries a validator's signature over the agreed block.
type Commit struct {
	Base
	Signature [64]byte
}

func (*Commit) Type() Type { return CommitType }

// ChangeView requests advancing to a new view.
type ChangeView struct {
	Base
	Timestamp     uint64
	NewViewNumber byte
	Reason        byte
}

func (*ChangeView) Type() Type { return ChangeViewType }

// RecoveryRequest asks peers to send a RecoveryMessage.
type RecoveryRequest struct {
	Base
	Timestamp uint64
}

func (*RecoveryRequest) Type() Type { return RecoveryRequestType }

// RecoveryMessage bundles enough payloads for a lagging node to catch up
// with the current view without replaying the whole round.
type RecoveryMessage struct {
	Base
	ChangeViewPayloads    []Typed
	PrepareRequestPayload *Typed
	PreparationPayloads   []Typed
	CommitPayloads        []Typed
}

func (*RecoveryMessage) Type() Type { return RecoveryMessageType }

// Typed wraps a Message with its type tag so it can be RLP-encoded as
// part of a heterogeneous list, exactly the pattern
// accountability.typedMessage uses in the teacher.
type Typed struct {
	Message
}

func (t *Typed) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []interface{}{uint8(t.Message.Type()), t.Message})
}

func (t *Typed) DecodeRLP(s *rlp.Stream) error {
	if _, err := s.List(); err != nil {
		return err
	}
	var tag uint8
	if err := s.Decode(&tag); err != nil {
		return err
	}
	m, err := newByType(Type(tag))
	if err != nil {
		return err
	}
	if err := s.Decode(m); err != nil {
		return err
	}
	t.Message = m
	return s.ListEnd()
}

func newByType(t Type) (Message, error) {
	switch t {
	case PrepareRequestType:
		return &PrepareRequest{}, nil
	case PrepareResponseType:
		return &PrepareResponse{}, nil
	case PreCommitType:
		return &PreCommit{}, nil
	case CommitType:
		return &Commit{}, nil
	case ChangeViewType:
		return &ChangeView{}, nil
	case RecoveryRequestType:
		return &RecoveryRequest{}, nil
	case RecoveryMessageType:
		return &RecoveryMessage{}, nil
	default:
		return nil, errUnknownType
	}
}

// Decode parses the RLP body of a payload into its concrete Message,
// dispatching on tag, the type tag carried alongside the body in the
// payload envelope (the body itself holds no tag; see Encode).
func Decode(tag Type, body []byte) (Message, error) {
	m, err := newByType(tag)
	if err != nil {
		return nil, err
	}
	if err := rlp.DecodeBytes(body, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode serializes a concrete Message's body (without the type tag;
// the tag travels alongside in the ExtensiblePayload envelope).
func Encode(m Message) ([]byte, error) {
	return rlp.EncodeToBytes(m)
}
