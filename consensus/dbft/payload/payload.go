// Package payload defines the on-wire envelope ("ExtensiblePayload") that
// carries every dBFT message, per spec §6.
package payload

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
)

// Category is the fixed extensible-payload category tag for consensus
// traffic.
const Category = "dBFT"

// Witness is the invocation/verification script pair authenticating the
// sender of a payload.
type Witness struct {
	InvocationScript   []byte
	VerificationScript []byte
}

// Payload is the external wire form of a single dBFT message: category,
// validity window, sender, message body and witness.
type Payload struct {
	Category        string
	ValidBlockStart uint32
	ValidBlockEnd   uint32
	Sender          common.Address
	Type            message.Type
	Data            []byte
	Witness         *Witness
}

// Hash identifies a Payload for the message cache; it is the keccak256
// of the message body followed by the sender address. The category,
// validity window, type tag and witness are not part of the hash.
func (p *Payload) Hash() common.Hash {
	return crypto.Keccak256Hash(p.Data, p.Sender[:])
}

// Decoded decodes the payload body into its concrete message.Message.
func (p *Payload) Decoded() (message.Message, error) {
	return message.Decode(p.Type, p.Data)
}

// MarshalBinary renders the payload into the deterministic little-endian
// external form persisted by the checkpoint codec (spec §6): a
// length-prefixed category string, the validity window, the sender
// address, the message type tag, a length-prefixed body, and an
// optional witness.
func (p *Payload) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	if len(p.Category) > 0xff {
		return nil, fmt.Errorf("payload: category too long")
	}
	buf.WriteByte(byte(len(p.Category)))
	buf.WriteString(p.Category)

	writeU32(&buf, p.ValidBlockStart)
	writeU32(&buf, p.ValidBlockEnd)
	buf.Write(p.Sender[:])
	buf.WriteByte(byte(p.Type))

	writeU32(&buf, uint32(len(p.Data)))
	buf.Write(p.Data)

	if p.Witness == nil {
		buf.WriteByte(0)
	} else {
		buf.WriteByte(1)
		writeBytes(&buf, p.Witness.InvocationScript)
		writeBytes(&buf, p.Witness.VerificationScript)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (p *Payload) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	catLen, err := r.ReadByte()
	if err != nil {
		return err
	}
	cat := make([]byte, catLen)
	if _, err := readFull(r, cat); err != nil {
		return err
	}

	start, err := readU32(r)
	if err != nil {
		return err
	}
	end, err := readU32(r)
	if err != nil {
		return err
	}

	var sender common.Address
	if _, err := readFull(r, sender[:]); err != nil {
		return err
	}

	typeByte, err := r.ReadByte()
	if err != nil {
		return err
	}

	dataLen, err := readU32(r)
	if err != nil {
		return err
	}
	body := make([]byte, dataLen)
	if _, err := readFull(r, body); err != nil {
		return err
	}

	hasWitness, err := r.ReadByte()
	if err != nil {
		return err
	}
	var witness *Witness
	if hasWitness == 1 {
		inv, err := readBytes(r)
		if err != nil {
			return err
		}
		ver, err := readBytes(r)
		if err != nil {
			return err
		}
		witness = &Witness{InvocationScript: inv, VerificationScript: ver}
	}

	p.Category = string(cat)
	p.ValidBlockStart = start
	p.ValidBlockEnd = end
	p.Sender = sender
	p.Type = message.Type(typeByte)
	p.Data = body
	p.Witness = witness
	return nil
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeBytes(buf *bytes.Buffer, b []byte) {
	writeU32(buf, uint32(len(b)))
	buf.Write(b)
}

func readU32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readBytes(r *bytes.Reader) ([]byte, error) {
	n, err := readU32(r)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := readFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func readFull(r *bytes.Reader, b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n, err := r.Read(b)
	if err != nil {
		return n, err
	}
	if n != len(b) {
		return n, fmt.Errorf("payload: short read")
	}
	return n, nil
}

// New encodes m and wraps the resulting body with its envelope fields.
func New(blockIndex uint32, sender common.Address, m message.Message) (*Payload, error) {
	body, err := message.Encode(m)
	if err != nil {
		return nil, err
	}
	return &Payload{
		Category:        Category,
		ValidBlockStart: 0,
		ValidBlockEnd:   blockIndex,
		Sender:          sender,
		Type:            m.Type(),
		Data:            body,
	}, nil
}
