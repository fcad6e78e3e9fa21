// Package checkpoint persists and restores a Round's in-flight state
// across process restarts, per spec §6. The wire format is a
// deterministic little-endian binary layout, not RLP: RLP's
// variable-length framing cannot reproduce the fixed, self-delimiting
// shape spec §6 requires for a durable store key, so this package
// hand-rolls it with encoding/binary and bytes.Buffer.
package checkpoint

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/OnBlockIO/neo-modules/consensus/dbft"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/block"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

// StoreKey is the fixed single-byte key a checkpoint is persisted
// under (spec §6).
const StoreKey byte = 0xF4

// Save serializes the round's current state and writes it to store
// under StoreKey. The wire layout follows spec §6's field order, with
// PrevHash and MerkleRoot added after NextConsensus in each candidate
// record: no leading field precedes the per-candidate loop, and an
// absent candidate is written as a fixed-size record of zeros
// (NextConsensus all-zero is the null sentinel), not flagged by a
// separate presence byte.
func Save(store ledger.Store, r *dbft.Round) error {
	var buf bytes.Buffer

	for _, c := range r.Candidates {
		if err := writeCandidate(&buf, c, r.N()); err != nil {
			return err
		}
	}
	buf.WriteByte(r.View)
	if err := writeNullableArray(&buf, r.ChangeView); err != nil {
		return err
	}
	if err := writeNullableArray(&buf, r.LastChangeView); err != nil {
		return err
	}

	return store.PutSync(StoreKey, buf.Bytes())
}

// Load reads a previously-saved checkpoint from store and applies it
// to r, which must already have been reset at view 0 for the target
// height (so that r.N(), r.Candidates and r.Validators are sized and
// populated for the checkpoint to slot into). Load refuses a
// checkpoint whose persisted Version or Index (on any present
// candidate) does not match what this round expects — a protocol
// version bump or a height mismatch are both treated as stale, never
// silently overlaid (spec §4.G, §7).
func Load(store ledger.Store, r *dbft.Round) error {
	raw := store.TryGet(StoreKey)
	if raw == nil {
		return dbft.ErrStaleCheckpoint
	}

	rd := bytes.NewReader(raw)

	var candidates [2]*dbft.Candidate
	for k := range candidates {
		c, err := readCandidate(rd, r.N())
		if err != nil {
			return dbft.ErrCorruptCheckpoint
		}
		if c != nil {
			if c.Header.Version != block.Version {
				return dbft.ErrStaleCheckpoint
			}
			if c.Header.Index != r.Height {
				return dbft.ErrStaleCheckpoint
			}
		}
		candidates[k] = c
	}

	view, err := rd.ReadByte()
	if err != nil {
		return dbft.ErrCorruptCheckpoint
	}
	changeView, err := readNullableArray(rd, r.N())
	if err != nil {
		return dbft.ErrCorruptCheckpoint
	}
	lastChangeView, err := readNullableArray(rd, r.N())
	if err != nil {
		return dbft.ErrCorruptCheckpoint
	}

	r.Candidates = candidates
	r.View = view
	r.ChangeView = changeView
	r.LastChangeView = lastChangeView
	return nil
}

// writeCandidate writes a fixed-size candidate record regardless of
// whether c is present: an absent candidate is all zeros, with an
// all-zero NextConsensus as the null sentinel (spec §6), not a
// separate presence flag.
func writeCandidate(buf *bytes.Buffer, c *dbft.Candidate, n int) error {
	if c == nil {
		c = &dbft.Candidate{Preparation: make([]*payload.Payload, n), PreCommit: make([]*payload.Payload, n), Commit: make([]*payload.Payload, n)}
	}

	h := c.Header
	writeU32(buf, h.Version)
	writeU32(buf, h.Index)
	writeU64(buf, h.Timestamp)
	writeU64(buf, h.Nonce)
	buf.WriteByte(h.PrimaryIndex)
	buf.Write(h.NextConsensus[:])
	buf.Write(h.PrevHash[:])
	buf.Write(h.MerkleRoot[:])

	writeU16(buf, uint16(len(c.Hashes)))
	for _, hash := range c.Hashes {
		buf.Write(hash[:])
	}

	writeU16(buf, uint16(len(c.Hashes)))
	for _, hash := range c.Hashes {
		tx, ok := c.Transactions[hash]
		if !ok {
			return fmt.Errorf("checkpoint: candidate transaction map missing %x", hash)
		}
		buf.Write(tx.Hash[:])
		writeU32(buf, uint32(len(tx.Raw)))
		buf.Write(tx.Raw)
	}

	if err := writeNullableArray(buf, c.Preparation); err != nil {
		return err
	}
	if err := writeNullableArray(buf, c.PreCommit); err != nil {
		return err
	}
	if err := writeNullableArray(buf, c.Commit); err != nil {
		return err
	}
	return nil
}

// readCandidate always decodes the fixed-size candidate record — an
// absent candidate is still present on the wire as an all-zero record
// — and returns nil once NextConsensus comes back all-zero, the null
// sentinel spec §6 specifies.
func readCandidate(r *bytes.Reader, n int) (*dbft.Candidate, error) {
	var h block.Header
	var err error
	if h.Version, err = readU32(r); err != nil {
		return nil, err
	}
	if h.Index, err = readU32(r); err != nil {
		return nil, err
	}
	if h.Timestamp, err = readU64(r); err != nil {
		return nil, err
	}
	if h.Nonce, err = readU64(r); err != nil {
		return nil, err
	}
	if h.PrimaryIndex, err = r.ReadByte(); err != nil {
		return nil, err
	}
	if _, err = readFull(r, h.NextConsensus[:]); err != nil {
		return nil, err
	}
	if _, err = readFull(r, h.PrevHash[:]); err != nil {
		return nil, err
	}
	if _, err = readFull(r, h.MerkleRoot[:]); err != nil {
		return nil, err
	}

	hashCount, err := readU16(r)
	if err != nil {
		return nil, err
	}
	hashes := make([]common.Hash, hashCount)
	for i := range hashes {
		if _, err := readFull(r, hashes[i][:]); err != nil {
			return nil, err
		}
	}

	txCount, err := readU16(r)
	if err != nil {
		return nil, err
	}
	txs := make(map[common.Hash]ledger.TxHash, txCount)
	for i := uint16(0); i < txCount; i++ {
		var tx ledger.TxHash
		if _, err := readFull(r, tx.Hash[:]); err != nil {
			return nil, err
		}
		rawLen, err := readU32(r)
		if err != nil {
			return nil, err
		}
		tx.Raw = make([]byte, rawLen)
		if _, err := readFull(r, tx.Raw); err != nil {
			return nil, err
		}
		txs[tx.Hash] = tx
	}

	prep, err := readNullableArray(r, n)
	if err != nil {
		return nil, err
	}
	preCommit, err := readNullableArray(r, n)
	if err != nil {
		return nil, err
	}
	commit, err := readNullableArray(r, n)
	if err != nil {
		return nil, err
	}

	if h.NextConsensus == (common.Address{}) {
		return nil, nil
	}

	return &dbft.Candidate{
		Header:       h,
		Hashes:       hashes,
		Transactions: txs,
		Preparation:  prep,
		PreCommit:    preCommit,
		Commit:       commit,
	}, nil
}

// writeNullableArray encodes a fixed-length slot table as a bitmap of
// which slots are non-nil, followed by the length-prefixed bytes of
// each present payload in ascending index order (spec §6
// "nullable_array").
func writeNullableArray(buf *bytes.Buffer, slots []*payload.Payload) error {
	bitmap := make([]byte, (len(slots)+7)/8)
	for i, p := range slots {
		if p != nil {
			bitmap[i/8] |= 1 << uint(i%8)
		}
	}
	buf.Write(bitmap)
	for _, p := range slots {
		if p == nil {
			continue
		}
		body, err := p.MarshalBinary()
		if err != nil {
			return err
		}
		writeU32(buf, uint32(len(body)))
		buf.Write(body)
	}
	return nil
}

func readNullableArray(r *bytes.Reader, n int) ([]*payload.Payload, error) {
	bitmap := make([]byte, (n+7)/8)
	if _, err := readFull(r, bitmap); err != nil {
		return nil, err
	}
	slots := make([]*payload.Payload, n)
	for i := 0; i < n; i++ {
		if bitmap[i/8]&(1<<uint(i%8)) == 0 {
			continue
		}
		l, err := readU32(r)
		if err != nil {
			return nil, err
		}
		body := make([]byte, l)
		if _, err := readFull(r, body); err != nil {
			return nil, err
		}
		p := &payload.Payload{}
		if err := p.UnmarshalBinary(body); err != nil {
			return nil, err
		}
		slots[i] = p
	}
	return slots, nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func readU16(r *bytes.Reader) (uint16, error) {
	var b [2]byte
	if _, err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func readU32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readU64(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
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
		return n, fmt.Errorf("checkpoint: short read")
	}
	return n, nil
}
