// Package block implements the Block Builder (spec component 4.F):
// assembling a final signed block from >= M matching commit payloads, a
// Merkle root over the transaction hash list, and a multi-signature
// witness.
package block

import (
	"crypto/sha256"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

// ErrMissingTransaction is returned when the builder is asked to
// assemble a block whose transaction map does not cover every hash in
// the candidate's transaction list (spec §7 "MissingTransaction" — a
// fatal programming error, never retried internally).
var ErrMissingTransaction = errors.New("block: candidate transaction map incomplete")

// ErrNoQuorum is returned when fewer than M commits with matching view
// are available at build time (spec §7 "NoQuorum").
var ErrNoQuorum = errors.New("block: fewer than M commits at the current view")

// Version is the block header wire version this module produces.
const Version uint32 = 0

// Header is the draft block header a Candidate carries, per spec §3.
type Header struct {
	Version       uint32
	PrevHash      common.Hash
	Index         uint32
	Timestamp     uint64
	Nonce         uint64
	PrimaryIndex  uint8
	NextConsensus common.Address
	MerkleRoot    common.Hash

	merkleComputed bool
}

// Signed is the final, witnessed block.
type Signed struct {
	Header       Header
	Witness      Witness
	Transactions []ledger.TxHash
}

// Witness is the invocation/verification script pair authenticating the
// committee's approval of a block (spec glossary "Witness").
type Witness struct {
	InvocationScript   []byte
	VerificationScript []byte
}

// ResetMerkle clears the memoized state so a subsequent EnsureHeader
// recomputes the root; used when a candidate is torn down for a new
// view (spec §4.H).
func (h *Header) ResetMerkle() {
	h.MerkleRoot = common.Hash{}
	h.merkleComputed = false
}

// EnsureHeader computes header.MerkleRoot from hashes if it has not
// already been computed, memoizing the result: a second call returns
// the same header untouched and does not recompute (spec §4.F, §8
// property 6, idempotence of EnsureHeader).
func EnsureHeader(header *Header, hashes []common.Hash) {
	if header.merkleComputed {
		return
	}
	header.MerkleRoot = MerkleRoot(hashes)
	header.merkleComputed = true
}

// MerkleRoot computes the Merkle root over a hash list using the
// standard duplicate-last-node-on-odd-count construction. An empty
// list's root is the zero hash.
func MerkleRoot(hashes []common.Hash) common.Hash {
	if len(hashes) == 0 {
		return common.Hash{}
	}
	level := make([]common.Hash, len(hashes))
	copy(level, hashes)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]common.Hash, len(level)/2)
		for i := range next {
			next[i] = hashPair(level[2*i], level[2*i+1])
		}
		level = next
	}
	return level[0]
}

func hashPair(a, b common.Hash) common.Hash {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return sha256.Sum256(buf[:])
}

// CommitSlot is a single validator's commit payload as seen by the
// builder: its committee index, the view it was sent for, and its
// signature.
type CommitSlot struct {
	ValidatorIndex int
	View           byte
	Signature      [64]byte
}

// Assemble builds a Signed block from a candidate header and >= M
// commit slots whose view matches the round's current view (spec
// invariant 5 and 6): it consumes at most M commits, in ascending
// validator index, and ignores any commit whose view does not match
// (spec §7 "WrongView on Commit" — silently skipped, not an error).
func Assemble(header Header, hashes []common.Hash, txs map[common.Hash]ledger.TxHash, commits []CommitSlot, view byte, m int, validators []ledger.PublicKey) (*Signed, error) {
	EnsureHeader(&header, hashes)

	ordered := make([]CommitSlot, 0, len(commits))
	for _, c := range commits {
		if c.View == view {
			ordered = append(ordered, c)
		}
	}
	sortByValidatorIndex(ordered)

	if len(ordered) > m {
		ordered = ordered[:m]
	}
	if len(ordered) < m {
		return nil, ErrNoQuorum
	}

	orderedTxs := make([]ledger.TxHash, 0, len(hashes))
	for _, h := range hashes {
		tx, ok := txs[h]
		if !ok {
			return nil, ErrMissingTransaction
		}
		orderedTxs = append(orderedTxs, tx)
	}

	invocation := make([]byte, 0, len(ordered)*65)
	for _, c := range ordered {
		invocation = append(invocation, opPushPubKey)
		invocation = append(invocation, c.Signature[:]...)
	}

	return &Signed{
		Header: header,
		Witness: Witness{
			InvocationScript:   invocation,
			VerificationScript: MultiSigScript(m, validators),
		},
		Transactions: orderedTxs,
	}, nil
}

func sortByValidatorIndex(s []CommitSlot) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].ValidatorIndex < s[j-1].ValidatorIndex; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
