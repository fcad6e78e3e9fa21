package dbft

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/block"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

// Candidate is one of the two parallel proposal slots of spec §3: a
// draft header, its transaction hash list, the transactions gathered so
// far, and the three per-validator payload slot arrays.
type Candidate struct {
	Header block.Header

	// Hashes is nil until a PrepareRequest has been received or sent.
	Hashes []common.Hash

	// Transactions accumulates as transactions arrive from the mempool
	// collaborator; by the time the Block Builder runs it must cover
	// every hash in Hashes.
	Transactions map[common.Hash]ledger.TxHash

	// Preparation, PreCommit and Commit are per-validator payload
	// slots of width N (spec §3). A nil entry means "no payload".
	Preparation []*payload.Payload
	PreCommit   []*payload.Payload
	Commit      []*payload.Payload

	// Built is set exactly once, by the Block Builder, and is the
	// terminal marker BlockSent reads (spec §4.E, §5).
	Built *block.Signed
}

func newCandidate(n int) *Candidate {
	return &Candidate{
		Transactions: make(map[common.Hash]ledger.TxHash),
		Preparation:  make([]*payload.Payload, n),
		PreCommit:    make([]*payload.Payload, n),
		Commit:       make([]*payload.Payload, n),
	}
}

// resetMutable clears the fields a V>0 partial reset drops (spec §4.H):
// merkle-root, timestamp, nonce, transactions, hashes, preparation
// slots. PreCommit/Commit slots survive a partial reset; only a full
// (V=0) reset or a fresh Candidate clears them.
func (c *Candidate) resetMutable(primaryIndex uint8) {
	c.Header.Timestamp = 0
	c.Header.Nonce = 0
	c.Header.ResetMerkle()
	c.Header.PrimaryIndex = primaryIndex
	c.Hashes = nil
	c.Transactions = make(map[common.Hash]ledger.TxHash)
	for i := range c.Preparation {
		c.Preparation[i] = nil
	}
}
