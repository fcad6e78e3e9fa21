// Package ledger declares the external collaborator interfaces the dBFT
// consensus context consumes (spec §6): the chain view, durable store
// and wallet boundary (settings live in internal/config). These are
// implemented elsewhere (networking, mempool, RPC) — this module only
// depends on the shapes.
package ledger

import "github.com/ethereum/go-ethereum/common"

// PublicKey is an opaque validator identity, comparable so it can key a
// map (used by the Validator Set View and the liveness tracker).
type PublicKey [33]byte

// Header is the minimal block-header view the round needs to seed a new
// candidate proposal.
type Header struct {
	Hash          common.Hash
	PrevHash      common.Hash
	Index         uint32
	NextConsensus common.Address
}

// Block is a trimmed block: header plus the list of transaction hashes
// it committed, enough to validate a recovery or sync request.
type Block struct {
	Header
	TransactionHashes []common.Hash
}

// TxHash is a full transaction as carried in a candidate proposal's
// transaction map (spec §3); opaque to the consensus context beyond its
// hash, which is all the Block Builder and Merkle root computation use.
type TxHash struct {
	Hash common.Hash
	Raw  []byte
}

// Ledger is the chain-state collaborator (spec §6 "Ledger view").
type Ledger interface {
	CurrentIndex() uint32
	CurrentHash() common.Hash
	GetHeader(hash common.Hash) (*Header, error)
	GetTrimmedBlock(hash common.Hash) (*Block, error)
	ComputeNextBlockValidators() ([]PublicKey, error)
	GetNextBlockValidators() ([]PublicKey, error)
	ShouldRefreshCommittee(height uint32, committeeSize int) bool
}

// Store is the durable key/value collaborator (spec §6 "Durable
// store"), used for the single checkpoint key 0xF4.
type Store interface {
	// TryGet returns the stored bytes for key, or nil if absent.
	TryGet(key byte) []byte
	// PutSync writes value for key and blocks until durable.
	PutSync(key byte, value []byte) error
}

// Account is a wallet entry the core can sign payloads with.
type Account interface {
	HasKey() bool
	GetKey() (PublicKey, error)
}

// Wallet is the signing-key collaborator (spec §6 "Wallet").
type Wallet interface {
	GetAccount(pub PublicKey) (Account, bool)
}
