// Package wallet is a minimal software keystore implementing the
// ledger.Wallet collaborator with btcec secp256k1 keys, the signing
// primitive the teacher's crypto stack is built on.
package wallet

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec"
	"github.com/google/uuid"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

// account is a single keypair entry, identified by a stable uuid so
// operators can reference it in logs without leaking the public key.
type account struct {
	id  uuid.UUID
	key *btcec.PrivateKey
}

func (a *account) HasKey() bool { return a.key != nil }

func (a *account) GetKey() (ledger.PublicKey, error) {
	var pub ledger.PublicKey
	copy(pub[:], a.key.PubKey().SerializeCompressed())
	return pub, nil
}

// Sign produces a compact ECDSA signature over digest, suitable for a
// Commit message or a single multi-sig invocation-script push.
func (a *account) Sign(digest [32]byte) ([]byte, error) {
	sig, err := a.key.Sign(digest[:])
	if err != nil {
		return nil, err
	}
	var out [64]byte
	r, s := sig.R.Bytes(), sig.S.Bytes()
	copy(out[32-len(r):32], r)
	copy(out[64-len(s):], s)
	return out[:], nil
}

// Wallet is a software keystore: an in-memory set of accounts keyed by
// their compressed public key.
type Wallet struct {
	accounts map[ledger.PublicKey]*account
}

// New builds an empty Wallet.
func New() *Wallet {
	return &Wallet{accounts: make(map[ledger.PublicKey]*account)}
}

// Generate creates and stores a new random account, returning its
// public key.
func (w *Wallet) Generate() (ledger.PublicKey, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return ledger.PublicKey{}, err
	}
	a := &account{id: newID(), key: key}
	pub, err := a.GetKey()
	if err != nil {
		return ledger.PublicKey{}, err
	}
	w.accounts[pub] = a
	return pub, nil
}

// GetAccount implements ledger.Wallet.
func (w *Wallet) GetAccount(pub ledger.PublicKey) (ledger.Account, bool) {
	a, ok := w.accounts[pub]
	if !ok {
		return nil, false
	}
	return a, true
}

// Signer returns the signing account for pub, if present and keyed.
func (w *Wallet) Signer(pub ledger.PublicKey) (*account, bool) {
	a, ok := w.accounts[pub]
	if !ok || !a.HasKey() {
		return nil, false
	}
	return a, true
}

func newID() uuid.UUID {
	id, err := uuid.NewRandom()
	if err != nil {
		// crypto/rand failure; fall back to a zero-entropy id rather
		// than panic — the id is a log label, not a security boundary.
		var raw [16]byte
		_, _ = rand.Read(raw[:])
		id, _ = uuid.FromBytes(raw[:])
	}
	return id
}
