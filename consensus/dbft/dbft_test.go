package dbft

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

type fakeAccount struct{ key ledger.PublicKey }

func (a fakeAccount) HasKey() bool                      { return true }
func (a fakeAccount) GetKey() (ledger.PublicKey, error) { return a.key, nil }

type fakeWallet struct{ keys []ledger.PublicKey }

func (w fakeWallet) GetAccount(pub ledger.PublicKey) (ledger.Account, bool) {
	for _, k := range w.keys {
		if k == pub {
			return fakeAccount{key: pub}, true
		}
	}
	return nil, false
}

type fakeLedger struct {
	tip        common.Hash
	headers    map[common.Hash]*ledger.Header
	validators []ledger.PublicKey
	refresh    bool
}

func keysN(n int) []ledger.PublicKey {
	out := make([]ledger.PublicKey, n)
	for i := range out {
		out[i][0] = byte(i + 1)
	}
	return out
}

func newFakeLedger(n int) *fakeLedger {
	tip := common.Hash{0x01}
	l := &fakeLedger{
		tip:        tip,
		headers:    map[common.Hash]*ledger.Header{},
		validators: keysN(n),
		refresh:    true,
	}
	l.headers[tip] = &ledger.Header{Hash: tip, Index: 10, NextConsensus: common.Address{0x99}}
	return l
}

func (l *fakeLedger) CurrentIndex() uint32     { return l.headers[l.tip].Index }
func (l *fakeLedger) CurrentHash() common.Hash { return l.tip }
func (l *fakeLedger) GetHeader(hash common.Hash) (*ledger.Header, error) {
	return l.headers[hash], nil
}
func (l *fakeLedger) GetTrimmedBlock(hash common.Hash) (*ledger.Block, error) { return nil, nil }
func (l *fakeLedger) ComputeNextBlockValidators() ([]ledger.PublicKey, error) {
	return l.validators, nil
}
func (l *fakeLedger) GetNextBlockValidators() ([]ledger.PublicKey, error) { return l.validators, nil }
func (l *fakeLedger) ShouldRefreshCommittee(height uint32, committeeSize int) bool {
	return l.refresh
}
