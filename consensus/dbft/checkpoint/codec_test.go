package checkpoint

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

type memStore struct {
	data map[byte][]byte
}

func newMemStore() *memStore { return &memStore{data: map[byte][]byte{}} }

func (s *memStore) TryGet(key byte) []byte        { return s.data[key] }
func (s *memStore) PutSync(key byte, v []byte) error { s.data[key] = v; return nil }

type fakeAccount struct{ key ledger.PublicKey }

func (a fakeAccount) HasKey() bool                      { return true }
func (a fakeAccount) GetKey() (ledger.PublicKey, error) { return a.key, nil }

type fakeWallet struct{ key ledger.PublicKey }

func (w fakeWallet) GetAccount(pub ledger.PublicKey) (ledger.Account, bool) {
	if pub == w.key {
		return fakeAccount{key: pub}, true
	}
	return nil, false
}

type fakeLedger struct {
	height     uint32
	tip        common.Hash
	headers    map[common.Hash]*ledger.Header
	validators []ledger.PublicKey
}

func newFakeLedger(n int) *fakeLedger {
	validators := make([]ledger.PublicKey, n)
	for i := range validators {
		validators[i][0] = byte(i + 1)
	}
	tip := common.Hash{0x01}
	l := &fakeLedger{
		height:     10,
		tip:        tip,
		headers:    map[common.Hash]*ledger.Header{},
		validators: validators,
	}
	l.headers[tip] = &ledger.Header{Hash: tip, Index: 10, NextConsensus: common.Address{0x99}}
	return l
}

func (l *fakeLedger) CurrentIndex() uint32 { return l.height }
func (l *fakeLedger) CurrentHash() common.Hash { return l.tip }
func (l *fakeLedger) GetHeader(hash common.Hash) (*ledger.Header, error) {
	return l.headers[hash], nil
}
func (l *fakeLedger) GetTrimmedBlock(hash common.Hash) (*ledger.Block, error) { return nil, nil }
func (l *fakeLedger) ComputeNextBlockValidators() ([]ledger.PublicKey, error) { return l.validators, nil }
func (l *fakeLedger) GetNextBlockValidators() ([]ledger.PublicKey, error)     { return l.validators, nil }
func (l *fakeLedger) ShouldRefreshCommittee(height uint32, committeeSize int) bool { return true }

func TestSaveLoadRoundTrip(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{key: l.validators[0]}

	r := dbft.New(l, w, 16)
	require.NoError(t, r.Reset(0))

	sender := common.Address{0x01}
	cv := &message.ChangeView{Base: message.Base{BlockIndex: r.Height, ValidatorIndex: 1, ViewNumber: 0}, NewViewNumber: 1}
	p, err := payload.New(r.Height, sender, cv)
	require.NoError(t, err)
	r.ChangeView[1] = p

	r.Candidates[dbft.PriorityCandidate].Preparation[0] = p

	store := newMemStore()
	require.NoError(t, Save(store, r))

	restored := dbft.New(l, w, 16)
	require.NoError(t, restored.Reset(0))
	require.NoError(t, Load(store, restored))

	require.Equal(t, byte(0), restored.View)
	require.NotNil(t, restored.ChangeView[1])
	require.NotNil(t, restored.Candidates[dbft.PriorityCandidate].Preparation[0])
}

func TestLoadRejectsStaleHeight(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{key: l.validators[0]}

	r := dbft.New(l, w, 16)
	require.NoError(t, r.Reset(0))

	store := newMemStore()
	require.NoError(t, Save(store, r))

	l.headers[l.tip].Index++ // chain advanced: a fresh round now expects a different height
	advanced := dbft.New(l, w, 16)
	require.NoError(t, advanced.Reset(0))

	err := Load(store, advanced)
	require.ErrorIs(t, err, dbft.ErrStaleCheckpoint)
}

func TestLoadRejectsMissingCheckpoint(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{key: l.validators[0]}
	r := dbft.New(l, w, 16)
	require.NoError(t, r.Reset(0))

	err := Load(newMemStore(), r)
	require.ErrorIs(t, err, dbft.ErrStaleCheckpoint)
}
