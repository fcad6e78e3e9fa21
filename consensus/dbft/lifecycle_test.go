package dbft

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

func TestResetFullSeedsBothCandidatesAndFindsMyIndex(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{keys: []ledger.PublicKey{l.validators[2]}}
	r := New(l, w, 16)

	require.NoError(t, r.Reset(0))
	require.Equal(t, byte(0), r.View)
	require.Equal(t, l.headers[l.tip].Index+1, r.Height)
	require.Equal(t, 2, r.MyIdx)
	require.NotNil(t, r.Candidates[PriorityCandidate])
	require.NotNil(t, r.Candidates[FallbackCandidate])
	require.Equal(t, 4, len(r.ChangeView))
}

func TestResetFullWatchOnlyWhenNoWalletMatch(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{}
	r := New(l, w, 16)

	require.NoError(t, r.Reset(0))
	require.Equal(t, WatchOnly, r.MyIdx)
	require.True(t, r.WatchOnlyNode())
}

func TestResetPartialTearsDownFallbackCandidate(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{keys: []ledger.PublicKey{l.validators[0]}}
	r := New(l, w, 16)
	require.NoError(t, r.Reset(0))

	require.NoError(t, r.Reset(1))
	require.Equal(t, byte(1), r.View)
	require.Nil(t, r.Candidates[FallbackCandidate])
	require.NotNil(t, r.Candidates[PriorityCandidate])
}

func TestResetPartialCarriesForwardQualifyingChangeView(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{keys: []ledger.PublicKey{l.validators[0]}}
	r := New(l, w, 16)
	require.NoError(t, r.Reset(0))

	sender := common.Address{0x02}
	stale := &message.ChangeView{Base: message.Base{ValidatorIndex: 1}, NewViewNumber: 0}
	qualifying := &message.ChangeView{Base: message.Base{ValidatorIndex: 2}, NewViewNumber: 2}

	stalePayload, err := payload.New(r.Height, sender, stale)
	require.NoError(t, err)
	qualPayload, err := payload.New(r.Height, sender, qualifying)
	require.NoError(t, err)

	r.ChangeView[1] = stalePayload
	r.ChangeView[2] = qualPayload

	require.NoError(t, r.Reset(1))
	require.Nil(t, r.LastChangeView[1], "view 0 change-view does not qualify for view 1")
	require.NotNil(t, r.LastChangeView[2])
}

func TestWitnessSizeRecomputedOnlyWhenNChanges(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{keys: []ledger.PublicKey{l.validators[0]}}
	r := New(l, w, 16)
	require.NoError(t, r.Reset(0))
	first := r.WitnessSize()
	require.Greater(t, first, 0)

	require.NoError(t, r.Reset(0))
	require.Equal(t, first, r.WitnessSize())

	l.validators = keysN(7)
	require.NoError(t, r.Reset(0))
	require.NotEqual(t, first, r.WitnessSize())
}
