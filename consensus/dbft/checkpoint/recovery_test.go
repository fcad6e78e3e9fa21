package checkpoint

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
	"github.com/OnBlockIO/neo-modules/consensus/dbft/payload"
)

func TestBuildRecoveryMessageCollectsLiveSlots(t *testing.T) {
	l := newFakeLedger(4)
	w := fakeWallet{key: l.validators[0]}
	r := dbft.New(l, w, 16)
	require.NoError(t, r.Reset(0))

	sender := common.Address{0x01}
	commit := &message.Commit{Base: message.Base{ValidatorIndex: 2}}
	p, err := payload.New(r.Height, sender, commit)
	require.NoError(t, err)
	r.Candidates[dbft.PriorityCandidate].Commit[2] = p

	rm := BuildRecoveryMessage(r)
	require.Len(t, rm.CommitPayloads, 1)
	require.Equal(t, r.Height, rm.BlockIndex)
}
