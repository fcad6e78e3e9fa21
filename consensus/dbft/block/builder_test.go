package block

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

func hash(b byte) common.Hash {
	var h common.Hash
	h[0] = b
	return h
}

func TestMerkleRootEmpty(t *testing.T) {
	require.Equal(t, common.Hash{}, MerkleRoot(nil))
}

func TestMerkleRootOddCountDuplicatesLast(t *testing.T) {
	three := MerkleRoot([]common.Hash{hash(1), hash(2), hash(3)})
	four := MerkleRoot([]common.Hash{hash(1), hash(2), hash(3), hash(3)})
	require.Equal(t, four, three)
}

func TestEnsureHeaderMemoizes(t *testing.T) {
	h := &Header{}
	hashes := []common.Hash{hash(1), hash(2)}
	EnsureHeader(h, hashes)
	first := h.MerkleRoot

	EnsureHeader(h, []common.Hash{hash(9)})
	require.Equal(t, first, h.MerkleRoot, "second call must not recompute")

	h.ResetMerkle()
	EnsureHeader(h, []common.Hash{hash(9)})
	require.NotEqual(t, first, h.MerkleRoot)
}

func validatorKeys(n int) []ledger.PublicKey {
	out := make([]ledger.PublicKey, n)
	for i := range out {
		out[i][0] = byte(i + 1)
	}
	return out
}

func TestAssembleOrdersAndTruncatesCommits(t *testing.T) {
	vs := validatorKeys(4)
	h1, h2 := hash(1), hash(2)
	txs := map[common.Hash]ledger.TxHash{
		h1: {Hash: h1, Raw: []byte("tx1")},
		h2: {Hash: h2, Raw: []byte("tx2")},
	}
	commits := []CommitSlot{
		{ValidatorIndex: 3, View: 0, Signature: [64]byte{3}},
		{ValidatorIndex: 0, View: 0, Signature: [64]byte{0}},
		{ValidatorIndex: 2, View: 1, Signature: [64]byte{9}}, // wrong view, ignored
		{ValidatorIndex: 1, View: 0, Signature: [64]byte{1}},
	}

	signed, err := Assemble(Header{}, []common.Hash{h1, h2}, txs, commits, 0, 3, vs)
	require.NoError(t, err)
	require.Len(t, signed.Transactions, 2)
	// 3 of the 4 commits matched view 0; the builder keeps at most M=3
	// in ascending validator index: 0, 1, 3.
	require.Equal(t, 3*(1+64), len(signed.Witness.InvocationScript))
}

func TestAssembleErrorsBelowQuorum(t *testing.T) {
	vs := validatorKeys(4)
	h1 := hash(1)
	txs := map[common.Hash]ledger.TxHash{h1: {Hash: h1}}
	commits := []CommitSlot{{ValidatorIndex: 0, View: 0}}

	_, err := Assemble(Header{}, []common.Hash{h1}, txs, commits, 0, 3, vs)
	require.ErrorIs(t, err, ErrNoQuorum)
}

func TestAssembleErrorsOnMissingTransaction(t *testing.T) {
	vs := validatorKeys(4)
	h1, h2 := hash(1), hash(2)
	txs := map[common.Hash]ledger.TxHash{h1: {Hash: h1}}
	commits := []CommitSlot{
		{ValidatorIndex: 0, View: 0}, {ValidatorIndex: 1, View: 0}, {ValidatorIndex: 2, View: 0},
	}

	_, err := Assemble(Header{}, []common.Hash{h1, h2}, txs, commits, 0, 3, vs)
	require.ErrorIs(t, err, ErrMissingTransaction)
}

func TestWitnessSizeRecomputesWithValidatorCount(t *testing.T) {
	small := WitnessSize(3, validatorKeys(4))
	large := WitnessSize(5, validatorKeys(7))
	require.Greater(t, large, small)
}
