package validators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

func keys(n int) []ledger.PublicKey {
	out := make([]ledger.PublicKey, n)
	for i := range out {
		out[i][0] = byte(i + 1)
	}
	return out
}

func TestNewQuorum(t *testing.T) {
	s := New(keys(7))
	require.Equal(t, 7, s.N())
	require.Equal(t, 2, s.F())
	require.Equal(t, 5, s.M())
}

func TestNewQuorumFourNodes(t *testing.T) {
	s := New(keys(4))
	require.Equal(t, 1, s.F())
	require.Equal(t, 3, s.M())
}

func TestPriorityAndFallbackPrimary(t *testing.T) {
	s := New(keys(4))
	require.Equal(t, 0, s.PriorityPrimary(4, 0))
	require.Equal(t, 3, s.PriorityPrimary(4, 1))
	require.Equal(t, 3, s.FallbackPrimary(4, 0))
}

func TestIndexOf(t *testing.T) {
	ks := keys(3)
	s := New(ks)
	require.Equal(t, 1, s.IndexOf(ks[1]))
	require.Equal(t, -1, s.IndexOf(ledger.PublicKey{0xff}))
}
