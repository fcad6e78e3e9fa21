package liveness

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"
)

func key(b byte) ledger.PublicKey {
	var k ledger.PublicKey
	k[0] = b
	return k
}

func TestObserveKeepsHighestHeight(t *testing.T) {
	tr := New()
	tr.Observe(key(1), 5)
	tr.Observe(key(1), 3)
	h, ok := tr.LastSeen(key(1))
	require.True(t, ok)
	require.Equal(t, uint32(5), h)
}

func TestCountFailed(t *testing.T) {
	tr := New()
	tr.Observe(key(1), 10)
	tr.Observe(key(2), 8) // below H-1=9; key(3) is absent: two failed
	vs := []ledger.PublicKey{key(1), key(2), key(3)}
	require.Equal(t, 2, tr.CountFailed(vs, 10))
}

func TestRebuildOnValidatorChangeCarriesAndSeeds(t *testing.T) {
	tr := New()
	tr.Observe(key(1), 7)
	next := tr.RebuildOnValidatorChange([]ledger.PublicKey{key(1), key(9)}, 20)

	h1, ok := next.LastSeen(key(1))
	require.True(t, ok)
	require.Equal(t, uint32(7), h1)

	h9, ok := next.LastSeen(key(9))
	require.True(t, ok)
	require.Equal(t, uint32(20), h9)
}
