package cache

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
)

func TestTryInsertIsFirstWriteWins(t *testing.T) {
	c := New(8)
	h := common.Hash{1}
	cv1 := &message.ChangeView{NewViewNumber: 1}
	cv2 := &message.ChangeView{NewViewNumber: 2}

	require.True(t, c.TryInsert(h, cv1))
	require.False(t, c.TryInsert(h, cv2))
	require.Same(t, message.Message(cv1), c.Message(h))
}

func TestMessageMissReturnsNil(t *testing.T) {
	c := New(8)
	require.Nil(t, c.Message(common.Hash{9}))
}

func TestClearEmpties(t *testing.T) {
	c := New(8)
	c.TryInsert(common.Hash{1}, &message.ChangeView{})
	require.Equal(t, 1, c.Len())
	c.Clear()
	require.Equal(t, 0, c.Len())
}

func TestDefaultSizeUsedWhenNonPositive(t *testing.T) {
	c := New(0)
	require.NotNil(t, c)
}
