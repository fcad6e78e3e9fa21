package payload

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/OnBlockIO/neo-modules/consensus/dbft/message"
)

func TestNewAndDecoded(t *testing.T) {
	cv := &message.ChangeView{
		Base:          message.Base{BlockIndex: 5, ValidatorIndex: 2, ViewNumber: 0},
		NewViewNumber: 1,
	}
	p, err := New(5, common.Address{1}, cv)
	require.NoError(t, err)
	require.Equal(t, Category, p.Category)
	require.Equal(t, message.ChangeViewType, p.Type)

	decoded, err := p.Decoded()
	require.NoError(t, err)
	out, ok := decoded.(*message.ChangeView)
	require.True(t, ok)
	require.Equal(t, byte(1), out.NewViewNumber)
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	p := &Payload{
		Category:        Category,
		ValidBlockStart: 1,
		ValidBlockEnd:   99,
		Sender:          common.Address{0xaa},
		Type:            message.CommitType,
		Data:            []byte{1, 2, 3, 4},
		Witness: &Witness{
			InvocationScript:   []byte{0x0c, 0xde, 0xad},
			VerificationScript: []byte{0x51},
		},
	}
	body, err := p.MarshalBinary()
	require.NoError(t, err)

	var out Payload
	require.NoError(t, out.UnmarshalBinary(body))
	require.Equal(t, *p.Witness, *out.Witness)
	require.Equal(t, p.Category, out.Category)
	require.Equal(t, p.ValidBlockStart, out.ValidBlockStart)
	require.Equal(t, p.ValidBlockEnd, out.ValidBlockEnd)
	require.Equal(t, p.Sender, out.Sender)
	require.Equal(t, p.Type, out.Type)
	require.Equal(t, p.Data, out.Data)
}

func TestMarshalBinaryRoundTripNilWitness(t *testing.T) {
	p := &Payload{Category: Category, Sender: common.Address{1}, Type: message.PreCommitType, Data: []byte{9}}
	body, err := p.MarshalBinary()
	require.NoError(t, err)

	var out Payload
	require.NoError(t, out.UnmarshalBinary(body))
	require.Nil(t, out.Witness)
}
