package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGroupType5ASelectsChannelAndAppends(t *testing.T) {
	dec := newTestDecoder()
	gt := GroupType{Code: 5, Version: 'A'}
	blocks := &Blocks{
		B: Block{Val: 0x0003, Errors: BLERNone}, // channel 3
		C: Block{Val: 0xAABB, Errors: BLERNone},
		D: Block{Val: 0xCCDD, Errors: BLERNone},
	}
	decodeGroupType5(dec, gt, blocks)

	require.EqualValues(t, 3, dec.rds.TDC.CurrChannel)
	ring := dec.rds.TDC.Data[3]
	assert.Equal(t, byte(0xAA), ring[TDCLen-4])
	assert.Equal(t, byte(0xBB), ring[TDCLen-3])
	assert.Equal(t, byte(0xCC), ring[TDCLen-2])
	assert.Equal(t, byte(0xDD), ring[TDCLen-1])
}

func TestDecodeGroupType5ChannelMaskIsFiveBits(t *testing.T) {
	dec := newTestDecoder()
	gt := GroupType{Code: 5, Version: 'A'}
	// Bits above the 5-bit channel field must not leak into CurrChannel.
	blocks := &Blocks{B: Block{Val: 0xFFE0 | 0x07, Errors: BLERNone}}
	decodeGroupType5(dec, gt, blocks)
	assert.EqualValues(t, 7, dec.rds.TDC.CurrChannel)
}

func TestDecodeGroupType5BUsesLastChannel(t *testing.T) {
	dec := newTestDecoder()
	decodeGroupType5(dec, GroupType{Code: 5, Version: 'A'},
		&Blocks{B: Block{Val: 2}, C: Block{Val: 0x1111}, D: Block{Val: 0x2222}})
	decodeGroupType5(dec, GroupType{Code: 5, Version: 'B'},
		&Blocks{D: Block{Val: 0x3344}})

	ring := dec.rds.TDC.Data[2]
	assert.Equal(t, byte(0x33), ring[TDCLen-2])
	assert.Equal(t, byte(0x44), ring[TDCLen-1])
}
