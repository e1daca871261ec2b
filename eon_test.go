package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeGroupType14APSVariant(t *testing.T) {
	d := NewData()
	gt := GroupType{Code: 14, Version: 'A'}
	blocks := &Blocks{
		B: Block{Val: 0x0000, Errors: BLERNone}, // variant 0 = PS1
		C: Block{Val: uint16('R')<<8 | 'o', Errors: BLERNone},
	}
	decodeGroupType14(d, gt, blocks)
	assert.Equal(t, byte('R'), d.EON.On.PS[0])
	assert.Equal(t, byte('o'), d.EON.On.PS[1])
	assert.NotZero(t, d.ValidValues&ValidEON)
}

func TestDecodeGroupType14BSetsPICodeAndFlags(t *testing.T) {
	d := NewData()
	gt := GroupType{Code: 14, Version: 'B'}
	blocks := &Blocks{
		B: Block{Val: 0b11000, Errors: BLERNone}, // TP and TA set
		C: Block{Val: uint16(9) << 11, Errors: BLERNone},
		D: Block{Val: 0x1234, Errors: BLERNone},
	}
	decodeGroupType14(d, gt, blocks)

	assert.True(t, d.EON.On.TPCode)
	assert.True(t, d.EON.On.TACode)
	assert.EqualValues(t, 0x1234, d.EON.On.PICode)
	assert.EqualValues(t, 9, d.EON.On.PTY)
}

func TestDecodeGroupType14RespectsBBLERGate(t *testing.T) {
	d := NewData()
	gt := GroupType{Code: 14, Version: 'A'}
	blocks := &Blocks{B: Block{Val: 0x0000, Errors: BLER6Plus}}
	decodeGroupType14(d, gt, blocks)
	assert.Zero(t, d.ValidValues&ValidEON)
}
