package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateClockDecodesFields(t *testing.T) {
	d := NewData()
	blocks := &Blocks{
		B: Block{Val: 0x0001, Errors: BLERNone}, // bottom bit of Julian date
		C: Block{Val: 0xBEEE, Errors: BLERNone},
		D: Block{Val: 0xC820, Errors: BLERNone},
	}
	updateClock(d, blocks)

	assert.NotZero(t, d.ValidValues&ValidClock)
	assert.Equal(t, uint8(12), d.Clock.Hour)
	assert.NotZero(t, d.Stats.Counts.Clock)
}

func TestUpdateClockRespectsBLERGate(t *testing.T) {
	d := NewData()
	blocks := &Blocks{
		B: Block{Val: 0x0001, Errors: BLER6Plus},
		C: Block{Val: 0xBEEE, Errors: BLERNone},
		D: Block{Val: 0xC820, Errors: BLERNone},
	}
	updateClock(d, blocks)
	assert.Zero(t, d.ValidValues&ValidClock)
}

func TestUpdateClockNegativeUTCOffset(t *testing.T) {
	d := NewData()
	blocks := &Blocks{
		B: Block{Val: 0x0000, Errors: BLERNone},
		C: Block{Val: 0x0000, Errors: BLERNone},
		D: Block{Val: 0x0000 | 0x0020 | 0x0003, Errors: BLERNone}, // sign bit + offset 3
	}
	updateClock(d, blocks)
	assert.Equal(t, int8(-3), d.Clock.UTCOffset)
}
