package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSLCPagingVariant(t *testing.T) {
	d := NewData()
	// Variant code 0 (paging): top 3 bits of payload = 0.
	c := uint16(0x1234) &^ 0b1111000000000000 // clear LA+VC bits to force variant 0
	blocks := &Blocks{C: Block{Val: c, Errors: BLERNone}}
	decodeSLC(d, blocks)

	require.Equal(t, SLCVariantPaging, d.SLC.VariantCode)
	assert.NotZero(t, d.ValidValues&ValidSLC)
}

func TestDecodeSLCRespectsBLERGate(t *testing.T) {
	d := NewData()
	blocks := &Blocks{C: Block{Val: 0x1234, Errors: BLER6Plus}}
	decodeSLC(d, blocks)
	assert.Zero(t, d.ValidValues&ValidSLC)
}

func TestDecodeSLCTMCIDVariant(t *testing.T) {
	d := NewData()
	// Variant code 1 in bits 14..12, data in bottom 12 bits.
	c := uint16(1)<<12 | 0x0ABC
	blocks := &Blocks{C: Block{Val: c, Errors: BLERNone}}
	decodeSLC(d, blocks)

	require.Equal(t, SLCVariantTMCID, d.SLC.VariantCode)
	assert.EqualValues(t, 0x0ABC, d.SLC.Data.TMCID)
}

func TestDecodePICZeroDayMeansUndefined(t *testing.T) {
	var pic PIC
	decodePIC(0x0000, &pic)
	assert.Zero(t, pic.Day)
	assert.Zero(t, pic.Hour)
	assert.Zero(t, pic.Minute)
}

func TestDecodePICNonZeroDay(t *testing.T) {
	var pic PIC
	// Day=5 (bits 15..11), hour=10 (bits 10..6), minute=20 (bits 5..0).
	raw := uint16(5)<<11 | uint16(10)<<6 | uint16(20)
	decodePIC(raw, &pic)
	assert.EqualValues(t, 5, pic.Day)
	assert.EqualValues(t, 10, pic.Hour)
	assert.EqualValues(t, 20, pic.Minute)
}
