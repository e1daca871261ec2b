package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableMethodADecode(t *testing.T) {
	var tbl Table
	// Count=2, first entry 102.6 MHz (code 151).
	tbl.StartBlock(2, 151)
	// Second block: two more method-A frequencies.
	tbl.NthBlock(100, 110)

	require.Equal(t, EncodingA, tbl.Method())
	assert.Len(t, tbl.Entries, 3)
}

func TestTableRefusesDuplicates(t *testing.T) {
	var tbl Table
	tbl.StartBlock(3, 100)
	assert.Len(t, tbl.Entries, 1)
	tbl.NthBlock(100, 110)
	// 100 repeats; only 110 should have been added as new.
	assert.Len(t, tbl.Entries, 2)
}

func TestTableCapsAtMaxEntries(t *testing.T) {
	var tbl Table
	tbl.StartBlock(MaxEntries, 1)
	for i := uint8(2); i <= MaxEntries; i++ {
		if i%2 == 0 {
			tbl.NthBlock(i, i+100)
		}
	}
	assert.LessOrEqual(t, len(tbl.Entries), MaxEntries)
}

func TestTableHandlesFillerAndLFMF(t *testing.T) {
	var tbl Table
	tbl.StartBlock(2, fillerCode)
	assert.Empty(t, tbl.Entries)
	tbl.NthBlock(lfMFFollowsCd, 20)
	// One special (LF/MF marker) and one real frequency in the LF/MF band.
	require.Len(t, tbl.Entries, 1)
	assert.Equal(t, BandLFMF, tbl.Entries[0].Band)
}
