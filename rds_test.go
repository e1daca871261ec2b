package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataStartsWithNoCurrentAFTable(t *testing.T) {
	d := NewData()
	require.Equal(t, -1, d.AF.CurrentTableIndex())
}

func TestDecoderResetClearsStateAndFiresCallback(t *testing.T) {
	d := NewData()
	dec := NewDecoder(Config{RDSData: d})

	cleared := false
	dec.SetODACallbacks(nil, func(interface{}) { cleared = true }, nil)

	d.PICode = 0xBEEF
	d.ValidValues |= ValidPICode

	dec.Reset()
	assert.True(t, cleared)
	assert.Zero(t, d.PICode)
	assert.Zero(t, d.ValidValues)
	assert.Equal(t, -1, d.AF.CurrentTableIndex())
}

func TestDecoderResetWithoutCallbacksDoesNotPanic(t *testing.T) {
	d := NewData()
	dec := NewDecoder(Config{RDSData: d})
	assert.NotPanics(t, dec.Reset)
}
