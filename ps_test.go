package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdatePSSimple(t *testing.T) {
	d := NewData()
	updatePSSimple(d, 0, 'A')
	updatePSSimple(d, 1, 'B')
	assert.Equal(t, byte('A'), d.PS.Display[0])
	assert.Equal(t, byte('B'), d.PS.Display[1])
	assert.NotZero(t, d.ValidValues&ValidPS)
}

func TestUpdatePSSimpleIgnoresOutOfRange(t *testing.T) {
	d := NewData()
	updatePSSimple(d, 8, 'X') // out of range, must not panic
	assert.Zero(t, d.PS.Display[0])
}

func TestUpdatePSAdvancedConverges(t *testing.T) {
	d := NewData()
	for i := 0; i < psValidateLimit; i++ {
		updatePSAdvanced(d, 0, 'R')
	}
	assert.Equal(t, byte('R'), d.PS.hiProb[0])
	assert.GreaterOrEqual(t, d.PS.hiProbCnt[0], uint8(psValidateLimit))
}

func TestUpdatePSAdvancedFullMessageConverges(t *testing.T) {
	d := NewData()
	want := [8]byte{'K', 'E', 'X', 'P', ' ', ' ', ' ', ' '}
	for i := 0; i < psValidateLimit; i++ {
		for idx, ch := range want {
			updatePSAdvanced(d, uint8(idx), ch)
		}
	}
	assert.Equal(t, want, d.PS.Display)
}

func TestUpdatePSAdvancedRejectsNoise(t *testing.T) {
	d := NewData()
	updatePSAdvanced(d, 0, 'R')
	updatePSAdvanced(d, 0, 'R')
	updatePSAdvanced(d, 0, 'Z') // single noisy hit shouldn't overturn a validated char
	assert.Equal(t, byte('R'), d.PS.hiProb[0])
}
