package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCodeToFreqUHF(t *testing.T) {
	assert.EqualValues(t, 876, CodeToFreq(1, BandUHF))
	assert.EqualValues(t, 1079, CodeToFreq(204, BandUHF))
}

func TestCodeToFreqLFMF(t *testing.T) {
	assert.EqualValues(t, 153, CodeToFreq(1, BandLFMF))
	assert.EqualValues(t, 531, CodeToFreq(16, BandLFMF))
}

func TestIsCountCode(t *testing.T) {
	assert.False(t, IsCountCode(204))
	assert.True(t, IsCountCode(225))
	assert.True(t, IsCountCode(249))
	assert.False(t, IsCountCode(250))
}

func TestCountFromCode(t *testing.T) {
	assert.EqualValues(t, 1, CountFromCode(225))
	assert.EqualValues(t, 25, CountFromCode(249))
}

func TestCodeToFreqMonotonicUHF(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		code := uint8(rapid.IntRange(1, 203).Draw(rt, "code"))
		a := CodeToFreq(code, BandUHF)
		b := CodeToFreq(code+1, BandUHF)
		assert.Less(t, a, b)
	})
}
