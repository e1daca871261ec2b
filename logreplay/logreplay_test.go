package logreplay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rds"
)

func TestParseLineDecodesBlocks(t *testing.T) {
	blocks, err := ParseLine("1234 0408 4142 5720 0 0 0 1")
	require.NoError(t, err)
	assert.EqualValues(t, 0x1234, blocks.A.Val)
	assert.EqualValues(t, 0x0408, blocks.B.Val)
	assert.EqualValues(t, 1, blocks.D.Errors)
}

func TestParseLineRejectsWrongFieldCount(t *testing.T) {
	_, err := ParseLine("1234 0408 4142 5720")
	assert.Error(t, err)
}

func TestParseLineRejectsBadBLER(t *testing.T) {
	_, err := ParseLine("1234 0408 4142 5720 0 0 0 9")
	assert.Error(t, err)
}

func TestReplaySkipsBlankAndCommentLines(t *testing.T) {
	log := strings.Join([]string{
		"# a header comment",
		"",
		"1234 0408 4142 5720 0 0 0 0",
		"5678 0408 4142 5720 0 0 0 0",
	}, "\n")

	var seen []uint16
	n, err := Replay(strings.NewReader(log), func(b *rds.Blocks) {
		seen = append(seen, b.A.Val)
	}, Options{})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uint16{0x1234, 0x5678}, seen)
}

func TestReplayReportsParseErrorsWithoutStopping(t *testing.T) {
	log := "bad line\n1234 0408 4142 5720 0 0 0 0\n"

	var errCount int
	n, err := Replay(strings.NewReader(log), func(*rds.Blocks) {}, Options{
		OnError: func(lineNum int, line string, parseErr error) {
			errCount++
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, errCount)
}
