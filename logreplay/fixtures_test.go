package logreplay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rds"
)

func findScenario(t *testing.T, name string) Scenario {
	t.Helper()
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc
		}
	}
	t.Fatalf("scenario %q not found", name)
	return Scenario{}
}

func TestLoadScenariosPSUpdate(t *testing.T) {
	sc := findScenario(t, "ps_update")
	require.Len(t, sc.Lines, 2)

	log := strings.Join(sc.Lines, "\n")
	var groups []*rds.Blocks
	n, err := Replay(strings.NewReader(log), func(b *rds.Blocks) {
		groups = append(groups, b)
	}, Options{})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.EqualValues(t, 0x1234, groups[0].A.Val)
}

func TestLoadScenariosRadiotext(t *testing.T) {
	sc := findScenario(t, "rt_2a")
	log := strings.Join(sc.Lines, "\n")

	d := rds.NewData()
	dec := rds.NewDecoder(rds.Config{RDSData: d, AdvancedPSDecoding: true})

	_, err := Replay(strings.NewReader(log), func(b *rds.Blocks) {
		dec.Decode(b)
	}, Options{})

	require.NoError(t, err)
	assert.NotZero(t, d.ValidValues&rds.ValidRT)
}
