package logreplay

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one named, canned sequence of log lines, used by tests that
// want a realistic multi-group exchange without hand-writing raw block
// values inline.
type Scenario struct {
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a YAML fixture file of named log-line scenarios.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf scenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, err
	}
	return sf.Scenarios, nil
}
