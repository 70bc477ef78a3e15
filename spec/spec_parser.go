package spec

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ParseScenarioFile reads a YAML scenario fixture file and unmarshals it
// into out.
func ParseScenarioFile(path string, out *Scenarios) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	return ParseScenarioData(data, out)
}

// ParseScenarioData unmarshals raw YAML scenario fixture content into out.
func ParseScenarioData(data []byte, out *Scenarios) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal scenarios: %w", err)
	}
	return nil
}
