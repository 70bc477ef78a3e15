// Package spec loads the end-to-end scenario fixtures (S1-S6) as YAML,
// grounded on the teacher's canonical-test loading shape but adapted to
// Chef's source-in/stdout-out test case rather than a parsed-step
// comparison.
package spec

// Scenarios is the top-level shape of a scenario fixture file: a named
// map of Scenario values.
type Scenarios struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is one end-to-end test case: a Chef source document plus its
// expected observable outcome.
type Scenario struct {
	Source      string `yaml:"source"`
	Stdin       string `yaml:"stdin,omitempty"`
	Stdout      string `yaml:"stdout,omitempty"`
	ErrorKind   string `yaml:"error_kind,omitempty"`
	Description string `yaml:"description,omitempty"`
}
