package spec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/y-a-v-a/cheffers/interpreter"
	"github.com/y-a-v-a/cheffers/parser"
	"github.com/y-a-v-a/cheffers/spec"
)

func loadScenarios(t *testing.T) spec.Scenarios {
	t.Helper()
	var scenarios spec.Scenarios
	if err := spec.ParseScenarioFile("testdata/scenarios.yaml", &scenarios); err != nil {
		t.Fatalf("loading scenarios: %v", err)
	}
	return scenarios
}

func TestScenarios(t *testing.T) {
	scenarios := loadScenarios(t)

	for name, sc := range scenarios.Scenarios {
		t.Run(name, func(t *testing.T) {
			recipe, err := parser.New().ParseString(sc.Source)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			var out bytes.Buffer
			in := strings.NewReader(sc.Stdin)
			interp := interpreter.New(&out, in)
			interp.AddRecipe(recipe)

			runErr := interp.Run()

			if sc.ErrorKind != "" {
				if runErr == nil {
					t.Fatalf("expected error containing %q, got none", sc.ErrorKind)
				}
				if !strings.Contains(runErr.Error(), sc.ErrorKind) {
					t.Fatalf("expected error containing %q, got %q", sc.ErrorKind, runErr.Error())
				}
				return
			}

			if runErr != nil {
				t.Fatalf("run: %v", runErr)
			}
			if out.String() != sc.Stdout {
				t.Fatalf("stdout = %q, want %q", out.String(), sc.Stdout)
			}
		})
	}
}
