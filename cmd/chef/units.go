package main

import (
	"github.com/spf13/cobra"

	"github.com/y-a-v-a/cheffers/internal/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units <word>",
	Short: "Describe a measure word",
	Long: `units looks up a measure word against the broader unit vocabulary
known to bcicen/go-units, for reference only: the interpreter's own
Dry/Liquid classification is fixed and is never influenced by this
command.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	word := args[0]
	name, family, ok := units.Describe(word)
	if !ok {
		printInfo("%q is not a unit go-units recognises (this is normal for Chef words like \"pinch\" or \"dash\")", word)
		return nil
	}
	printInfo("%q: %s (%s)", word, name, family)
	return nil
}
