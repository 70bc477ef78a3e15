package main

import (
	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <recipe-file>",
	Short: "Parse a recipe without executing it",
	Long: `check validates that a Chef recipe parses: title, Ingredients.,
Method., and instruction recognition, including loop stitching. It
performs no evaluation, so a recipe with a runtime error (e.g. an
undeclared ingredient referenced only inside a never-taken branch)
can still pass check.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkJSON, "json", "j", false, "output the parsed recipe as JSON")
	checkCmd.ValidArgsFunction = completeChefFiles
}

func runCheck(cmd *cobra.Command, args []string) error {
	recipe, err := readChefFile(args[0])
	if err != nil {
		return err
	}

	if checkJSON {
		return outputJSON(recipe)
	}

	printSuccess("%s parses: %d ingredient(s), %d instruction(s), %d auxiliary recipe(s)",
		recipe.Title, len(recipe.Ingredients), len(recipe.Instructions), len(recipe.AuxiliaryRecipes))
	return nil
}
