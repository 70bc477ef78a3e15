package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/y-a-v-a/cheffers"
	"github.com/y-a-v-a/cheffers/internal/config"
	"github.com/y-a-v-a/cheffers/internal/diagnostics"
	"github.com/y-a-v-a/cheffers/interpreter"
	"github.com/y-a-v-a/cheffers/parser"
)

var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "chef [recipe-file]",
	Short: "Run a Chef recipe",
	Long: `chef parses and executes a Chef source file.

Chef recipes are cooking-recipe-shaped programs: ingredients are scalar
variables, mixing bowls and baking dishes are the stack/queue memory
model, and "Serve with" invokes an auxiliary recipe as a sous-chef.

With no argument, chef reads the default recipe path from .chef.toml
(or "hello.chef" if no config is present).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChef,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".chef.toml", "path to a .chef.toml config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI-coloured diagnostics")

	rootCmd.ValidArgsFunction = completeChefFiles
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(unitsCmd)
}

func runChef(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if noColor {
		cfg.NoColor = true
	}
	noColor = cfg.NoColor

	path := cfg.DefaultRecipe
	if len(args) == 1 {
		path = args[0]
	}

	recipe, err := readChefFile(path)
	if err != nil {
		return err
	}

	interp := interpreter.New(os.Stdout, os.Stdin)
	interp.MaxCallDepth = cfg.MaxCallDepth
	interp.AddRecipe(recipe)

	if err := interp.Run(); err != nil {
		return err
	}
	return nil
}

func readChefFile(path string) (chef.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chef.Recipe{}, fmt.Errorf("reading %s: %w", path, err)
	}
	recipe, err := parser.New().ParseBytes(data)
	if err != nil {
		return chef.Recipe{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return recipe, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		formatter := diagnostics.New()
		formatter.NoColor = noColor
		fmt.Fprintln(os.Stderr, formatter.Format(err))
		os.Exit(1)
	}
}
