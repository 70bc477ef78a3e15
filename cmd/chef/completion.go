package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// completeChefFiles provides shell completion for .chef files
func completeChefFiles(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	pattern := toComplete + "*.chef"
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	if toComplete != "" {
		dirPattern := toComplete + "*"
		dirMatches, _ := filepath.Glob(dirPattern)
		for _, m := range dirMatches {
			if info, err := filepath.Glob(m + "/*.chef"); err == nil && len(info) > 0 {
				matches = append(matches, m+"/")
			}
		}
	}

	if len(matches) == 0 && toComplete == "" {
		matches, _ = filepath.Glob("*.chef")
	}

	return matches, cobra.ShellCompDirectiveNoSpace
}
