// Package diagnostics renders chef.ParseError and chef.RuntimeError
// values as ANSI-coloured terminal messages. No third-party colour
// library appears anywhere in the retrieved corpus, so this package uses
// raw ANSI escape codes directly, the same way the reference
// error-formatter does; the core packages never import this one.
package diagnostics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/y-a-v-a/cheffers"
)

const (
	reset  = "\x1b[0m"
	bold   = "\x1b[1m"
	red    = "\x1b[31m"
	yellow = "\x1b[33m"
	cyan   = "\x1b[36m"
)

func colorize(text, color string, isBold bool) string {
	if isBold {
		return bold + color + text + reset
	}
	return color + text + reset
}

// Formatter renders errors for the error stream. NoColor disables all
// ANSI escapes, for non-terminal output.
type Formatter struct {
	NoColor bool
}

// New returns a Formatter with colour enabled.
func New() *Formatter {
	return &Formatter{}
}

func (f *Formatter) color(text, color string, isBold bool) string {
	if f.NoColor {
		return text
	}
	return colorize(text, color, isBold)
}

// Format renders err as a multi-line diagnostic. Control-flow signals
// (BreakLoop, EarlyTermination) are rendered as plain informational
// lines rather than as failures, since they are not true errors.
func (f *Formatter) Format(err error) string {
	if errors.Is(err, chef.BreakLoop) {
		return "loop break (set aside)"
	}
	if errors.Is(err, chef.EarlyTermination) {
		return "recipe terminated early (refrigerate)"
	}

	var parseErr *chef.ParseError
	if errors.As(err, &parseErr) {
		return f.formatParseError(parseErr)
	}

	var runtimeErr *chef.RuntimeError
	if errors.As(err, &runtimeErr) {
		return f.formatRuntimeError(runtimeErr)
	}

	return f.color("error", red, true) + ": " + err.Error()
}

func (f *Formatter) formatParseError(err *chef.ParseError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", f.color("parse error", red, true), err.Kind)
	if err.Recipe != "" {
		fmt.Fprintf(&b, "  %s %s\n", f.color("recipe:", cyan, false), err.Recipe)
	}
	if err.Detail != "" {
		fmt.Fprintf(&b, "  %s %s\n", f.color("detail:", cyan, false), err.Detail)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) formatRuntimeError(err *chef.RuntimeError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", f.color("runtime error", red, true), err.Kind)

	switch err.Kind {
	case chef.UndefinedIngredient:
		fmt.Fprintf(&b, "  %s %s\n", f.color("ingredient:", cyan, false), err.Ingredient)
		fmt.Fprintf(&b, "  %s ingredients must be declared before use\n", f.color("note:", yellow, true))
	case chef.EmptyBowl:
		fmt.Fprintf(&b, "  %s %d\n", f.color("bowl:", cyan, false), err.BowlIndex)
		fmt.Fprintf(&b, "  %s %s\n", f.color("operation:", cyan, false), err.Operation)
	case chef.DivisionByZero:
		fmt.Fprintf(&b, "  %s %s\n", f.color("divisor ingredient:", cyan, false), err.DivisorIngredient)
		fmt.Fprintf(&b, "  %s %d\n", f.color("bowl:", cyan, false), err.BowlIndex)
	case chef.UnknownRecipe:
		fmt.Fprintf(&b, "  %s %s\n", f.color("recipe:", cyan, false), err.RecipeName)
		fmt.Fprintf(&b, "  %s %s\n", f.color("known recipes:", cyan, false), strings.Join(err.AvailableNames, ", "))
	case chef.RecursionLimit:
		fmt.Fprintf(&b, "  %s %s\n", f.color("recipe:", cyan, false), err.Recipe)
		fmt.Fprintf(&b, "  %s %d/%d\n", f.color("depth:", cyan, false), err.Depth, err.Max)
	}

	return strings.TrimRight(b.String(), "\n")
}
