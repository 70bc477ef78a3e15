// Package units annotates a measure word with the broader unit family
// bcicen/go-units knows about it, for the "chef units" CLI subcommand.
// It is strictly informational: the interpreter's own Dry/Liquid
// classification (see package parser) is the literal authority for
// evaluation and is never overridden by this package.
package units

import (
	goUnits "github.com/bcicen/go-units"
)

// Describe reports the canonical unit name and family go-units
// recognises for word, if any. ok is false for words go-units does not
// know, which is common for Chef's informal measure vocabulary (e.g.
// "pinch", "dash").
func Describe(word string) (name string, family string, ok bool) {
	unit, err := goUnits.Find(word)
	if err != nil {
		return "", "", false
	}
	return unit.Name, string(unit.Kind), true
}
