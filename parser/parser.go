// Package parser turns Chef source text into a chef.Recipe (component B).
// It delegates recipe-block and sentence splitting to internal/segmenter
// and per-sentence instruction recognition to internal/recognizer, and is
// responsible for the title/Ingredients./Method. block grammar and the
// ingredient-line grammar.
package parser

import (
	"io"
	"strings"

	"github.com/y-a-v-a/cheffers"
	"github.com/y-a-v-a/cheffers/internal/quantity"
	"github.com/y-a-v-a/cheffers/internal/recognizer"
	"github.com/y-a-v-a/cheffers/internal/segmenter"
)

const (
	ingredientsMarker = "Ingredients."
	methodMarker      = "Method."
)

// Parser parses Chef source into a chef.Recipe. The zero value is ready
// to use; construct one with New for symmetry with the rest of the
// package's API surface.
type Parser struct{}

// New returns a ready-to-use Parser.
func New() *Parser {
	return &Parser{}
}

// ParseString parses a full Chef source document, returning the main
// recipe with its auxiliary recipes populated.
func (p *Parser) ParseString(input string) (chef.Recipe, error) {
	blocks := segmenter.SplitRecipes(input)
	if len(blocks) == 0 {
		return chef.Recipe{}, &chef.ParseError{Kind: chef.MissingSection, Detail: "Recipe"}
	}

	recipes := make([]chef.Recipe, 0, len(blocks))
	for _, block := range blocks {
		recipe, err := parseSingleRecipe(block)
		if err != nil {
			return chef.Recipe{}, err
		}
		recipes = append(recipes, recipe)
	}

	main := recipes[0]
	main.AuxiliaryRecipes = make(map[string]chef.Recipe, len(recipes)-1)
	for _, aux := range recipes[1:] {
		main.AuxiliaryRecipes[aux.Title] = aux
	}

	return main, nil
}

// ParseBytes parses Chef source supplied as raw bytes.
func (p *Parser) ParseBytes(input []byte) (chef.Recipe, error) {
	return p.ParseString(string(input))
}

// ParseReader parses Chef source read in full from r.
func (p *Parser) ParseReader(r io.Reader) (chef.Recipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return chef.Recipe{}, err
	}
	return p.ParseBytes(data)
}

func parseSingleRecipe(block string) (chef.Recipe, error) {
	title, err := parseTitle(block)
	if err != nil {
		return chef.Recipe{}, err
	}

	ingredientsIdx := strings.Index(block, ingredientsMarker)
	if ingredientsIdx < 0 {
		return chef.Recipe{}, &chef.ParseError{Kind: chef.MissingSection, Recipe: title, Detail: "Ingredients"}
	}
	methodIdx := strings.Index(block, methodMarker)
	if methodIdx < 0 || methodIdx <= ingredientsIdx {
		return chef.Recipe{}, &chef.ParseError{Kind: chef.MissingSection, Recipe: title, Detail: "Method"}
	}

	ingredientsText := block[ingredientsIdx+len(ingredientsMarker) : methodIdx]
	methodText := block[methodIdx+len(methodMarker):]

	ingredients, err := parseIngredients(ingredientsText, title)
	if err != nil {
		return chef.Recipe{}, err
	}

	sentences := segmenter.SplitSentences(methodText)
	instructions, err := recognizer.Recognize(sentences)
	if err != nil {
		if pe, ok := err.(*chef.ParseError); ok && pe.Recipe == "" {
			pe.Recipe = title
		}
		return chef.Recipe{}, err
	}

	return chef.Recipe{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}

// parseTitle returns the first non-blank line that is neither the
// Ingredients nor the Method marker.
func parseTitle(block string) (string, error) {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == ingredientsMarker || line == methodMarker {
			continue
		}
		return line, nil
	}
	return "", &chef.ParseError{Kind: chef.MissingSection, Detail: "Title"}
}

func parseIngredients(text, recipeTitle string) (map[string]chef.Value, error) {
	ingredients := make(map[string]chef.Value)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		amountRaw, rest, ok := splitAmountAndRest(line)
		if !ok {
			return nil, &chef.ParseError{Kind: chef.InvalidIngredient, Recipe: recipeTitle, Detail: line}
		}

		amount, err := quantity.Parse(amountRaw)
		if err != nil {
			return nil, &chef.ParseError{Kind: chef.InvalidQuantity, Recipe: recipeTitle, Detail: amountRaw, Err: err}
		}

		measure, name := splitMeasureAndIngredient(rest)
		if name == "" {
			return nil, &chef.ParseError{Kind: chef.InvalidIngredient, Recipe: recipeTitle, Detail: line}
		}

		if _, exists := ingredients[name]; exists {
			return nil, &chef.ParseError{Kind: chef.InvalidIngredient, Recipe: recipeTitle, Detail: "duplicate ingredient " + name}
		}

		ingredients[name] = chef.Value{Amount: amount, Measure: measure}
	}

	return ingredients, nil
}

// splitAmountAndRest splits a line into its leading amount tokens
// (digits, signs, slashes, and internal whitespace) and the remaining
// text. It mirrors the reference grammar `^[-\d\s/]+\s+(.+)$`.
func splitAmountAndRest(line string) (amount, rest string, ok bool) {
	i := 0
	for i < len(line) && isAmountRune(rune(line[i])) {
		i++
	}
	if i == 0 || i == len(line) {
		return "", "", false
	}
	// The amount run must end on whitespace, else the split point fell
	// mid-token (e.g. "2g") rather than on the grammar's required gap.
	if line[i-1] != ' ' && line[i-1] != '\t' {
		return "", "", false
	}
	amount = strings.TrimRight(line[:i], " \t")
	if amount == "" {
		return "", "", false
	}
	rest = strings.TrimLeft(line[i:], " \t")
	if rest == "" {
		return "", "", false
	}
	return amount, rest, true
}

func isAmountRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '/' || r == ' ' || r == '\t'
}

var dryWords = map[string]bool{
	"g": true, "kg": true, "gram": true, "grams": true,
	"kilogram": true, "kilograms": true, "oz": true, "ounce": true, "ounces": true,
	"lb": true, "pound": true, "pounds": true, "pinch": true, "pinches": true,
	"cup": true, "cups": true, "teaspoon": true, "teaspoons": true,
	"tablespoon": true, "tablespoons": true, "tsp": true, "tbsp": true,
	"dash": true, "dashes": true,
}

var liquidWords = map[string]bool{
	"ml": true, "l": true, "liter": true, "liters": true,
	"litre": true, "litres": true, "cl": true, "dl": true,
}

var measureModifiers = map[string]bool{
	"heaped": true, "level": true, "rounded": true, "flat": true,
	"large": true, "small": true, "fluid": true,
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}))
}

func measureFromWord(word string) (chef.Measure, bool) {
	switch {
	case dryWords[word]:
		return chef.Dry, true
	case liquidWords[word]:
		return chef.Liquid, true
	default:
		return chef.Unspecified, false
	}
}

// splitMeasureAndIngredient consumes a leading run of measure words and
// modifiers from rest, returning the measure determined by the last
// recognised measure word (modifiers carry none of their own) and the
// remaining, re-joined ingredient name.
func splitMeasureAndIngredient(rest string) (chef.Measure, string) {
	tokens := strings.Fields(rest)
	consumed := 0
	var measureTokens []string

	for _, token := range tokens {
		normalized := normalizeWord(token)
		if measureModifiers[normalized] {
			measureTokens = append(measureTokens, normalized)
			consumed++
			continue
		}
		if _, ok := measureFromWord(normalized); ok {
			measureTokens = append(measureTokens, normalized)
			consumed++
			continue
		}
		break
	}

	measure := chef.Unspecified
	for i := len(measureTokens) - 1; i >= 0; i-- {
		if m, ok := measureFromWord(measureTokens[i]); ok {
			measure = m
			break
		}
	}

	name := strings.TrimSpace(strings.Join(tokens[consumed:], " "))
	return measure, name
}
