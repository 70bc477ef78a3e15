package chef

import (
	"errors"
	"fmt"
)

// BreakLoop is a sentinel error signalling that a loop body requested early
// exit from its enclosing loop. It is caught by the innermost loop's driver;
// outside any loop the recipe body driver absorbs it, ending that recipe
// body. It never escapes Run. Use errors.Is to test for it.
var BreakLoop = errors.New("break loop")

// EarlyTermination is a sentinel error signalling that a Refrigerate
// instruction requested the recipe stop executing early. It is caught by
// the recipe body driver, not treated as a failure.
var EarlyTermination = errors.New("early termination")

// ParseErrorKind identifies the category of a ParseError.
type ParseErrorKind int

const (
	MissingSection ParseErrorKind = iota
	InvalidIngredient
	InvalidQuantity
	UnknownInstruction
	InvalidLoop
	UnmatchedLoop
)

func (k ParseErrorKind) String() string {
	switch k {
	case MissingSection:
		return "missing section"
	case InvalidIngredient:
		return "invalid ingredient"
	case InvalidQuantity:
		return "invalid quantity"
	case UnknownInstruction:
		return "unknown instruction"
	case InvalidLoop:
		return "invalid loop"
	case UnmatchedLoop:
		return "unmatched loop"
	default:
		return "parse error"
	}
}

// ParseError reports a failure to turn source text into a Recipe. Recipe,
// when non-empty, names the recipe block the error was found in; Detail
// carries the offending text or field.
type ParseError struct {
	Kind   ParseErrorKind
	Recipe string
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Recipe != "" {
		msg = fmt.Sprintf("%s: in recipe %q", msg, e.Recipe)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// RuntimeErrorKind identifies the category of a RuntimeError.
type RuntimeErrorKind int

const (
	UndefinedIngredient RuntimeErrorKind = iota
	EmptyBowl
	DivisionByZero
	UnknownRecipe
	RecursionLimit
	NoRecipe
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case UndefinedIngredient:
		return "undefined ingredient"
	case EmptyBowl:
		return "empty bowl"
	case DivisionByZero:
		return "division by zero"
	case UnknownRecipe:
		return "unknown recipe"
	case RecursionLimit:
		return "recursion limit exceeded"
	case NoRecipe:
		return "no recipe to run"
	default:
		return "runtime error"
	}
}

// RuntimeError reports a failure during evaluation. Only the fields
// relevant to Kind are populated, carrying enough context (ingredient
// name, bowl index, recursion depth, available recipe names) that a
// diagnostic formatter can render a precise message without re-deriving
// it from the instruction stream.
type RuntimeError struct {
	Kind RuntimeErrorKind

	// UndefinedIngredient
	Ingredient string

	// EmptyBowl
	BowlIndex int
	Operation string

	// DivisionByZero
	DivisorIngredient string

	// UnknownRecipe
	RecipeName     string
	AvailableNames []string

	// RecursionLimit
	Recipe string
	Depth  int
	Max    int
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case UndefinedIngredient:
		return fmt.Sprintf("undefined ingredient: %q", e.Ingredient)
	case EmptyBowl:
		return fmt.Sprintf("%s on empty bowl %d", e.Operation, e.BowlIndex)
	case DivisionByZero:
		return fmt.Sprintf("division by zero via ingredient %q", e.DivisorIngredient)
	case UnknownRecipe:
		return fmt.Sprintf("unknown recipe %q (available: %v)", e.RecipeName, e.AvailableNames)
	case RecursionLimit:
		return fmt.Sprintf("recursion limit exceeded calling %q: depth %d exceeds max %d", e.Recipe, e.Depth, e.Max)
	case NoRecipe:
		return "no recipe to run"
	default:
		return "runtime error"
	}
}
