// Package chef implements an interpreter for Chef, an esoteric programming
// language whose source texts are disguised as cooking recipes.
//
// A Chef source describes a main recipe plus zero or more auxiliary
// recipes. The parser (see package parser) turns that source into a Recipe
// value; the evaluator (see package interpreter) executes it, reading
// ingredients from a mixing-bowl/baking-dish memory model and writing
// characters and numbers to an output stream.
//
// # Basic usage
//
//	source, err := os.ReadFile("hello.chef")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	recipe, err := parser.New().ParseString(string(source))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	interp := interpreter.New(os.Stdout, os.Stdin)
//	interp.AddRecipe(recipe)
//	if err := interp.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Memory model
//
// Ingredients live in a scalar variable table. Mixing bowls are ordered
// stacks of Value, baking dishes are FIFO queues of Value; both grow on
// first reference to a higher index and never shrink. A recipe may invoke
// an auxiliary recipe with "Serve with", which inherits the caller's bowls
// and dishes and returns its own bowl 0 merged onto the caller's.
//
// # Measures
//
// Every Value carries a Measure tag (Dry, Liquid, or Unspecified). Liquid
// is the only measure that causes a value to be written as a Unicode code
// point rather than its decimal amount; see Measure.
package chef
