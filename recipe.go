package chef

// Recipe is the parsed form of one "Title. / Ingredients. / Method." block.
// Only the top-level (main) recipe carries AuxiliaryRecipes; auxiliaries do
// not themselves carry auxiliaries (spec §3).
type Recipe struct {
	Title             string
	Ingredients       map[string]Value
	Instructions      []Instruction
	AuxiliaryRecipes  map[string]Recipe
}

// MixingBowl is an ordered stack of Value, front-of-slice is the top.
type MixingBowl []Value

// BakingDish is a FIFO queue of Value, the output buffer.
type BakingDish []Value

// ExecutionContext is the evaluator's mutable, process-lived state for one
// run: the scalar variable table, the mixing bowls and baking dishes, and
// the call stack used by Serve With invocations.
type ExecutionContext struct {
	Variables    map[string]Value
	MixingBowls  []MixingBowl
	BakingDishes []BakingDish
	CallStack    []CallFrame
}

// NewExecutionContext returns a context with bowl 0 and dish 0 already
// present, matching the reference interpreter's initial state.
func NewExecutionContext() *ExecutionContext {
	return &ExecutionContext{
		Variables:    make(map[string]Value),
		MixingBowls:  []MixingBowl{{}},
		BakingDishes: []BakingDish{{}},
	}
}

// EnsureBowl grows MixingBowls so that index idx exists. Bowls never shrink.
func (ctx *ExecutionContext) EnsureBowl(idx int) {
	for len(ctx.MixingBowls) <= idx {
		ctx.MixingBowls = append(ctx.MixingBowls, MixingBowl{})
	}
}

// EnsureDish grows BakingDishes so that index idx exists. Dishes never shrink.
func (ctx *ExecutionContext) EnsureDish(idx int) {
	for len(ctx.BakingDishes) <= idx {
		ctx.BakingDishes = append(ctx.BakingDishes, BakingDish{})
	}
}

// CallFrame is a snapshot of (Variables, MixingBowls, BakingDishes) taken
// at the moment of a Serve With call, used to restore caller state once
// the auxiliary recipe returns.
type CallFrame struct {
	Variables    map[string]Value
	MixingBowls  []MixingBowl
	BakingDishes []BakingDish
}

// cloneVariables deep-copies a variable table so that caller and callee
// mutate independent maps.
func cloneVariables(vars map[string]Value) map[string]Value {
	out := make(map[string]Value, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out
}

// cloneBowls deep-copies a slice of mixing bowls.
func cloneBowls(bowls []MixingBowl) []MixingBowl {
	out := make([]MixingBowl, len(bowls))
	for i, b := range bowls {
		cp := make(MixingBowl, len(b))
		copy(cp, b)
		out[i] = cp
	}
	return out
}

// cloneDishes deep-copies a slice of baking dishes.
func cloneDishes(dishes []BakingDish) []BakingDish {
	out := make([]BakingDish, len(dishes))
	for i, d := range dishes {
		cp := make(BakingDish, len(d))
		copy(cp, d)
		out[i] = cp
	}
	return out
}

// Snapshot captures the current context as a CallFrame.
func (ctx *ExecutionContext) Snapshot() CallFrame {
	return CallFrame{
		Variables:    cloneVariables(ctx.Variables),
		MixingBowls:  cloneBowls(ctx.MixingBowls),
		BakingDishes: cloneDishes(ctx.BakingDishes),
	}
}

// Restore replaces the context's state with a previously captured frame.
func (ctx *ExecutionContext) Restore(frame CallFrame) {
	ctx.Variables = frame.Variables
	ctx.MixingBowls = frame.MixingBowls
	ctx.BakingDishes = frame.BakingDishes
}
