// Package interpreter implements the tree-walking evaluator (component D):
// it owns an ExecutionContext, a normalized-title → Recipe table, and the
// per-instruction semantics, loop driver, and Serve With call protocol.
//
// The evaluator is grounded on the reference interpreter's instruction
// dispatch and stir/pour/output mechanics, but its Serve With call
// protocol differs deliberately: the reference implementation resets
// variables and clears bowls/dishes on every call, where this
// implementation overlays callee ingredients onto the caller's variables
// and lets bowls and dishes carry across the call, per the documented
// sous-chef model.
package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/y-a-v-a/cheffers"
)

// DefaultMaxCallDepth is the reference call-stack bound for Serve With
// recursion.
const DefaultMaxCallDepth = 64

// Interpreter executes a loaded recipe graph against an ExecutionContext,
// writing Serves/Refrigerate output to Out and reading Take input from In.
type Interpreter struct {
	Out io.Writer
	In  *bufio.Reader

	MaxCallDepth int

	context      *chef.ExecutionContext
	recipes      map[string]chef.Recipe
	mainKey      string
	hasMainKey   bool
}

// New returns an Interpreter writing to out and reading Take input from in.
func New(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{
		Out:          out,
		In:           bufio.NewReader(in),
		MaxCallDepth: DefaultMaxCallDepth,
		context:      chef.NewExecutionContext(),
		recipes:      make(map[string]chef.Recipe),
	}
}

// AddRecipe registers recipe as the main recipe and registers its
// auxiliary recipes alongside it, all under normalized titles.
func (interp *Interpreter) AddRecipe(recipe chef.Recipe) {
	key := normalizeRecipeName(recipe.Title)
	interp.mainKey = key
	interp.hasMainKey = true
	interp.recipes[key] = recipe

	for title, aux := range recipe.AuxiliaryRecipes {
		interp.recipes[normalizeRecipeName(title)] = aux
	}
}

// normalizeRecipeName trims surrounding whitespace, strips a single
// trailing period, and folds to lowercase.
func normalizeRecipeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".")
	return strings.ToLower(name)
}

// Run executes the registered main recipe.
func (interp *Interpreter) Run() error {
	if !interp.hasMainKey {
		return &chef.RuntimeError{Kind: chef.NoRecipe}
	}
	recipe, ok := interp.recipes[interp.mainKey]
	if !ok {
		return &chef.RuntimeError{Kind: chef.NoRecipe}
	}
	return interp.executeRecipe(recipe)
}

// executeRecipe seeds the context's variables from recipe's ingredient
// declarations and runs its instructions in order. EarlyTermination, and a
// BreakLoop that no loop caught, are absorbed here, stopping this recipe
// body cleanly.
func (interp *Interpreter) executeRecipe(recipe chef.Recipe) error {
	interp.context.Variables = cloneIngredients(recipe.Ingredients)

	err := interp.executeSequence(recipe.Instructions)
	if err == chef.EarlyTermination || err == chef.BreakLoop {
		return nil
	}
	return err
}

func cloneIngredients(src map[string]chef.Value) map[string]chef.Value {
	out := make(map[string]chef.Value, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func (interp *Interpreter) executeSequence(instructions []chef.Instruction) error {
	for _, inst := range instructions {
		if err := interp.executeInstruction(inst); err != nil {
			return err
		}
	}
	return nil
}

func (interp *Interpreter) executeInstruction(inst chef.Instruction) error {
	switch inst.Kind {
	case chef.Take:
		return interp.execTake(inst)
	case chef.Put:
		return interp.execPut(inst)
	case chef.Fold:
		return interp.execFold(inst)
	case chef.Add:
		return interp.execArith(inst, func(top, v int64) int64 { return top + v })
	case chef.Remove:
		return interp.execArith(inst, func(top, v int64) int64 { return top - v })
	case chef.Combine:
		return interp.execArith(inst, func(top, v int64) int64 { return top * v })
	case chef.Divide:
		return interp.execDivide(inst)
	case chef.AddDry:
		return interp.execAddDry(inst)
	case chef.Liquefy:
		return interp.execLiquefy(inst)
	case chef.LiquefyBowl:
		return interp.execLiquefyBowl(inst)
	case chef.Stir:
		return interp.execStir(inst)
	case chef.StirIngredient:
		return interp.execStirIngredient(inst)
	case chef.Mix:
		return interp.execMix(inst)
	case chef.Clean:
		return interp.execClean(inst)
	case chef.Pour:
		return interp.execPour(inst)
	case chef.LoopInstr:
		return interp.execLoop(inst)
	case chef.SetAside:
		return chef.BreakLoop
	case chef.ServeWith:
		return interp.execServeWith(inst)
	case chef.Refrigerate:
		return interp.execRefrigerate(inst)
	case chef.Serves:
		return interp.output(inst.Count)
	case chef.NoOp:
		return nil
	default:
		return nil
	}
}

func (interp *Interpreter) variable(name string) (chef.Value, error) {
	v, ok := interp.context.Variables[name]
	if !ok {
		return chef.Value{}, &chef.RuntimeError{Kind: chef.UndefinedIngredient, Ingredient: name}
	}
	return v, nil
}

func (interp *Interpreter) execTake(inst chef.Instruction) error {
	var amount int64
	if _, err := fmt.Fscan(interp.In, &amount); err != nil {
		amount = 0
	}
	interp.context.Variables[inst.Ingredient] = chef.Value{Amount: amount, Measure: chef.Unspecified}
	return nil
}

func (interp *Interpreter) execPut(inst chef.Instruction) error {
	value, err := interp.variable(inst.Ingredient)
	if err != nil {
		return err
	}
	interp.context.EnsureBowl(inst.Bowl)
	interp.context.MixingBowls[inst.Bowl] = append(chef.MixingBowl{value}, interp.context.MixingBowls[inst.Bowl]...)
	return nil
}

func (interp *Interpreter) execFold(inst chef.Instruction) error {
	interp.context.EnsureBowl(inst.Bowl)
	bowl := interp.context.MixingBowls[inst.Bowl]
	if len(bowl) == 0 {
		return &chef.RuntimeError{Kind: chef.EmptyBowl, BowlIndex: inst.Bowl, Operation: "fold"}
	}
	top := bowl[0]
	interp.context.MixingBowls[inst.Bowl] = bowl[1:]
	interp.context.Variables[inst.Ingredient] = top
	return nil
}

func (interp *Interpreter) execArith(inst chef.Instruction, apply func(top, v int64) int64) error {
	value, err := interp.variable(inst.Ingredient)
	if err != nil {
		return err
	}
	interp.context.EnsureBowl(inst.Bowl)
	bowl := interp.context.MixingBowls[inst.Bowl]
	if len(bowl) == 0 {
		return &chef.RuntimeError{Kind: chef.EmptyBowl, BowlIndex: inst.Bowl, Operation: "arithmetic"}
	}
	bowl[0].Amount = apply(bowl[0].Amount, value.Amount)
	return nil
}

func (interp *Interpreter) execDivide(inst chef.Instruction) error {
	value, err := interp.variable(inst.Ingredient)
	if err != nil {
		return err
	}
	if value.Amount == 0 {
		return &chef.RuntimeError{Kind: chef.DivisionByZero, DivisorIngredient: inst.Ingredient, BowlIndex: inst.Bowl}
	}
	interp.context.EnsureBowl(inst.Bowl)
	bowl := interp.context.MixingBowls[inst.Bowl]
	if len(bowl) == 0 {
		return &chef.RuntimeError{Kind: chef.EmptyBowl, BowlIndex: inst.Bowl, Operation: "divide"}
	}
	bowl[0].Amount /= value.Amount
	return nil
}

func (interp *Interpreter) execAddDry(inst chef.Instruction) error {
	var sum int64
	for _, v := range interp.context.Variables {
		if v.Measure == chef.Dry {
			sum += v.Amount
		}
	}
	interp.context.EnsureBowl(inst.Bowl)
	interp.context.MixingBowls[inst.Bowl] = append(chef.MixingBowl{{Amount: sum, Measure: chef.Dry}}, interp.context.MixingBowls[inst.Bowl]...)
	return nil
}

func (interp *Interpreter) execLiquefy(inst chef.Instruction) error {
	value, err := interp.variable(inst.Ingredient)
	if err != nil {
		return err
	}
	value.Measure = chef.Liquid
	interp.context.Variables[inst.Ingredient] = value
	return nil
}

func (interp *Interpreter) execLiquefyBowl(inst chef.Instruction) error {
	interp.context.EnsureBowl(inst.Bowl)
	bowl := interp.context.MixingBowls[inst.Bowl]
	for i := range bowl {
		bowl[i].Measure = chef.Liquid
	}
	return nil
}

// stirBowl rotates the top element of bowl idx down by depth positions,
// clamped to len-1. A bowl of length <= 1 or a depth of 0 is a no-op.
func (interp *Interpreter) stirBowl(idx, depth int) {
	bowl := interp.context.MixingBowls[idx]
	if len(bowl) <= 1 || depth <= 0 {
		return
	}
	if depth > len(bowl)-1 {
		depth = len(bowl) - 1
	}
	top := bowl[0]
	rest := append(chef.MixingBowl{}, bowl[1:]...)
	newBowl := make(chef.MixingBowl, 0, len(bowl))
	newBowl = append(newBowl, rest[:depth]...)
	newBowl = append(newBowl, top)
	newBowl = append(newBowl, rest[depth:]...)
	interp.context.MixingBowls[idx] = newBowl
}

func (interp *Interpreter) execStir(inst chef.Instruction) error {
	interp.context.EnsureBowl(inst.Bowl)
	if inst.Minutes == 0 {
		return nil
	}
	interp.stirBowl(inst.Bowl, inst.Minutes)
	return nil
}

func (interp *Interpreter) execStirIngredient(inst chef.Instruction) error {
	value, err := interp.variable(inst.Ingredient)
	if err != nil {
		return err
	}
	interp.context.EnsureBowl(inst.Bowl)
	depth := int(value.Amount)
	if depth < 0 {
		depth = 0
	}
	interp.stirBowl(inst.Bowl, depth)
	return nil
}

func (interp *Interpreter) execMix(inst chef.Instruction) error {
	interp.context.EnsureBowl(inst.Bowl)
	bowl := interp.context.MixingBowls[inst.Bowl]
	for i, j := 0, len(bowl)-1; i < j; i, j = i+1, j-1 {
		bowl[i], bowl[j] = bowl[j], bowl[i]
	}
	return nil
}

func (interp *Interpreter) execClean(inst chef.Instruction) error {
	interp.context.EnsureBowl(inst.Bowl)
	interp.context.MixingBowls[inst.Bowl] = chef.MixingBowl{}
	return nil
}

func (interp *Interpreter) execPour(inst chef.Instruction) error {
	interp.context.EnsureBowl(inst.Bowl)
	interp.context.EnsureDish(inst.Dish)
	bowl := interp.context.MixingBowls[inst.Bowl]
	dish := interp.context.BakingDishes[inst.Dish]
	dish = append(dish, bowl...)
	interp.context.BakingDishes[inst.Dish] = dish
	interp.context.MixingBowls[inst.Bowl] = chef.MixingBowl{}
	return nil
}

// execLoop drives a Loop instruction. Each iteration reads the check
// ingredient (decrementVar if present, else conditionVar); a zero amount
// exits the loop. The body runs; BreakLoop exits the loop without
// decrementing. Otherwise, if decrementVar is present, it is decremented
// by one after the body completes.
func (interp *Interpreter) execLoop(inst chef.Instruction) error {
	checkVar := inst.ConditionVar
	if inst.HasDecrementVar {
		checkVar = inst.DecrementVar
	}

	for {
		check, err := interp.variable(checkVar)
		if err != nil {
			return err
		}
		if check.Amount == 0 {
			return nil
		}

		err = interp.executeSequence(inst.Body)
		if err == chef.BreakLoop {
			return nil
		}
		if err != nil {
			return err
		}

		if inst.HasDecrementVar {
			v, err := interp.variable(inst.DecrementVar)
			if err != nil {
				return err
			}
			v.Amount--
			interp.context.Variables[inst.DecrementVar] = v
		}
	}
}

func (interp *Interpreter) execRefrigerate(inst chef.Instruction) error {
	if inst.HasHours {
		if err := interp.output(inst.Hours); err != nil {
			return err
		}
	}
	return chef.EarlyTermination
}

// execServeWith implements the documented sous-chef call protocol: the
// callee's declared ingredients overlay the caller's variable table
// (callee wins on collision), bowls and dishes are inherited rather than
// cleared, and on return the callee's bowl-0 contents are merged onto the
// caller's bowl-0 in original top-first order.
func (interp *Interpreter) execServeWith(inst chef.Instruction) error {
	key := normalizeRecipeName(inst.RecipeName)
	callee, ok := interp.recipes[key]
	if !ok {
		return &chef.RuntimeError{Kind: chef.UnknownRecipe, RecipeName: inst.RecipeName, AvailableNames: interp.recipeTitles()}
	}

	if len(interp.context.CallStack) >= interp.callDepthLimit() {
		return &chef.RuntimeError{Kind: chef.RecursionLimit, Recipe: inst.RecipeName, Depth: len(interp.context.CallStack) + 1, Max: interp.callDepthLimit()}
	}

	frame := interp.context.Snapshot()
	interp.context.CallStack = append(interp.context.CallStack, frame)

	for name, value := range callee.Ingredients {
		interp.context.Variables[name] = value
	}

	err := interp.executeSequence(callee.Instructions)
	if err == chef.EarlyTermination || err == chef.BreakLoop {
		err = nil
	}

	interp.context.EnsureBowl(0)
	calleeBowl0 := append(chef.MixingBowl{}, interp.context.MixingBowls[0]...)

	last := len(interp.context.CallStack) - 1
	restored := interp.context.CallStack[last]
	interp.context.CallStack = interp.context.CallStack[:last]
	interp.context.Restore(restored)

	if err != nil {
		return err
	}

	// Bowl 0 is the sous-chef's return channel: every other bowl, dish and
	// variable reverts to its pre-call snapshot, but bowl 0 is installed
	// directly from what the callee left it at, since it was never cloned
	// away in the first place (step 4 never clears it).
	interp.context.EnsureBowl(0)
	interp.context.MixingBowls[0] = calleeBowl0
	return nil
}

func (interp *Interpreter) callDepthLimit() int {
	if interp.MaxCallDepth <= 0 {
		return DefaultMaxCallDepth
	}
	return interp.MaxCallDepth
}

func (interp *Interpreter) recipeTitles() []string {
	names := make([]string, 0, len(interp.recipes))
	for k := range interp.recipes {
		names = append(names, k)
	}
	return names
}

// output walks the first k baking dishes in order, draining each FIFO and
// writing each value: Liquid values as a Unicode code point (skipped if
// out of range), everything else as a decimal integer. No separators.
func (interp *Interpreter) output(k int) error {
	if k > len(interp.context.BakingDishes) {
		k = len(interp.context.BakingDishes)
	}
	for i := 0; i < k; i++ {
		dish := interp.context.BakingDishes[i]
		for _, value := range dish {
			if value.Measure == chef.Liquid {
				if value.Amount >= 0 && value.Amount <= 0x10FFFF {
					r := rune(value.Amount)
					if (r >= 0xD800 && r <= 0xDFFF) || r > 0x10FFFF {
						continue
					}
					fmt.Fprintf(interp.Out, "%c", r)
				}
				continue
			}
			fmt.Fprintf(interp.Out, "%d", value.Amount)
		}
		interp.context.BakingDishes[i] = chef.BakingDish{}
	}
	return nil
}
