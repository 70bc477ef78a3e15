package chef

// InstructionKind identifies which instruction variant an Instruction
// value holds. Only the fields relevant to that variant are populated;
// see the comment on each constant for which ones.
type InstructionKind int

const (
	// Take(Ingredient)
	Take InstructionKind = iota
	// Put(Ingredient, Bowl)
	Put
	// Fold(Ingredient, Bowl)
	Fold
	// Add(Ingredient, Bowl)
	Add
	// Remove(Ingredient, Bowl)
	Remove
	// Combine(Ingredient, Bowl)
	Combine
	// Divide(Ingredient, Bowl)
	Divide
	// AddDry(Bowl)
	AddDry
	// Liquefy(Ingredient)
	Liquefy
	// LiquefyBowl(Bowl)
	LiquefyBowl
	// Stir(Bowl, Minutes)
	Stir
	// StirIngredient(Ingredient, Bowl)
	StirIngredient
	// Mix(Bowl)
	Mix
	// Clean(Bowl)
	Clean
	// Pour(Bowl, Dish)
	Pour
	// LoopInstr{ConditionVar, Verb, Body, DecrementVar, HasDecrementVar}
	LoopInstr
	// SetAside
	SetAside
	// ServeWith(RecipeName)
	ServeWith
	// Refrigerate(Hours, HasHours)
	Refrigerate
	// Serves(Count)
	Serves
	// NoOp(Text)
	NoOp
)

// Instruction is a single parsed step of a recipe's Method. It is a tagged
// union expressed as one struct with a Kind discriminant, in the shape of
// the teacher corpus's own component/step types: only the fields that
// matter for Kind are meaningful.
type Instruction struct {
	Kind InstructionKind

	Ingredient string
	Bowl       int
	Dish       int
	Minutes    int

	// LoopInstr fields.
	ConditionVar    string
	Verb            string
	Body            []Instruction
	DecrementVar    string
	HasDecrementVar bool

	RecipeName string

	Hours    int
	HasHours bool

	Count int

	Text string
}
