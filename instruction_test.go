package chef

import "testing"

func TestInstruction_KindIsDiscriminant(t *testing.T) {
	put := Instruction{Kind: Put, Ingredient: "sugar", Bowl: 1}
	if put.Kind != Put || put.Ingredient != "sugar" || put.Bowl != 1 {
		t.Errorf("got %#v", put)
	}

	loop := Instruction{
		Kind:         LoopInstr,
		ConditionVar: "counter",
		Body:         []Instruction{{Kind: Add, Ingredient: "increment"}},
	}
	if loop.Kind != LoopInstr || len(loop.Body) != 1 {
		t.Errorf("got %#v", loop)
	}
}
