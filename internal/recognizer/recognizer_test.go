package recognizer

import (
	"testing"

	chef "github.com/y-a-v-a/cheffers"
)

func TestRecognize_SimplePut(t *testing.T) {
	sentences := []string{"Put sugar into mixing bowl"}
	instrs, err := Recognize(sentences)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(instrs) != 1 || instrs[0].Kind != chef.Put || instrs[0].Ingredient != "sugar" {
		t.Fatalf("got %#v", instrs)
	}
}

func TestRecognize_OrdinalBowl(t *testing.T) {
	sentences := []string{"Put sugar into the 2nd mixing bowl"}
	instrs, err := Recognize(sentences)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if instrs[0].Bowl != 1 {
		t.Errorf("Bowl = %d, want 1 (0-indexed from ordinal 2)", instrs[0].Bowl)
	}
}

func TestRecognize_Loop(t *testing.T) {
	sentences := []string{
		"Cook the counter",
		"Add increment to mixing bowl",
		"Cook until cooked counter",
	}
	instrs, err := Recognize(sentences)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(instrs) != 1 || instrs[0].Kind != chef.LoopInstr {
		t.Fatalf("got %#v", instrs)
	}
	loop := instrs[0]
	if loop.ConditionVar != "counter" {
		t.Errorf("ConditionVar = %q, want counter", loop.ConditionVar)
	}
	if !loop.HasDecrementVar || loop.DecrementVar != "counter" {
		t.Errorf("DecrementVar = %q (has=%v), want counter", loop.DecrementVar, loop.HasDecrementVar)
	}
	if len(loop.Body) != 1 || loop.Body[0].Kind != chef.Add {
		t.Fatalf("loop body = %#v", loop.Body)
	}
}

func TestRecognize_UnmatchedLoop(t *testing.T) {
	sentences := []string{"Cook the counter", "Add increment to mixing bowl"}
	_, err := Recognize(sentences)
	if err == nil {
		t.Fatal("expected error for unmatched loop, got none")
	}
}

func TestRecognize_ServeWith(t *testing.T) {
	sentences := []string{"Serve with Caramel Sauce"}
	instrs, err := Recognize(sentences)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if instrs[0].Kind != chef.ServeWith || instrs[0].RecipeName != "Caramel Sauce" {
		t.Fatalf("got %#v", instrs[0])
	}
}

func TestRecognize_Refrigerate(t *testing.T) {
	instrs, err := Recognize([]string{"Refrigerate for 2 hours"})
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if instrs[0].Kind != chef.Refrigerate || !instrs[0].HasHours || instrs[0].Hours != 2 {
		t.Fatalf("got %#v", instrs[0])
	}
}

func TestRecognize_NoOpFallback(t *testing.T) {
	instrs, err := Recognize([]string{"Preheat the oven to 350 degrees"})
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if instrs[0].Kind != chef.NoOp {
		t.Fatalf("got %#v, want NoOp", instrs[0])
	}
}
