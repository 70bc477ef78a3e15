package segmenter

import (
	"reflect"
	"testing"
)

func TestSplitRecipes_Single(t *testing.T) {
	source := "Hello World.\n\nIngredients.\n2 g one\n\nMethod.\nPut one into mixing bowl.\nServes 1.\n"
	blocks := SplitRecipes(source)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
}

func TestSplitRecipes_MainAndAuxiliary(t *testing.T) {
	source := "Main Dish.\n\nIngredients.\n10 g ten\n\nMethod.\nServe with Aux Dish.\nServes 1.\n\nAux Dish.\n\nIngredients.\n20 g twenty\n\nMethod.\nPut twenty into mixing bowl.\n"
	blocks := SplitRecipes(source)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0][:9] != "Main Dish" {
		t.Errorf("first block = %q, want to start with Main Dish", blocks[0])
	}
	if blocks[1][:8] != "Aux Dish" {
		t.Errorf("second block = %q, want to start with Aux Dish", blocks[1])
	}
}

func TestSplitRecipes_Empty(t *testing.T) {
	if blocks := SplitRecipes("   \n  \n"); blocks != nil {
		t.Errorf("got %v, want nil", blocks)
	}
}

func TestSplitRecipes_CRLF(t *testing.T) {
	source := "Hello World.\r\n\r\nIngredients.\r\n2 g one\r\n\r\nMethod.\r\nPut one into mixing bowl.\r\nServes 1.\r\n"
	blocks := SplitRecipes(source)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
}

func TestSplitSentences(t *testing.T) {
	text := "Put one into mixing bowl. Pour contents of the mixing bowl\ninto the baking dish. Serves 1."
	got := SplitSentences(text)
	want := []string{
		"Put one into mixing bowl",
		"Pour contents of the mixing bowl into the baking dish",
		"Serves 1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %#v, want %#v", got, want)
	}
}

func TestSplitSentences_ConsecutiveTerminators(t *testing.T) {
	got := SplitSentences("Wait!! Really?")
	want := []string{"Wait", "Really"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %#v, want %#v", got, want)
	}
}

func TestSplitSentences_TrailingNoTerminator(t *testing.T) {
	got := SplitSentences("Put one into mixing bowl")
	want := []string{"Put one into mixing bowl"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %#v, want %#v", got, want)
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	if got := SplitSentences("   "); got != nil {
		t.Errorf("got %#v, want nil", got)
	}
}
