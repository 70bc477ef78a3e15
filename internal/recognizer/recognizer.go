// Package recognizer implements the instruction recogniser (component C):
// it maps one sentence to one Instruction, and stitches matching loop
// opener/closer sentence pairs into a Loop instruction with a nested body.
//
// The pattern set is grounded on the reference parser's regular
// expressions, extended with decrement-ingredient extraction and real
// loop-opener recognition (the reference parser's own is_loop_start was a
// stub that always reported false; here loops are genuinely recognised).
package recognizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/y-a-v-a/cheffers"
)

var (
	loopOpenRE  = regexp.MustCompile(`(?i)^([A-Za-z]+) the (.+)$`)
	untilWordRE = regexp.MustCompile(`(?i)\buntil\b`)
	decrementRE = regexp.MustCompile(`(?i)\buntil\s+\S+\s+(.+)$`)

	takeRE           = regexp.MustCompile(`(?i)^Take (.+) from(?: the)? refrigerator$`)
	putRE            = regexp.MustCompile(`(?i)^Put (.+) into(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	foldRE           = regexp.MustCompile(`(?i)^Fold (.+) into(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	addRE            = regexp.MustCompile(`(?i)^Add (.+) to(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	removeRE         = regexp.MustCompile(`(?i)^Remove (.+) from(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	combineRE        = regexp.MustCompile(`(?i)^Combine (.+) into(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	divideRE         = regexp.MustCompile(`(?i)^Divide (.+) into(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	addDryRE         = regexp.MustCompile(`(?i)^Add dry ingredients to(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	liquefyBowlRE    = regexp.MustCompile(`(?i)^Liquefy(?: the)? contents of(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	liquefyRE        = regexp.MustCompile(`(?i)^Liquefy(?: the)? (.+)$`)
	stirRE           = regexp.MustCompile(`(?i)^Stir(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl for (\d+) minutes$`)
	stirIngredientRE = regexp.MustCompile(`(?i)^Stir (.+) into(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	mixRE            = regexp.MustCompile(`(?i)^Mix(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl well$|^Mix well$`)
	cleanRE          = regexp.MustCompile(`(?i)^Clean(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl$`)
	pourRE           = regexp.MustCompile(`(?i)^Pour contents of(?: the)?(?: (\d+)(?:st|nd|rd|th))? mixing bowl into(?: the)?(?: (\d+)(?:st|nd|rd|th))? baking dish(?:es)?$`)
	setAsideRE       = regexp.MustCompile(`(?i)^Set aside$`)
	serveWithRE      = regexp.MustCompile(`(?i)^Serve with (.+)$`)
	refrigerateRE    = regexp.MustCompile(`(?i)^Refrigerate(?: for (\d+))?(?: hours?)?$`)
	servesRE         = regexp.MustCompile(`(?i)^Serves (\d+)$`)
)

// Recognize turns a Method's sentences into an instruction tree, stitching
// loop openers and closers recursively.
func Recognize(sentences []string) ([]chef.Instruction, error) {
	instructions, consumed, err := recognizeSequence(sentences)
	if err != nil {
		return nil, err
	}
	if consumed != len(sentences) {
		return nil, &chef.ParseError{Kind: chef.UnmatchedLoop, Detail: "trailing sentences after loop body"}
	}
	return instructions, nil
}

// recognizeSequence parses every sentence in sentences, stitching loops
// as it goes, and returns how many sentences it consumed. It is used both
// for a whole Method body and for a loop body. A sentence is treated as a
// loop opener only when no instruction pattern matches it.
func recognizeSequence(sentences []string) ([]chef.Instruction, int, error) {
	var out []chef.Instruction
	idx := 0
	for idx < len(sentences) {
		sentence := sentences[idx]
		inst, err := recognizeInstruction(sentence)
		if err != nil {
			return nil, 0, err
		}
		if inst.Kind == chef.NoOp && isLoopOpen(sentence) {
			loop, consumed, err := parseLoop(sentences[idx:])
			if err != nil {
				return nil, 0, err
			}
			out = append(out, loop)
			idx += consumed
			continue
		}
		out = append(out, inst)
		idx++
	}
	return out, idx, nil
}

func isLoopOpen(sentence string) bool {
	return loopOpenRE.MatchString(sentence)
}

// parseLoop parses a loop opener and recursively parses its body up to
// its matching closer, returning the Loop instruction and the number of
// sentences consumed (body plus opener plus closer).
func parseLoop(sentences []string) (chef.Instruction, int, error) {
	m := loopOpenRE.FindStringSubmatch(sentences[0])
	if m == nil {
		return chef.Instruction{}, 0, &chef.ParseError{Kind: chef.InvalidLoop, Detail: sentences[0]}
	}
	verb := m[1]
	conditionVar := m[2]

	verbWordRE := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(verb) + `\b`)

	endIdx := -1
	for i := 1; i < len(sentences); i++ {
		if verbWordRE.MatchString(sentences[i]) && untilWordRE.MatchString(sentences[i]) {
			endIdx = i
			break
		}
	}
	if endIdx == -1 {
		return chef.Instruction{}, 0, &chef.ParseError{Kind: chef.UnmatchedLoop, Detail: sentences[0]}
	}
	if endIdx == 0 {
		return chef.Instruction{}, 0, &chef.ParseError{Kind: chef.InvalidLoop, Detail: sentences[0]}
	}

	body, consumed, err := recognizeSequence(sentences[1:endIdx])
	if err != nil {
		return chef.Instruction{}, 0, err
	}
	if consumed != endIdx-1 {
		return chef.Instruction{}, 0, &chef.ParseError{Kind: chef.InvalidLoop, Detail: sentences[0]}
	}

	decrementVar, hasDecrement := "", false
	if dm := decrementRE.FindStringSubmatch(sentences[endIdx]); dm != nil {
		decrementVar = strings.TrimSpace(dm[1])
		hasDecrement = decrementVar != ""
	}

	inst := chef.Instruction{
		Kind:            chef.LoopInstr,
		ConditionVar:    conditionVar,
		Verb:            verb,
		Body:            body,
		DecrementVar:    decrementVar,
		HasDecrementVar: hasDecrement,
	}
	return inst, endIdx + 1, nil
}

func ordinalToIndex(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n - 1
}

// recognizeInstruction matches a single sentence against the ordered
// pattern list; the first match wins. A sentence matching none of the
// patterns becomes NoOp(sentence).
func recognizeInstruction(sentence string) (chef.Instruction, error) {
	if m := takeRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Take, Ingredient: m[1]}, nil
	}
	if m := putRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Put, Ingredient: m[1], Bowl: ordinalToIndex(m[2])}, nil
	}
	if m := foldRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Fold, Ingredient: m[1], Bowl: ordinalToIndex(m[2])}, nil
	}
	if m := addRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Add, Ingredient: m[1], Bowl: ordinalToIndex(m[2])}, nil
	}
	if m := removeRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Remove, Ingredient: m[1], Bowl: ordinalToIndex(m[2])}, nil
	}
	if m := combineRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Combine, Ingredient: m[1], Bowl: ordinalToIndex(m[2])}, nil
	}
	if m := divideRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Divide, Ingredient: m[1], Bowl: ordinalToIndex(m[2])}, nil
	}
	if m := addDryRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.AddDry, Bowl: ordinalToIndex(m[1])}, nil
	}
	if m := liquefyBowlRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.LiquefyBowl, Bowl: ordinalToIndex(m[1])}, nil
	}
	if m := liquefyRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Liquefy, Ingredient: m[1]}, nil
	}
	if m := stirRE.FindStringSubmatch(sentence); m != nil {
		minutes, err := strconv.Atoi(m[2])
		if err != nil {
			return chef.Instruction{}, &chef.ParseError{Kind: chef.UnknownInstruction, Detail: sentence, Err: err}
		}
		return chef.Instruction{Kind: chef.Stir, Bowl: ordinalToIndex(m[1]), Minutes: minutes}, nil
	}
	if m := stirIngredientRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.StirIngredient, Ingredient: m[1], Bowl: ordinalToIndex(m[2])}, nil
	}
	if m := mixRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Mix, Bowl: ordinalToIndex(m[1])}, nil
	}
	if m := cleanRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Clean, Bowl: ordinalToIndex(m[1])}, nil
	}
	if m := pourRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.Pour, Bowl: ordinalToIndex(m[1]), Dish: ordinalToIndex(m[2])}, nil
	}
	if setAsideRE.MatchString(sentence) {
		return chef.Instruction{Kind: chef.SetAside}, nil
	}
	if m := serveWithRE.FindStringSubmatch(sentence); m != nil {
		return chef.Instruction{Kind: chef.ServeWith, RecipeName: strings.TrimSpace(m[1])}, nil
	}
	if m := refrigerateRE.FindStringSubmatch(sentence); m != nil {
		if m[1] == "" {
			return chef.Instruction{Kind: chef.Refrigerate}, nil
		}
		hours, err := strconv.Atoi(m[1])
		if err != nil {
			return chef.Instruction{}, &chef.ParseError{Kind: chef.UnknownInstruction, Detail: sentence, Err: err}
		}
		return chef.Instruction{Kind: chef.Refrigerate, Hours: hours, HasHours: true}, nil
	}
	if m := servesRE.FindStringSubmatch(sentence); m != nil {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			return chef.Instruction{}, &chef.ParseError{Kind: chef.UnknownInstruction, Detail: sentence, Err: err}
		}
		return chef.Instruction{Kind: chef.Serves, Count: count}, nil
	}

	return chef.Instruction{Kind: chef.NoOp, Text: sentence}, nil
}
