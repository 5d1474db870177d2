package lr1

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/amberwood/gram/grammar"
)

// buildG0 is the (left-recursive) arithmetic reference grammar, recognized
// directly by LR(1) without left-recursion elimination.
func buildG0(t *testing.T) *grammar.CFG {
	t.Helper()
	expr, _ := grammar.NewNonTerminal("Expr")
	term, _ := grammar.NewNonTerminal("Term")
	factor, _ := grammar.NewNonTerminal("Factor")
	goal := grammar.Goal

	plus, _ := grammar.NewTerminal("+")
	minus, _ := grammar.NewTerminal("-")
	star, _ := grammar.NewTerminal("*")
	slash, _ := grammar.NewTerminal("/")
	lparen, _ := grammar.NewTerminal("(")
	rparen, _ := grammar.NewTerminal(")")
	num, _ := grammar.NewTerminal("num")
	name, _ := grammar.NewTerminal("name")

	prods := map[grammar.Symbol][]grammar.Production{
		goal: {grammar.NewProduction(goal, []grammar.Token{expr})},
		expr: {
			grammar.NewProduction(expr, []grammar.Token{expr, plus, term}),
			grammar.NewProduction(expr, []grammar.Token{expr, minus, term}),
			grammar.NewProduction(expr, []grammar.Token{term}),
		},
		term: {
			grammar.NewProduction(term, []grammar.Token{term, star, factor}),
			grammar.NewProduction(term, []grammar.Token{term, slash, factor}),
			grammar.NewProduction(term, []grammar.Token{factor}),
		},
		factor: {
			grammar.NewProduction(factor, []grammar.Token{lparen, expr, rparen}),
			grammar.NewProduction(factor, []grammar.Token{num}),
			grammar.NewProduction(factor, []grammar.Token{name}),
		},
	}

	g, err := grammar.NewCFG(
		[]grammar.Symbol{plus, minus, star, slash, lparen, rparen, num, name},
		[]grammar.Symbol{goal, expr, term, factor},
		prods,
		goal,
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func tokens(g *grammar.CFG, names ...string) []grammar.Symbol {
	byName := make(map[string]grammar.Symbol)
	for _, term := range g.Terminals() {
		byName[term.Name] = term
	}
	out := make([]grammar.Symbol, len(names))
	for i, n := range names {
		out[i] = byName[n]
	}
	return out
}

func TestRecognizeG0ReferenceInputs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.lr1")
	defer teardown()
	g0 := buildG0(t)
	tables, err := Build(g0)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		input  []string
		accept bool
	}{
		{"name-plus-num", []string{"name", "+", "num"}, true},
		{"paren-name-minus-num-close-star-name", []string{"(", "name", "-", "num", ")", "*", "name"}, true},
		{"name-plus-trailing", []string{"name", "+"}, false},
		{"paren-name-unclosed", []string{"(", "name"}, false},
		{"num-num", []string{"num", "num"}, false},
		{"empty-input", []string{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Recognize(tables, tokens(g0, c.input...))
			if c.accept && err != nil {
				t.Fatalf("expected accept, got reject: %v", err)
			}
			if !c.accept && err == nil {
				t.Fatalf("expected reject, got accept")
			}
			if !c.accept {
				if _, ok := err.(*grammar.ParseReject); !ok {
					t.Fatalf("expected *grammar.ParseReject, got %T", err)
				}
			}
		})
	}
}

func TestBuildDetectsNoSpuriousConflictsOnG0(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.lr1")
	defer teardown()
	g0 := buildG0(t)
	if _, err := Build(g0); err != nil {
		t.Fatalf("G0 is LR(1); unexpected conflict: %v", err)
	}
}

func TestBuildReportsReduceReduceConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.lr1")
	defer teardown()
	// A -> B | C ; B -> a ; C -> a, under lookahead EOF both B and C
	// reduction items collide at ACTION[state, EOF].
	a, _ := grammar.NewTerminal("a")
	B, _ := grammar.NewNonTerminal("B")
	C, _ := grammar.NewNonTerminal("C")
	A := grammar.Goal
	prods := map[grammar.Symbol][]grammar.Production{
		A: {
			grammar.NewProduction(A, []grammar.Token{B}),
			grammar.NewProduction(A, []grammar.Token{C}),
		},
		B: {grammar.NewProduction(B, []grammar.Token{a})},
		C: {grammar.NewProduction(C, []grammar.Token{a})},
	}
	g, err := grammar.NewCFG([]grammar.Symbol{a}, []grammar.Symbol{A, B, C}, prods, A)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Build(g)
	if err == nil {
		t.Fatal("expected a reduce/reduce conflict: B -> a and C -> a are indistinguishable under lookahead EOF")
	}
	if _, ok := err.(*grammar.ReduceReduceConflict); !ok {
		t.Fatalf("expected *grammar.ReduceReduceConflict, got %T: %v", err, err)
	}
}

func TestAugmentSynthesizesGoalPrimeWhenGoalHasMultipleProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.lr1")
	defer teardown()
	a, _ := grammar.NewTerminal("a")
	b, _ := grammar.NewTerminal("b")
	A := grammar.Goal
	prods := map[grammar.Symbol][]grammar.Production{
		A: {
			grammar.NewProduction(A, []grammar.Token{a}),
			grammar.NewProduction(A, []grammar.Token{b}),
		},
	}
	g, err := grammar.NewCFG([]grammar.Symbol{a, b}, []grammar.Symbol{A}, prods, A)
	if err != nil {
		t.Fatal(err)
	}
	augmented, start, err := augment(g)
	if err != nil {
		t.Fatal(err)
	}
	if start == A {
		t.Fatal("expected a synthesized augmented start distinct from Goal")
	}
	if !augmented.HasNonTerminal(start) {
		t.Fatal("augmented start must be declared in the augmented grammar")
	}
}
