package ll1

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/amberwood/gram/analysis"
	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/leftrec"
)

// buildG0 is the arithmetic reference grammar: Goal -> Expr; Expr -> Expr +
// Term | Expr - Term | Term; Term -> Term * Factor | Term / Factor | Factor;
// Factor -> ( Expr ) | num | name.
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

func buildTable(t *testing.T) (*Table, map[string]grammar.Symbol) {
	t.Helper()
	g0 := buildG0(t)
	nlr, err := leftrec.Eliminate(g0)
	if err != nil {
		t.Fatal(err)
	}
	g := nlr.CFG()
	sets := analysis.Compute(g)
	table, err := Build(g, sets)
	if err != nil {
		t.Fatal(err)
	}
	terms := make(map[string]grammar.Symbol)
	for _, term := range g.Terminals() {
		terms[term.Name] = term
	}
	return table, terms
}

func tokens(terms map[string]grammar.Symbol, names ...string) []grammar.Symbol {
	out := make([]grammar.Symbol, len(names))
	for i, n := range names {
		out[i] = terms[n]
	}
	return out
}

func TestRecognizeG0ReferenceInputs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.ll1")
	defer teardown()
	table, terms := buildTable(t)

	cases := []struct {
		name    string
		input   []string
		accept  bool
		wantPos int
	}{
		{"name-plus-num", []string{"name", "+", "num"}, true, 0},
		{"paren-name-minus-num-close-star-name", []string{"(", "name", "-", "num", ")", "*", "name"}, true, 0},
		{"name-plus-trailing", []string{"name", "+"}, false, 2},
		{"paren-name-unclosed", []string{"(", "name"}, false, 2},
		{"num-num", []string{"num", "num"}, false, 1},
		{"empty-input", []string{}, false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Recognize(table, tokens(terms, c.input...))
			if c.accept {
				if err != nil {
					t.Fatalf("expected accept, got reject: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected reject, got accept")
			}
			reject, ok := err.(*grammar.ParseReject)
			if !ok {
				t.Fatalf("expected *grammar.ParseReject, got %T", err)
			}
			if reject.Position != c.wantPos {
				t.Fatalf("reject position = %d, want %d", reject.Position, c.wantPos)
			}
		})
	}
}

func TestBuildRejectsAmbiguousGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.ll1")
	defer teardown()
	// A -> a | a a: both productions of A share FIRST = {a}, so the LL(1)
	// table cell M[A][a] would be assigned two distinct productions.
	a, _ := grammar.NewTerminal("a")
	A := grammar.Goal
	prods := map[grammar.Symbol][]grammar.Production{
		A: {
			grammar.NewProduction(A, []grammar.Token{a}),
			grammar.NewProduction(A, []grammar.Token{a, a}),
		},
	}
	g, err := grammar.NewCFG([]grammar.Symbol{a}, []grammar.Symbol{A}, prods, A)
	if err != nil {
		t.Fatal(err)
	}
	sets := analysis.Compute(g)
	_, err = Build(g, sets)
	if err == nil {
		t.Fatal("expected a PredictConflict error")
	}
	if _, ok := err.(*grammar.PredictConflict); !ok {
		t.Fatalf("expected *grammar.PredictConflict, got %T: %v", err, err)
	}
}
