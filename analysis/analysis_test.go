package analysis

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/leftrec"
)

// buildG0 mirrors leftrec's reference grammar from spec §8.
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

func names(syms []grammar.Symbol) map[string]bool {
	m := make(map[string]bool, len(syms))
	for _, s := range syms {
		m[s.Name] = true
	}
	return m
}

func TestFirstFollowOnEliminatedG0(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.analysis")
	defer teardown()
	g0 := buildG0(t)
	nlr, err := leftrec.Eliminate(g0)
	if err != nil {
		t.Fatal(err)
	}
	g := nlr.CFG()
	sets := Compute(g)

	find := func(name string) grammar.Symbol {
		for _, nt := range g.NonTerminals() {
			if nt.Name == name {
				return nt
			}
		}
		t.Fatalf("no such non-terminal %q", name)
		return grammar.Symbol{}
	}

	for _, nt := range []string{"Goal", "Expr", "Term", "Factor"} {
		got := names(sets.First(find(nt)))
		for _, want := range []string{"(", "name", "num"} {
			if !got[want] {
				t.Errorf("FIRST(%s) missing %q, got %v", nt, want, got)
			}
		}
	}

	exprPrime := find("Expr@")
	got := names(sets.First(exprPrime))
	for _, want := range []string{"+", "-", grammar.EpsilonName} {
		if !got[want] {
			t.Errorf("FIRST(Expr@) missing %q, got %v", want, got)
		}
	}

	termPrime := find("Term@")
	got = names(sets.First(termPrime))
	for _, want := range []string{"*", "/", grammar.EpsilonName} {
		if !got[want] {
			t.Errorf("FIRST(Term@) missing %q, got %v", want, got)
		}
	}

	followGoal := names(sets.Follow(find("Goal")))
	if !followGoal[grammar.EOFName] || len(followGoal) != 1 {
		t.Errorf("FOLLOW(Goal) = %v, want {EOF}", followGoal)
	}

	followExpr := names(sets.Follow(find("Expr")))
	for _, want := range []string{grammar.EOFName, ")"} {
		if !followExpr[want] {
			t.Errorf("FOLLOW(Expr) missing %q, got %v", want, followExpr)
		}
	}

	followTerm := names(sets.Follow(find("Term")))
	for _, want := range []string{grammar.EOFName, "+", "-", ")"} {
		if !followTerm[want] {
			t.Errorf("FOLLOW(Term) missing %q, got %v", want, followTerm)
		}
	}

	followFactor := names(sets.Follow(find("Factor")))
	for _, want := range []string{grammar.EOFName, "+", "-", "*", "/", ")"} {
		if !followFactor[want] {
			t.Errorf("FOLLOW(Factor) missing %q, got %v", want, followFactor)
		}
	}
}

// TestP2EpsilonInFirstImpliesEpsilonProduction checks invariant P2: for
// every non-terminal A, if ε ∈ FIRST(A) then some production of A derives
// ε directly (in this toolkit's representation, some production's RHS is
// literally [ε]) — true by construction of the fixed point, verified here
// for the G0 case with an eliminated grammar where Expr@/Term@ carry ε.
func TestP2EpsilonInFirstImpliesEpsilonProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.analysis")
	defer teardown()
	g0 := buildG0(t)
	nlr, err := leftrec.Eliminate(g0)
	if err != nil {
		t.Fatal(err)
	}
	g := nlr.CFG()
	sets := Compute(g)
	for _, nt := range g.NonTerminals() {
		first := names(sets.First(nt))
		if !first[grammar.EpsilonName] {
			continue
		}
		sawEpsilonProd := false
		for _, p := range g.Productions(nt) {
			if p.IsEpsilon() {
				sawEpsilonProd = true
			}
		}
		if !sawEpsilonProd {
			t.Errorf("%s has ε in FIRST but no ε-production", nt.Name)
		}
	}
}

// TestP3PredictNeverContainsEpsilon checks invariant P3.
func TestP3PredictNeverContainsEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gram.analysis")
	defer teardown()
	g0 := buildG0(t)
	nlr, err := leftrec.Eliminate(g0)
	if err != nil {
		t.Fatal(err)
	}
	g := nlr.CFG()
	sets := Compute(g)
	for _, nt := range g.NonTerminals() {
		for i := range g.Productions(nt) {
			pi := grammar.ProductionIndex{LHS: nt, Index: i}
			for _, sym := range sets.Predict(pi) {
				if sym.IsEpsilon() {
					t.Errorf("PREDICT(%v) contains ε", pi)
				}
			}
		}
	}
}
