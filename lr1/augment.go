package lr1

import (
	"github.com/amberwood/gram/grammar"
)

// augment implements the augmented-grammar construction of §4.5: if Goal
// already has exactly one production and Goal appears on no production's
// right-hand side, Goal plays the augmented role itself. Otherwise a fresh
// Goal' (rendered Goal@, via grammar.Fork) is synthesized with the single
// production Goal' -> Goal.
//
// augment returns the (possibly unchanged) grammar to build item sets over
// and the symbol that plays the augmented-start role.
func augment(g *grammar.CFG) (*grammar.CFG, grammar.Symbol, error) {
	start := g.Start()
	prods := g.Productions(start)
	if len(prods) == 1 && !appearsOnAnyRHS(g, start) {
		return g, start, nil
	}

	augStart := grammar.Fork(start)
	newProd := grammar.NewProduction(augStart, []grammar.Token{start})

	nonTerminals := append(g.NonTerminals(), augStart)
	productions := make(map[grammar.Symbol][]grammar.Production, len(nonTerminals))
	for _, nt := range g.NonTerminals() {
		productions[nt] = g.Productions(nt)
	}
	productions[augStart] = []grammar.Production{newProd}

	augmented, err := grammar.NewCFG(g.Terminals(), nonTerminals, productions, augStart)
	if err != nil {
		return nil, grammar.Symbol{}, err
	}
	return augmented, augStart, nil
}

// appearsOnAnyRHS reports whether sym occurs on the right-hand side of any
// production in g, i.e. whether sym is reachable from somewhere other than
// being the designated start symbol.
func appearsOnAnyRHS(g *grammar.CFG, sym grammar.Symbol) bool {
	for _, p := range g.AllProductions() {
		for _, t := range p.RHS {
			if t == sym {
				return true
			}
		}
	}
	return false
}
