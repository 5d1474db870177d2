/*
Package analysis computes the FIRST, FOLLOW and PREDICT sets of a grammar
(component C3), each by worklist-style fixed-point iteration, following the
Dragon-book formulation referenced by the spec (in particular: FOLLOW's
right-to-left trailer is seeded from FOLLOW(A), not FIRST(A) — the original
source this toolkit was distilled from has exactly that bug, and this
package deliberately does not reproduce it).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package analysis

import (
	"sort"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/amberwood/gram/grammar"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// symbolSet is a set of terminal (or ε) names, the working representation
// used throughout the fixed-point passes below.
type symbolSet map[string]struct{}

func (s symbolSet) add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

func (s symbolSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s symbolSet) union(other symbolSet) bool {
	changed := false
	for name := range other {
		if s.add(name) {
			changed = true
		}
	}
	return changed
}

// Sets holds the computed FIRST, FOLLOW and PREDICT tables for a grammar,
// plus the symbol registry needed to render set contents back as
// grammar.Symbol values.
type Sets struct {
	g       *grammar.CFG
	symbols map[string]grammar.Symbol
	first   map[string]symbolSet            // keyed by symbol name
	follow  map[string]symbolSet            // keyed by non-terminal name
	predict map[grammar.ProductionIndex]symbolSet
}

// Compute runs the FIRST/FOLLOW/PREDICT fixed-point passes over g. g is
// usually the non-left-recursive grammar produced by package leftrec (feeds
// package ll1), but package lr1 also calls Compute directly on the original
// augmented grammar to reuse FIRST for item-set closure.
func Compute(g *grammar.CFG) *Sets {
	s := &Sets{
		g:       g,
		symbols: registry(g),
		predict: make(map[grammar.ProductionIndex]symbolSet),
	}
	s.first = computeFirst(g, s.symbols)
	s.follow = computeFollow(g, s.first)
	s.computePredict()
	return s
}

func registry(g *grammar.CFG) map[string]grammar.Symbol {
	reg := make(map[string]grammar.Symbol)
	reg[grammar.Epsilon.Name] = grammar.Epsilon
	reg[grammar.EOF.Name] = grammar.EOF
	g.EachSymbol(func(sym grammar.Symbol) {
		reg[sym.Name] = sym
	})
	return reg
}

// computeFirst implements §4.3 FIRST: initialize FIRST(t)={t} for every
// terminal (incl. ε, EOF), FIRST(A)=∅ for every non-terminal, then iterate
// productions to a fixed point.
func computeFirst(g *grammar.CFG, reg map[string]grammar.Symbol) map[string]symbolSet {
	first := make(map[string]symbolSet, len(reg))
	for name, sym := range reg {
		if sym.IsTerminal() {
			first[name] = symbolSet{name: {}}
		}
	}
	for _, nt := range g.NonTerminals() {
		first[nt.Name] = symbolSet{}
	}

	prods := g.AllProductions()
	changed := true
	for changed {
		changed = false
		for _, p := range prods {
			r := firstOfSequence(first, p.RHS)
			if first[p.LHS.Name].union(r) {
				changed = true
			}
		}
	}
	tracer().Debugf("analysis: FIRST fixed point reached over %d productions", len(prods))
	return first
}

// firstOfSequence computes FIRST(X1 X2 … Xm) from already-known FIRST sets
// of the individual symbols, per the sequence rule shared by §4.3's FIRST
// production rule, §4.3's PREDICT rule, and §4.5's closure lookahead rule
// (FIRST(βa)).
func firstOfSequence(first map[string]symbolSet, seq []grammar.Symbol) symbolSet {
	r := symbolSet{}
	sawEpsilonThroughout := true
	for _, x := range seq {
		fx := first[x.Name]
		for name := range fx {
			if name != grammar.EpsilonName {
				r.add(name)
			}
		}
		if !fx.has(grammar.EpsilonName) {
			sawEpsilonThroughout = false
			break
		}
	}
	if sawEpsilonThroughout {
		r.add(grammar.EpsilonName)
	}
	return r
}

// computeFollow implements §4.3 FOLLOW: FOLLOW(Goal)={EOF}, all other
// non-terminals start at ∅, then for every production, scan the RHS
// right-to-left maintaining a trailer that starts at FOLLOW(LHS).
func computeFollow(g *grammar.CFG, first map[string]symbolSet) map[string]symbolSet {
	follow := make(map[string]symbolSet, len(g.NonTerminals()))
	for _, nt := range g.NonTerminals() {
		follow[nt.Name] = symbolSet{}
	}
	follow[g.Start().Name] = symbolSet{grammar.EOF.Name: {}}

	prods := g.AllProductions()
	changed := true
	for changed {
		changed = false
		for _, p := range prods {
			trailer := cloneSet(follow[p.LHS.Name])
			for i := len(p.RHS) - 1; i >= 0; i-- {
				x := p.RHS[i]
				if x.IsEpsilon() {
					continue
				}
				if x.IsNonTerminal() {
					if follow[x.Name].union(trailer) {
						changed = true
					}
					fx := first[x.Name]
					if fx.has(grammar.EpsilonName) {
						next := cloneSet(trailer)
						for name := range fx {
							if name != grammar.EpsilonName {
								next.add(name)
							}
						}
						trailer = next
					} else {
						trailer = cloneSet(fx)
					}
				} else {
					trailer = symbolSet{x.Name: {}}
				}
			}
		}
	}
	tracer().Debugf("analysis: FOLLOW fixed point reached over %d productions", len(prods))
	return follow
}

func cloneSet(s symbolSet) symbolSet {
	c := make(symbolSet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// computePredict implements §4.3 PREDICT: for production A -> γ at index i,
// PREDICT(A,i) = FIRST(γ) if ε ∉ FIRST(γ), else (FIRST(γ) \ {ε}) ∪ FOLLOW(A).
func (s *Sets) computePredict() {
	for _, nt := range s.g.NonTerminals() {
		for i, p := range s.g.Productions(nt) {
			f := firstOfSequence(s.first, p.RHS)
			pi := grammar.ProductionIndex{LHS: nt, Index: i}
			if f.has(grammar.EpsilonName) {
				result := symbolSet{}
				for name := range f {
					if name != grammar.EpsilonName {
						result.add(name)
					}
				}
				result.union(s.follow[nt.Name])
				s.predict[pi] = result
			} else {
				s.predict[pi] = f
			}
		}
	}
}

// First returns FIRST(sym) — for a terminal, {sym}; for a non-terminal, the
// fixed-point result, possibly including ε. Symbols are returned
// deterministically sorted by name.
func (s *Sets) First(sym grammar.Symbol) []grammar.Symbol {
	return s.resolve(s.first[sym.Name])
}

// Follow returns FOLLOW(A): terminals (possibly EOF, never ε) that may
// immediately follow A.
func (s *Sets) Follow(A grammar.Symbol) []grammar.Symbol {
	return s.resolve(s.follow[A.Name])
}

// Predict returns PREDICT(A, i): the terminals that select A's i-th
// production.
func (s *Sets) Predict(pi grammar.ProductionIndex) []grammar.Symbol {
	return s.resolve(s.predict[pi])
}

func (s *Sets) resolve(set symbolSet) []grammar.Symbol {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]grammar.Symbol, 0, len(names))
	for _, name := range names {
		out = append(out, s.symbols[name])
	}
	return out
}
