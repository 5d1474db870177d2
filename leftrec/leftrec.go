/*
Package leftrec implements Paull's algorithm for eliminating left recursion
from a context-free grammar (component C2): indirect left recursion is
expanded away non-terminal by non-terminal, in declaration order, then each
non-terminal's own direct left recursion is eliminated by forking a tail
non-terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package leftrec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/amberwood/gram/grammar"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Eliminate runs Paull's algorithm over g and returns an equivalent
// non-left-recursive grammar. Non-terminals are processed in g's declared
// order A1..An; forked tail non-terminals are appended to the resulting
// grammar's non-terminal list in the order they are created, after all of
// the original non-terminals, so PREDICT indices remain stable and
// reproducible.
//
// Eliminate always runs, even for a grammar with a single non-terminal or
// with no left recursion at all (spec: "always run elimination for
// uniformity").
func Eliminate(g *grammar.CFG) (grammar.NonLeftRecursiveCFG, error) {
	order := g.NonTerminals()
	indexOf := make(map[string]int, len(order))
	for i, nt := range order {
		indexOf[nt.Name] = i
	}

	processed := make(map[string][]grammar.Production, len(order))
	var forked []grammar.Symbol

	for i, Ai := range order {
		expanded := expandIndirect(g, Ai, indexOf, i, processed)

		nonrec, rec := partitionRecursive(Ai, expanded)
		if len(rec) == 0 {
			tracer().Debugf("leftrec: %s has no direct left recursion, %d production(s) kept", Ai, len(expanded))
			processed[Ai.Name] = expanded
			continue
		}
		if len(nonrec) == 0 {
			return grammar.NonLeftRecursiveCFG{}, &grammar.AllLeftRecursive{NonTerminal: Ai}
		}

		AiPrime := grammar.Fork(Ai)
		tracer().Debugf("leftrec: eliminating direct left recursion on %s, forking %s", Ai, AiPrime)

		newAi := make([]grammar.Production, 0, len(nonrec))
		for _, alpha := range nonrec {
			newAi = append(newAi, grammar.NewProduction(Ai, concatRHS(alpha.RHS, []grammar.Token{AiPrime})))
		}
		newAiPrime := make([]grammar.Production, 0, len(rec)+1)
		for _, betaProd := range rec {
			beta := betaProd.RHS[1:]
			newAiPrime = append(newAiPrime, grammar.NewProduction(AiPrime, concatRHS(beta, []grammar.Token{AiPrime})))
		}
		newAiPrime = append(newAiPrime, grammar.NewProduction(AiPrime, nil)) // AiPrime -> ε

		processed[Ai.Name] = newAi
		processed[AiPrime.Name] = newAiPrime
		forked = append(forked, AiPrime)
	}

	allNT := make([]grammar.Symbol, 0, len(order)+len(forked))
	allNT = append(allNT, order...)
	allNT = append(allNT, forked...)

	prodMap := make(map[grammar.Symbol][]grammar.Production, len(allNT))
	for _, nt := range allNT {
		prodMap[nt] = processed[nt.Name]
	}

	newG, err := grammar.NewCFG(g.Terminals(), allNT, prodMap, g.Start())
	if err != nil {
		return grammar.NonLeftRecursiveCFG{}, err
	}
	return grammar.WrapNonLeftRecursive(newG), nil
}

// expandIndirect replaces every production Ai -> Aj γ (j < i, Aj already
// fully processed) with Ai -> δ1 γ | δ2 γ | …, where Aj -> δ1 | δ2 | … is
// Aj's already-processed production list. Productions whose first token is
// a terminal, EOF, or a later/equal non-terminal pass through unchanged.
func expandIndirect(g *grammar.CFG, Ai grammar.Symbol, indexOf map[string]int, i int, processed map[string][]grammar.Production) []grammar.Production {
	orig := g.Productions(Ai)
	expanded := make([]grammar.Production, 0, len(orig))
	for _, p := range orig {
		if len(p.RHS) > 0 && p.RHS[0].IsNonTerminal() {
			if j, ok := indexOf[p.RHS[0].Name]; ok && j < i {
				Aj := p.RHS[0]
				gamma := p.RHS[1:]
				for _, delta := range processed[Aj.Name] {
					expanded = append(expanded, grammar.NewProduction(Ai, concatRHS(delta.RHS, gamma)))
				}
				continue
			}
		}
		expanded = append(expanded, p)
	}
	return expanded
}

// partitionRecursive splits Ai's productions into non-recursive (first
// token is not Ai) and directly-recursive (first token is Ai). An
// epsilon-production (RHS == [ε]) is always non-recursive.
func partitionRecursive(Ai grammar.Symbol, prods []grammar.Production) (nonrec, rec []grammar.Production) {
	for _, p := range prods {
		if len(p.RHS) > 0 && p.RHS[0] == Ai {
			rec = append(rec, p)
		} else {
			nonrec = append(nonrec, p)
		}
	}
	return nonrec, rec
}

// concatRHS concatenates two right-hand sides, treating a lone [ε] operand
// as the truly-empty sequence and re-introducing [ε] only if the result
// would otherwise be empty.
func concatRHS(a, b []grammar.Token) []grammar.Token {
	a = stripEpsilon(a)
	b = stripEpsilon(b)
	if len(a) == 0 && len(b) == 0 {
		return []grammar.Token{grammar.Epsilon}
	}
	out := make([]grammar.Token, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func stripEpsilon(rhs []grammar.Token) []grammar.Token {
	if len(rhs) == 1 && rhs[0].IsEpsilon() {
		return nil
	}
	return rhs
}
