/*
Package ll1 builds the LL(1) predictive parse table and drives a
stack-based LL(1) recognizer over it (component C4). It consumes the
non-left-recursive grammar produced by package leftrec and the PREDICT sets
produced by package analysis; it does not compute either itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ll1

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/amberwood/gram/analysis"
	"github.com/amberwood/gram/grammar"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// cell is an LL(1) table entry: either empty, or the production to expand
// the non-terminal into when the given lookahead is seen.
type cell struct {
	p       grammar.Production
	present bool
}

// Table is the two-level mapping M[A][t] of §4.4: a production pointer or
// "empty" for every (non-terminal, terminal) pair.
type Table struct {
	g     *grammar.CFG
	rows  map[string]map[string]cell // non-terminal name -> terminal name -> cell
}

// Build constructs the LL(1) table for g, using sets (already computed over
// g, typically via analysis.Compute). Build reports a *grammar.PredictConflict
// on the first cell that would be assigned two different productions,
// scanning non-terminals and their productions in declaration order so the
// reported conflict is reproducible.
func Build(g *grammar.CFG, sets *analysis.Sets) (*Table, error) {
	t := &Table{g: g, rows: make(map[string]map[string]cell, len(g.NonTerminals()))}

	for _, A := range g.NonTerminals() {
		row := make(map[string]cell)
		productions := g.Productions(A)
		for i, p := range productions {
			pi := grammar.ProductionIndex{LHS: A, Index: i}
			for _, term := range sets.Predict(pi) {
				existing, ok := row[term.Name]
				if ok && existing.present && !productionEqual(existing.p, p) {
					return nil, &grammar.PredictConflict{
						NonTerminal: A,
						Lookahead:   term,
						First:       existing.p,
						Second:      p,
					}
				}
				row[term.Name] = cell{p: p, present: true}
			}
		}
		t.rows[A.Name] = row
	}
	tracer().Debugf("ll1: table built over %d non-terminals", len(g.NonTerminals()))
	return t, nil
}

func productionEqual(a, b grammar.Production) bool {
	if a.LHS != b.LHS || len(a.RHS) != len(b.RHS) {
		return false
	}
	for i := range a.RHS {
		if a.RHS[i] != b.RHS[i] {
			return false
		}
	}
	return true
}

// NonTerminals returns g's non-terminals in declaration order, the row
// labels of the table.
func (t *Table) NonTerminals() []grammar.Symbol {
	return t.g.NonTerminals()
}

// Terminals returns g's terminals plus the trailing EOF sentinel, the
// column labels of the table.
func (t *Table) Terminals() []grammar.Symbol {
	return append(t.g.Terminals(), grammar.EOF)
}

// Lookup returns the production M[A][t] and whether the cell is occupied.
func (t *Table) Lookup(A, term grammar.Symbol) (grammar.Production, bool) {
	row, ok := t.rows[A.Name]
	if !ok {
		return grammar.Production{}, false
	}
	c, ok := row[term.Name]
	if !ok || !c.present {
		return grammar.Production{}, false
	}
	return c.p, true
}

// Recognize drives the LL(1) stack machine of §4.4 against input, a
// sequence of terminal tokens not including the trailing EOF sentinel
// (Recognize supplies it). It returns nil on accept, or a
// *grammar.ParseReject naming the position of the first unconsumable
// token (or len(input) if rejection happens at EOF).
func Recognize(t *Table, input []grammar.Symbol) error {
	stack := []grammar.Symbol{grammar.EOF, t.g.Start()}
	pos := 0

	current := func() grammar.Symbol {
		if pos >= len(input) {
			return grammar.EOF
		}
		return input[pos]
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		cur := current()

		if top.IsEOF() && cur.IsEOF() {
			return nil
		}
		// Input at EOF with a non-terminal on top still consults M[A][EOF]
		// below, so trailing ε-productions can be expanded away.
		if top.IsEOF() {
			return &grammar.ParseReject{Position: pos, State: -1}
		}

		if top.IsTerminal() {
			if top == cur {
				stack = stack[:len(stack)-1]
				pos++
				continue
			}
			return &grammar.ParseReject{Position: pos, State: -1}
		}

		p, ok := t.Lookup(top, cur)
		if !ok {
			return &grammar.ParseReject{Position: pos, State: -1}
		}
		stack = stack[:len(stack)-1]
		for i := len(p.RHS) - 1; i >= 0; i-- {
			if p.RHS[i].IsEpsilon() {
				continue
			}
			stack = append(stack, p.RHS[i])
		}
	}
	return &grammar.ParseReject{Position: pos, State: -1}
}
