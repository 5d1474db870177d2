package lr1

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/amberwood/gram/analysis"
	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/internal/iteratable"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// State is a single state of the canonical collection: a (content-unique)
// set of LR(1) items.
type State struct {
	ID    int
	Items *iteratable.Set
}

type transferKey struct {
	from int
	sym  string
}

// Edge is a single CFSM transition, exported for gramio's Graphviz writer.
type Edge struct {
	From int
	Sym  grammar.Symbol
	To   int
}

// CFSM is the characteristic finite-state machine built over a grammar's
// canonical collection of LR(1) item sets (see package doc).
type CFSM struct {
	g        *grammar.CFG
	sets     *analysis.Sets
	start    grammar.Symbol
	states   []*State
	transfer map[transferKey]int
	edges    []Edge
}

// buildCFSM implements §4.5's canonical-collection construction: seed state
// 0 from the augmented start production(s) under lookahead EOF, then drain
// a worklist of pending states, computing goto-sets for every symbol that
// appears immediately after a dot, in first-occurrence order.
func buildCFSM(g *grammar.CFG, sets *analysis.Sets, start grammar.Symbol) *CFSM {
	c := &CFSM{g: g, sets: sets, start: start, transfer: make(map[transferKey]int)}

	seed := newItemSet()
	for _, p := range g.Productions(start) {
		seed.Add(Item{LHS: start, Right: toLRRHS(p.RHS), Lookahead: grammar.EOF})
	}
	c.addState(closure(seed, g, sets))

	pending := treeset.NewWith(utils.IntComparator)
	pending.Add(0)
	for pending.Size() > 0 {
		id := pending.Values()[0].(int)
		pending.Remove(id)
		state := c.states[id]

		for _, X := range nextSymbols(state.Items) {
			J := gotoItems(state.Items, X, g, sets)
			if J.Empty() {
				continue
			}
			k := c.findByItems(J)
			if k < 0 {
				k = c.addState(J)
				pending.Add(k)
			}
			c.transfer[transferKey{id, X.Name}] = k
			c.edges = append(c.edges, Edge{From: id, Sym: X, To: k})
		}
		tracer().Debugf("lr1: processed state %d (%d items)", id, state.Items.Size())
	}
	return c
}

// nextSymbols returns, in first-occurrence order over the stored item
// sequence, the distinct symbols appearing immediately after a dot.
func nextSymbols(items *iteratable.Set) []grammar.Symbol {
	seen := make(map[string]bool)
	var order []grammar.Symbol
	for _, v := range items.Values() {
		item := v.(Item)
		X, ok := item.PeekSymbol()
		if !ok || seen[X.Name] {
			continue
		}
		seen[X.Name] = true
		order = append(order, X)
	}
	return order
}

func (c *CFSM) addState(items *iteratable.Set) int {
	id := len(c.states)
	c.states = append(c.states, &State{ID: id, Items: items})
	return id
}

func (c *CFSM) findByItems(items *iteratable.Set) int {
	for _, s := range c.states {
		if s.Items.Equals(items) {
			return s.ID
		}
	}
	return -1
}

// Transfer returns the state reached from state i on symbol X, for either a
// terminal (shift) or non-terminal (goto) X.
func (c *CFSM) Transfer(i int, X grammar.Symbol) (int, bool) {
	k, ok := c.transfer[transferKey{i, X.Name}]
	return k, ok
}

// States returns the canonical collection in discovery order; State.ID
// equals its index.
func (c *CFSM) States() []*State {
	return append([]*State(nil), c.states...)
}

// Edges returns the CFSM's transitions in discovery order.
func (c *CFSM) Edges() []Edge {
	return append([]Edge(nil), c.edges...)
}
