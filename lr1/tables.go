package lr1

import (
	"github.com/google/uuid"

	"github.com/amberwood/gram/analysis"
	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/internal/sparse"
)

// shiftCode and acceptCode are the two sentinels the ACTION matrix can hold
// besides a reduce ordinal, following the teacher's SLR(1) table generator:
// Shift's actual target state is never stored in the ACTION matrix at all —
// it is resolved on lookup from the CFSM's own transfer map, the same map
// GOTO transitions are resolved from. A non-negative cell value is a reduce,
// indexing ruleTable.
const (
	shiftCode  int32 = -1
	acceptCode int32 = -2
)

// ActionKind distinguishes the three shapes of an ACTION table entry.
type ActionKind int

const (
	// ActionReject marks the absence of an entry.
	ActionReject ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is a single resolved ACTION[state, terminal] cell.
type Action struct {
	Kind       ActionKind
	Target     int                // valid when Kind == ActionShift
	Production grammar.Production // valid when Kind == ActionReduce
}

// Tables bundles the CFSM together with its derived ACTION and GOTO
// matrices (component C6), plus enough bookkeeping to resolve a raw matrix
// cell back into a grammar.Production for reduce actions.
type Tables struct {
	g         *grammar.CFG
	cfsm      *CFSM
	start     grammar.Symbol
	terminals []grammar.Symbol
	termIndex map[string]int
	nonTerms  []grammar.Symbol
	ntIndex   map[string]int
	action    *sparse.IntMatrix
	gotoM     *sparse.IntMatrix
	ruleTable []grammar.ProductionIndex
	runID     string
}

// Build constructs the augmented grammar, the canonical collection of
// LR(1) item sets, and the ACTION/GOTO tables for g (components C5 and C6).
// g need not be left-recursion-free; LR(1) handles left recursion natively.
func Build(g *grammar.CFG) (*Tables, error) {
	runID := uuid.New().String()
	tracer().Infof("lr1[%s]: building tables", runID)

	augmented, start, err := augment(g)
	if err != nil {
		return nil, err
	}
	sets := analysis.Compute(augmented)
	cfsm := buildCFSM(augmented, sets, start)
	tracer().Debugf("lr1[%s]: canonical collection has %d states", runID, len(cfsm.States()))

	t := &Tables{
		g:         augmented,
		cfsm:      cfsm,
		start:     start,
		terminals: append(augmented.Terminals(), grammar.EOF),
		nonTerms:  augmented.NonTerminals(),
		runID:     runID,
	}
	t.termIndex = indexOf(t.terminals)
	t.ntIndex = indexOf(t.nonTerms)
	t.ruleTable = flattenRules(augmented)
	ruleOrdinal := make(map[grammar.ProductionIndex]int32, len(t.ruleTable))
	for i, pi := range t.ruleTable {
		ruleOrdinal[pi] = int32(i)
	}

	nStates := t.StateCount()
	t.action = sparse.NewIntMatrix(nStates, len(t.terminals), sparse.DefaultNull)
	t.gotoM = sparse.NewIntMatrix(nStates, len(t.nonTerms), sparse.DefaultNull)

	for _, state := range cfsm.States() {
		for _, v := range state.Items.Values() {
			item := v.(Item)
			sym, hasNext := item.PeekSymbol()

			if !hasNext {
				if item.LHS == start && item.Lookahead.IsEOF() {
					if err := t.setAction(state.ID, item.Lookahead, acceptCode); err != nil {
						return nil, err
					}
					continue
				}
				pi, found := findProductionIndex(augmented, item.LHS, item.Left)
				if !found {
					continue
				}
				if err := t.setAction(state.ID, item.Lookahead, ruleOrdinal[pi]); err != nil {
					return nil, err
				}
				continue
			}

			target, ok := cfsm.Transfer(state.ID, sym)
			if !ok {
				continue
			}
			if sym.IsTerminal() {
				if err := t.setAction(state.ID, sym, shiftCode); err != nil {
					return nil, err
				}
			} else {
				t.gotoM.Set(state.ID, t.ntIndex[sym.Name], int32(target))
			}
		}
	}
	tracer().Infof("lr1[%s]: built ACTION/GOTO over %d states", runID, nStates)
	return t, nil
}

func (t *Tables) setAction(state int, term grammar.Symbol, code int32) error {
	col, ok := t.termIndex[term.Name]
	if !ok {
		return nil
	}
	existing := t.action.Value(state, col)
	if existing != t.action.NullValue() && existing != code {
		return t.conflictError(state, term, existing, code)
	}
	t.action.Set(state, col, code)
	return nil
}

func (t *Tables) conflictError(state int, term grammar.Symbol, existing, incoming int32) error {
	existingProd, existingIsReduce := t.resolveCode(existing)
	incomingProd, incomingIsReduce := t.resolveCode(incoming)
	shiftTarget, _ := t.cfsm.Transfer(state, term)
	switch {
	case existingIsReduce && incomingIsReduce:
		return &grammar.ReduceReduceConflict{State: state, Lookahead: term, First: existingProd, Second: incomingProd, RunID: t.runID}
	case incomingIsReduce:
		return &grammar.ShiftReduceConflict{State: state, Lookahead: term, Shift: shiftTarget, Reduce: incomingProd, RunID: t.runID}
	default:
		return &grammar.ShiftReduceConflict{State: state, Lookahead: term, Shift: shiftTarget, Reduce: existingProd, RunID: t.runID}
	}
}

func (t *Tables) resolveCode(code int32) (grammar.Production, bool) {
	if code == shiftCode || code == acceptCode {
		return grammar.Production{}, false
	}
	pi := t.ruleTable[code]
	return t.g.Productions(pi.LHS)[pi.Index], true
}

// Action resolves ACTION[state, term].
func (t *Tables) Action(state int, term grammar.Symbol) (Action, bool) {
	col, ok := t.termIndex[term.Name]
	if !ok {
		return Action{}, false
	}
	code := t.action.Value(state, col)
	if code == t.action.NullValue() {
		return Action{}, false
	}
	switch code {
	case acceptCode:
		return Action{Kind: ActionAccept}, true
	case shiftCode:
		target, ok := t.cfsm.Transfer(state, term)
		if !ok {
			return Action{}, false
		}
		return Action{Kind: ActionShift, Target: target}, true
	default:
		pi := t.ruleTable[code]
		p := t.g.Productions(pi.LHS)[pi.Index]
		return Action{Kind: ActionReduce, Production: p}, true
	}
}

// Goto resolves GOTO[state, nonTerminal].
func (t *Tables) Goto(state int, nonTerminal grammar.Symbol) (int, bool) {
	col, ok := t.ntIndex[nonTerminal.Name]
	if !ok {
		return 0, false
	}
	v := t.gotoM.Value(state, col)
	if v == t.gotoM.NullValue() {
		return 0, false
	}
	return int(v), true
}

// StateCount returns the number of states in the canonical collection.
func (t *Tables) StateCount() int {
	return len(t.cfsm.States())
}

// CFSM exposes the underlying characteristic finite-state machine, for
// callers (gramio) that render the canonical collection directly.
func (t *Tables) CFSM() *CFSM {
	return t.cfsm
}

// Terminals returns the augmented grammar's terminal alphabet, including
// the trailing EOF column used by the ACTION matrix.
func (t *Tables) Terminals() []grammar.Symbol {
	return append([]grammar.Symbol(nil), t.terminals...)
}

// NonTerminals returns the augmented grammar's non-terminal alphabet, in
// the order used by the GOTO matrix's columns.
func (t *Tables) NonTerminals() []grammar.Symbol {
	return append([]grammar.Symbol(nil), t.nonTerms...)
}

// RunID returns the UUID tagging this table-construction run.
func (t *Tables) RunID() string {
	return t.runID
}

func indexOf(syms []grammar.Symbol) map[string]int {
	m := make(map[string]int, len(syms))
	for i, s := range syms {
		m[s.Name] = i
	}
	return m
}

// flattenRules enumerates every production of g in declaration order,
// giving each a stable ordinal used to encode reduce actions compactly in
// the ACTION matrix.
func flattenRules(g *grammar.CFG) []grammar.ProductionIndex {
	var out []grammar.ProductionIndex
	for _, nt := range g.NonTerminals() {
		for i := range g.Productions(nt) {
			out = append(out, grammar.ProductionIndex{LHS: nt, Index: i})
		}
	}
	return out
}

// findProductionIndex locates the (LHS, index) of the production whose
// zero-length-normalized RHS equals left, among g.Productions(lhs).
func findProductionIndex(g *grammar.CFG, lhs grammar.Symbol, left []grammar.Token) (grammar.ProductionIndex, bool) {
	for i, p := range g.Productions(lhs) {
		if rhsEqual(toLRRHS(p.RHS), left) {
			return grammar.ProductionIndex{LHS: lhs, Index: i}, true
		}
	}
	return grammar.ProductionIndex{}, false
}

func rhsEqual(a, b []grammar.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
