package gramio

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/lr1"
)

// ActionResolver adapts (*lr1.Tables).Action into the closure shape
// ActionTable/RenderActionGoto expect, rendering each cell as "shift 4",
// "reduce Expr -> Expr + Term", or "accept".
func ActionResolver(t *lr1.Tables) func(state int, term grammar.Symbol) (string, bool) {
	return func(state int, term grammar.Symbol) (string, bool) {
		a, ok := t.Action(state, term)
		if !ok {
			return "", false
		}
		switch a.Kind {
		case lr1.ActionShift:
			return fmt.Sprintf("shift %d", a.Target), true
		case lr1.ActionReduce:
			return "reduce " + a.Production.String(), true
		case lr1.ActionAccept:
			return "accept", true
		default:
			return "", false
		}
	}
}

// RenderTables prints a table's ACTION and GOTO matrices to stdout.
func RenderTables(t *lr1.Tables) error {
	return RenderActionGoto(t.StateCount(), t.Terminals(), t.NonTerminals(), ActionResolver(t), t.Goto)
}

// CFSMTree builds a pterm.LeveledList depicting the CFSM as a tree rooted
// at state 0, each state's children reached via its outgoing edges,
// mirroring the teacher's trepl `tree` command
// (terex/terexlang/trepl/repl.go's leveledElem/NewTreeFromLeveledList).
// A state already visited on the current path is rendered as a leaf
// carrying only its "sN" label instead of being expanded again, since the
// CFSM is a DFA (possibly cyclic), not a tree.
func CFSMTree(c *lr1.CFSM) pterm.LeveledList {
	byFrom := make(map[int][]lr1.Edge)
	for _, e := range c.Edges() {
		byFrom[e.From] = append(byFrom[e.From], e)
	}
	var ll pterm.LeveledList
	visiting := map[int]bool{}
	var walk func(id, level int)
	walk = func(id, level int) {
		state := c.States()[id]
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: stateLabel(state)})
		if visiting[id] {
			return
		}
		visiting[id] = true
		for _, e := range byFrom[id] {
			ll = append(ll, pterm.LeveledListItem{Level: level + 1, Text: "-- " + e.Sym.Name + " -->"})
			walk(e.To, level+2)
		}
		visiting[id] = false
	}
	walk(0, 0)
	return ll
}

func stateLabel(s *lr1.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "s%d", s.ID)
	return b.String()
}

// RenderCFSMTree prints the CFSM as a tree to stdout via pterm.DefaultTree.
func RenderCFSMTree(c *lr1.CFSM) error {
	root := pterm.NewTreeFromLeveledList(CFSMTree(c))
	return pterm.DefaultTree.WithRoot(root).Render()
}

// WriteGraphviz writes c as a Graphviz DOT digraph, grounded on the
// teacher's CFSM2GraphViz (lr/tables.go): one Mrecord node per state
// labeled with its item set, one labeled edge per transition.
func WriteGraphviz(w io.Writer, c *lr1.CFSM) error {
	if _, err := io.WriteString(w, "digraph {\n"+
		"graph [splines=true, fontname=Helvetica, fontsize=10];\n"+
		"node [shape=Mrecord, fontname=Helvetica, fontsize=10];\n"+
		"edge [fontname=Helvetica, fontsize=10];\n\n"); err != nil {
		return err
	}
	for _, s := range c.States() {
		if _, err := fmt.Fprintf(w, "s%03d [label=\"{%03d | %s}\"]\n", s.ID, s.ID, dotEscapeItems(s)); err != nil {
			return err
		}
	}
	for _, e := range c.Edges() {
		if _, err := fmt.Fprintf(w, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, e.Sym.Name); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func dotEscapeItems(s *lr1.State) string {
	var parts []string
	for _, v := range s.Items.Values() {
		item := v.(lr1.Item)
		esc := strings.NewReplacer(`"`, `\"`, "\n", `\n`, "|", `\|`, "{", `\{`, "}", `\}`).Replace(item.String())
		parts = append(parts, esc)
	}
	return strings.Join(parts, `\l`) + `\l`
}
