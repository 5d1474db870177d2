package gramio

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/amberwood/gram/analysis"
	"github.com/amberwood/gram/grammar"
)

// symbolsToString renders a sorted slice of symbols as a comma-separated
// list, "ε" standing in for grammar.Epsilon the way the teacher's own
// pterm-based REPL output favors compact, glyph-bearing labels over raw
// identifiers.
func symbolsToString(syms []grammar.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		if s.IsEpsilon() {
			parts[i] = "ε"
		} else {
			parts[i] = s.Name
		}
	}
	return strings.Join(parts, ", ")
}

// FirstFollowTable renders FIRST(A) and FOLLOW(A) for every non-terminal of
// g as a pterm table, e.g. for the `--dump sets` mode of cmd/gramcheck.
func FirstFollowTable(g *grammar.CFG, sets *analysis.Sets) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	for _, nt := range g.NonTerminals() {
		data = append(data, []string{
			nt.Name,
			symbolsToString(sets.First(nt)),
			symbolsToString(sets.Follow(nt)),
		})
	}
	return data
}

// PredictTable renders PREDICT(A, i) for every production of g as a pterm
// table, one row per production.
func PredictTable(g *grammar.CFG, sets *analysis.Sets) pterm.TableData {
	data := pterm.TableData{{"Production", "PREDICT"}}
	for _, nt := range g.NonTerminals() {
		for i, p := range g.Productions(nt) {
			pi := grammar.ProductionIndex{LHS: nt, Index: i}
			data = append(data, []string{p.String(), symbolsToString(sets.Predict(pi))})
		}
	}
	return data
}

// RenderFirstFollow prints FirstFollowTable to stdout with the teacher's
// pterm.DefaultTable styling (header row, bordered).
func RenderFirstFollow(g *grammar.CFG, sets *analysis.Sets) error {
	return pterm.DefaultTable.WithHasHeader().WithData(FirstFollowTable(g, sets)).Render()
}

// RenderPredict prints PredictTable to stdout.
func RenderPredict(g *grammar.CFG, sets *analysis.Sets) error {
	return pterm.DefaultTable.WithHasHeader().WithData(PredictTable(g, sets)).Render()
}

// tableLike is satisfied by *ll1.Table and lets LL1Table and RenderLL1Table
// stay in gramio without importing package ll1: cells are read through
// Lookup rather than through ll1's unexported cell type.
type tableLike interface {
	NonTerminals() []grammar.Symbol
	Terminals() []grammar.Symbol
	Lookup(A, term grammar.Symbol) (grammar.Production, bool)
}

// LL1Table renders an LL(1) parse table (non-terminal rows, terminal
// columns, production cells) as a pterm table.
func LL1Table(t tableLike) pterm.TableData {
	terms := t.Terminals()
	header := []string{"M"}
	for _, term := range terms {
		header = append(header, term.Name)
	}
	data := pterm.TableData{header}
	for _, nt := range t.NonTerminals() {
		row := []string{nt.Name}
		for _, term := range terms {
			if p, ok := t.Lookup(nt, term); ok {
				row = append(row, p.String())
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	return data
}

// RenderLL1Table prints LL1Table to stdout.
func RenderLL1Table(t tableLike) error {
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(LL1Table(t)).Render()
}

// ActionTable renders ACTION[state, terminal] as a pterm table. Callers
// pass a resolver closure (see ActionResolver in lr1.go, which adapts
// *lr1.Tables.Action) so this function stays agnostic of lr1's concrete
// Action type.
func ActionTable(states int, terminals []grammar.Symbol, resolve func(state int, term grammar.Symbol) (string, bool)) pterm.TableData {
	header := []string{"state"}
	for _, term := range terminals {
		header = append(header, term.Name)
	}
	data := pterm.TableData{header}
	for s := 0; s < states; s++ {
		row := []string{fmt.Sprintf("%d", s)}
		for _, term := range terminals {
			if desc, ok := resolve(s, term); ok {
				row = append(row, desc)
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	return data
}

// GotoTable renders GOTO[state, non-terminal] as a pterm table.
func GotoTable(states int, nonTerminals []grammar.Symbol, resolve func(state int, nt grammar.Symbol) (int, bool)) pterm.TableData {
	header := []string{"state"}
	for _, nt := range nonTerminals {
		header = append(header, nt.Name)
	}
	data := pterm.TableData{header}
	for s := 0; s < states; s++ {
		row := []string{fmt.Sprintf("%d", s)}
		for _, nt := range nonTerminals {
			if target, ok := resolve(s, nt); ok {
				row = append(row, fmt.Sprintf("%d", target))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	return data
}

// RenderActionGoto prints both the ACTION and GOTO tables to stdout.
func RenderActionGoto(states int, terminals, nonTerminals []grammar.Symbol,
	action func(state int, term grammar.Symbol) (string, bool),
	goTo func(state int, nt grammar.Symbol) (int, bool)) error {
	pterm.DefaultSection.Println("ACTION")
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(ActionTable(states, terminals, action)).Render(); err != nil {
		return err
	}
	pterm.DefaultSection.Println("GOTO")
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(GotoTable(states, nonTerminals, goTo)).Render()
}
