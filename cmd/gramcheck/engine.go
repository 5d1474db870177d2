package main

import (
	"fmt"
	"os"

	"github.com/amberwood/gram/analysis"
	"github.com/amberwood/gram/gramio"
	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/leftrec"
	"github.com/amberwood/gram/ll1"
	"github.com/amberwood/gram/lr1"
)

// engine bundles a parsed grammar with whichever table(s) --mode asked for,
// so the REPL and the one-shot CLI path share the same recognize/dump
// logic.
type engine struct {
	g        *grammar.CFG
	mode     string
	sets     *analysis.Sets
	ll1Table *ll1.Table
	lrTables *lr1.Tables
}

func buildEngine(g *grammar.CFG, mode string) (*engine, error) {
	switch mode {
	case "ll1":
		nlr, err := leftrec.Eliminate(g)
		if err != nil {
			return nil, fmt.Errorf("eliminating left recursion: %w", err)
		}
		cfg := nlr.CFG()
		sets := analysis.Compute(cfg)
		table, err := ll1.Build(cfg, sets)
		if err != nil {
			return nil, fmt.Errorf("building LL(1) table: %w", err)
		}
		return &engine{g: cfg, mode: mode, sets: sets, ll1Table: table}, nil
	case "lr1":
		tables, err := lr1.Build(g)
		if err != nil {
			return nil, fmt.Errorf("building LR(1) tables: %w", err)
		}
		return &engine{g: g, mode: mode, lrTables: tables}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want ll1 or lr1)", mode)
	}
}

// recognize runs input through whichever driver the engine was built for.
func (e *engine) recognize(input []grammar.Symbol) error {
	if e.mode == "ll1" {
		return ll1.Recognize(e.ll1Table, input)
	}
	return lr1.Recognize(e.lrTables, input)
}

// tokenize resolves a list of terminal names (as typed on the command line
// or in the REPL) against the engine's grammar.
func (e *engine) tokenize(names []string) ([]grammar.Symbol, error) {
	byName := make(map[string]grammar.Symbol)
	for _, term := range e.g.Terminals() {
		byName[term.Name] = term
	}
	out := make([]grammar.Symbol, 0, len(names))
	for _, n := range names {
		sym, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%q is not a terminal of this grammar", n)
		}
		out = append(out, sym)
	}
	return out, nil
}

// dump renders one of the artifacts gramio knows how to render: "sets"
// (FIRST/FOLLOW), "table" (the parse table itself), "dot" (lr1's CFSM as
// Graphviz), or "json" (a machine-readable dump).
func (e *engine) dump(kind string) error {
	switch kind {
	case "sets":
		sets := e.sets
		if sets == nil {
			sets = analysis.Compute(e.g)
		}
		return gramio.RenderFirstFollow(e.g, sets)
	case "table":
		if e.mode == "ll1" {
			return gramio.RenderLL1Table(e.ll1Table)
		}
		return gramio.RenderTables(e.lrTables)
	case "dot":
		if e.mode != "lr1" {
			return fmt.Errorf("--dump dot requires --mode lr1")
		}
		return gramio.WriteGraphviz(os.Stdout, e.lrTables.CFSM())
	case "json":
		var raw []byte
		var err error
		if e.mode == "lr1" {
			raw, err = gramio.MarshalTables(e.lrTables)
		} else {
			raw, err = gramio.MarshalGrammar(e.g)
		}
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(raw, '\n'))
		return err
	default:
		return fmt.Errorf("unknown --dump kind %q (want sets, table, dot, or json)", kind)
	}
}
