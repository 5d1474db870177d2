package lr1

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amberwood/gram/analysis"
	"github.com/amberwood/gram/grammar"
	"github.com/amberwood/gram/internal/iteratable"
)

// Item is an LR(1) item (A → α · β, a): LHS, the tokens already matched
// (Left = α), the tokens still to match (Right = β), and a single-terminal
// lookahead a. Dot position is implicit: it sits between Left and Right.
type Item struct {
	LHS       grammar.Symbol
	Left      []grammar.Token
	Right     []grammar.Token
	Lookahead grammar.Symbol
}

// PeekSymbol returns the symbol immediately after the dot, i.e. the first
// token of Right, and whether one exists (false at a completed item).
func (i Item) PeekSymbol() (grammar.Symbol, bool) {
	if len(i.Right) == 0 {
		return grammar.Symbol{}, false
	}
	return i.Right[0], true
}

// Advance moves the dot one position to the right, consuming the symbol
// immediately after it.
func (i Item) Advance() Item {
	next := Item{
		LHS:       i.LHS,
		Left:      append(append([]grammar.Token(nil), i.Left...), i.Right[0]),
		Right:     append([]grammar.Token(nil), i.Right[1:]...),
		Lookahead: i.Lookahead,
	}
	return next
}

func (i Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s -> ", i.LHS)
	for _, t := range i.Left {
		fmt.Fprintf(&b, "%s ", t)
	}
	b.WriteString(". ")
	for _, t := range i.Right {
		fmt.Fprintf(&b, "%s ", t)
	}
	fmt.Fprintf(&b, ", %s]", i.Lookahead)
	return b.String()
}

// toLRRHS translates a production's right-hand side from grammar's [ε]
// convention to the true zero-length sequence LR(1) item construction
// expects (see the Design Notes bridging the two conventions): an
// ε-production's RHS becomes nil.
func toLRRHS(rhs []grammar.Token) []grammar.Token {
	if len(rhs) == 1 && rhs[0].IsEpsilon() {
		return nil
	}
	return rhs
}

// newItemSet creates an empty iteratable.Set of Items.
func newItemSet() *iteratable.Set {
	return iteratable.New()
}

// firstOfSeq computes FIRST(X1 … Xn) from already-computed FIRST sets,
// reusing the same sequence rule as package analysis (duplicated here
// rather than exported from analysis, since lr1's callers only ever need it
// applied to a β·a suffix, never the raw per-symbol sets).
func firstOfSeq(sets *analysis.Sets, seq []grammar.Symbol) []grammar.Symbol {
	result := make(map[string]grammar.Symbol)
	for _, x := range seq {
		sawEpsilon := false
		for _, f := range sets.First(x) {
			if f.IsEpsilon() {
				sawEpsilon = true
				continue
			}
			result[f.Name] = f
		}
		if !sawEpsilon {
			break
		}
	}
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]grammar.Symbol, len(names))
	for i, name := range names {
		out[i] = result[name]
	}
	return out
}

// closure implements §4.5 closure(I): until no new item is added, for every
// item [A -> α · B β, a] with B a non-terminal, and every production
// B -> γ, add [B -> · γ, b] for every b in FIRST(β a).
func closure(I *iteratable.Set, g *grammar.CFG, sets *analysis.Sets) *iteratable.Set {
	C := I.Copy()
	C.IterateOnce()
	for C.Next() {
		item := C.Item().(Item)
		B, ok := item.PeekSymbol()
		if !ok || !B.IsNonTerminal() {
			continue
		}
		lookaheadSeq := append(append([]grammar.Symbol(nil), item.Right[1:]...), item.Lookahead)
		lookaheads := firstOfSeq(sets, lookaheadSeq)
		for _, p := range g.Productions(B) {
			for _, b := range lookaheads {
				C.Add(Item{LHS: B, Right: toLRRHS(p.RHS), Lookahead: b})
			}
		}
	}
	return C
}

// gotoItems implements §4.5 goto(I, X): advance every item of I whose next
// symbol is X, then close the result.
func gotoItems(I *iteratable.Set, X grammar.Symbol, g *grammar.CFG, sets *analysis.Sets) *iteratable.Set {
	J := newItemSet()
	for _, v := range I.Values() {
		item := v.(Item)
		if sym, ok := item.PeekSymbol(); ok && sym == X {
			J.Add(item.Advance())
		}
	}
	return closure(J, g, sets)
}
