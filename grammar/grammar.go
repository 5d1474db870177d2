/*
Package grammar implements the in-memory data model for context-free
grammars: symbols, tokens, productions and the CFG container itself (see
component C1). Equality throughout is by symbol name; two symbols with equal
name and equal kind are the same symbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global syntax tracer.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// SymbolKind distinguishes terminals from non-terminals.
type SymbolKind int

const (
	// TerminalKind marks a Symbol as a terminal (leaf of any parse tree).
	TerminalKind SymbolKind = iota
	// NonTerminalKind marks a Symbol as expandable by productions.
	NonTerminalKind
)

func (k SymbolKind) String() string {
	if k == TerminalKind {
		return "terminal"
	}
	return "non-terminal"
}

// forkSentinel is the character appended by Fork to manufacture a fresh
// non-terminal name. It is excluded from the user name alphabet so that
// repeated forking (A, A@, A@@, …) can never collide with a user-supplied
// name.
const forkSentinel = "@"

// EpsilonName and EOFName are the reserved terminal names for the empty
// string and end-of-input. Their diagnostic rendering uses the "@@"
// convention so they cannot collide with a forked non-terminal (which uses
// a bare "@").
const (
	EpsilonName = "empty@@"
	EOFName     = "eof@@"
	// GoalName is the reserved start non-terminal every CFG is rooted at.
	GoalName = "Goal"
)

// Symbol is either a Terminal or a Non-terminal, identified by a unique
// name. Symbol is a plain comparable value: two symbols are equal iff their
// Name and Kind are equal, which lets Symbol be used directly as a map key
// or inside the gods-based sets used by package lr1.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Token is an occurrence of a Symbol on a production's right-hand side or on
// a parser stack. The spec models Token as a tagged union over
// {Terminal, Non-terminal}; since Symbol already carries its Kind, Token is
// simply Symbol under another name, kept distinct for readability at call
// sites that talk about "the tokens of a production" rather than "symbols of
// the alphabet".
type Token = Symbol

// Epsilon is the reserved terminal denoting the empty string.
var Epsilon = Symbol{Name: EpsilonName, Kind: TerminalKind}

// EOF is the reserved terminal denoting end-of-input.
var EOF = Symbol{Name: EOFName, Kind: TerminalKind}

// Goal is the reserved start non-terminal every CFG is rooted at.
var Goal = Symbol{Name: GoalName, Kind: NonTerminalKind}

// NewTerminal constructs a Terminal symbol with the given name. The name
// must not be a reserved name and must not contain the fork sentinel "@".
func NewTerminal(name string) (Symbol, error) {
	return newSymbol(name, TerminalKind)
}

// NewNonTerminal constructs a Non-terminal symbol with the given name. The
// name must not be a reserved name and must not contain the fork sentinel
// "@".
func NewNonTerminal(name string) (Symbol, error) {
	return newSymbol(name, NonTerminalKind)
}

func newSymbol(name string, kind SymbolKind) (Symbol, error) {
	if name == EpsilonName || name == EOFName {
		return Symbol{}, &GrammarMalformed{Reason: fmt.Sprintf("symbol name %q collides with a reserved name", name)}
	}
	if strings.Contains(name, forkSentinel) {
		return Symbol{}, &GrammarMalformed{Reason: fmt.Sprintf("symbol name %q contains the fork sentinel %q", name, forkSentinel)}
	}
	if name == "" {
		return Symbol{}, &GrammarMalformed{Reason: "symbol name must not be empty"}
	}
	return Symbol{Name: name, Kind: kind}, nil
}

// IsTerminal reports whether sym is a terminal symbol.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == TerminalKind
}

// IsNonTerminal reports whether sym is a non-terminal symbol.
func (sym Symbol) IsNonTerminal() bool {
	return sym.Kind == NonTerminalKind
}

// IsEpsilon reports whether sym is the reserved ε terminal.
func (sym Symbol) IsEpsilon() bool {
	return sym == Epsilon
}

// IsEOF reports whether sym is the reserved end-of-input terminal.
func (sym Symbol) IsEOF() bool {
	return sym == EOF
}

// String renders a symbol using the diagnostic convention of §6: ε is
// rendered "empty@@" and EOF as "eof@@" (i.e., simply their reserved
// names), everything else as its bare name.
func (sym Symbol) String() string {
	return sym.Name
}

// Fork yields a fresh non-terminal whose name is sym's name with the fork
// sentinel appended. Fork is deterministic given its input: repeated
// application (A, A@, A@@, …) never collides with a user-supplied name,
// because user names may not contain the sentinel.
func Fork(sym Symbol) Symbol {
	if !sym.IsNonTerminal() {
		panic(fmt.Sprintf("grammar: cannot fork terminal %q", sym.Name))
	}
	return Symbol{Name: sym.Name + forkSentinel, Kind: NonTerminalKind}
}

// Production is a non-terminal (LHS) paired with a finite ordered sequence
// of tokens (RHS). An empty RHS is represented as the single-token sequence
// [Epsilon], never the zero-length sequence.
type Production struct {
	LHS Symbol
	RHS []Token
}

// IsEpsilon reports whether p is an ε-production, i.e. RHS == [Epsilon].
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 1 && p.RHS[0].IsEpsilon()
}

// NewProduction builds a production, normalizing a nil/empty RHS to [Epsilon].
func NewProduction(lhs Symbol, rhs []Token) Production {
	if len(rhs) == 0 {
		rhs = []Token{Epsilon}
	}
	return Production{LHS: lhs, RHS: append([]Token(nil), rhs...)}
}

func (p Production) String() string {
	parts := make([]string, len(p.RHS))
	for i, t := range p.RHS {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(parts, " "))
}

// ProductionIndex identifies a production by (LHS, index within LHS's
// production list). This is the indexing scheme PREDICT uses (see §3).
type ProductionIndex struct {
	LHS   Symbol
	Index int
}

func (pi ProductionIndex) String() string {
	return fmt.Sprintf("%s#%d", pi.LHS, pi.Index)
}

// CFG is a context-free grammar: a set of terminals, an ordered list of
// non-terminals (order matters — the left-recursion eliminator depends on
// it), a per-non-terminal ordered production list, and a start symbol.
//
// CFG values are immutable once constructed by NewCFG.
type CFG struct {
	terminals    []Symbol            // unordered conceptually, but kept stable for reproducible output
	nonTerminals []Symbol            // declaration order — significant, see leftrec
	productions  map[string][]Production
	start        Symbol
}

// NewCFG validates and constructs a CFG. nonTerminals gives the declared
// order (significant for left-recursion elimination); productions maps a
// non-terminal to its ordered production list (order indexes PREDICT).
// start must be one of nonTerminals and is conventionally grammar.Goal.
func NewCFG(terminals []Symbol, nonTerminals []Symbol, productions map[Symbol][]Production, start Symbol) (*CFG, error) {
	g := &CFG{
		terminals:    append([]Symbol(nil), terminals...),
		nonTerminals: append([]Symbol(nil), nonTerminals...),
		productions:  make(map[string][]Production, len(productions)),
		start:        start,
	}

	known := make(map[string]Symbol, len(terminals)+len(nonTerminals))
	for _, t := range terminals {
		if !t.IsTerminal() {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("%q listed as terminal is not a terminal", t.Name)}
		}
		if prev, ok := known[t.Name]; ok {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("duplicate symbol name %q (kinds %s and %s)", t.Name, prev.Kind, t.Kind)}
		}
		known[t.Name] = t
	}
	for _, n := range nonTerminals {
		if !n.IsNonTerminal() {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("%q listed as non-terminal is not a non-terminal", n.Name)}
		}
		if prev, ok := known[n.Name]; ok {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("duplicate symbol name %q (kinds %s and %s)", n.Name, prev.Kind, n.Kind)}
		}
		known[n.Name] = n
	}

	for nt, plist := range productions {
		if !nt.IsNonTerminal() {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("production map key %q is not a non-terminal", nt.Name)}
		}
		if _, ok := known[nt.Name]; !ok {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("productions given for undeclared non-terminal %q", nt.Name)}
		}
		if len(plist) == 0 {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("non-terminal %q has an empty production list", nt.Name)}
		}
		cp := append([]Production(nil), plist...)
		seenRHS := make(map[string]bool, len(cp))
		for _, p := range cp {
			if p.LHS != nt {
				return nil, &GrammarMalformed{Reason: fmt.Sprintf("production %v stored under key %q", p, nt.Name)}
			}
			rhsNames := make([]string, len(p.RHS))
			for i, tok := range p.RHS {
				rhsNames[i] = tok.Name
			}
			key := strings.Join(rhsNames, "\x00")
			if seenRHS[key] {
				return nil, &GrammarMalformed{Reason: fmt.Sprintf("duplicate production %v", p)}
			}
			seenRHS[key] = true
			for _, tok := range p.RHS {
				if tok.IsEpsilon() || tok.IsEOF() {
					continue
				}
				if _, ok := known[tok.Name]; !ok {
					return nil, &GrammarMalformed{Reason: fmt.Sprintf("production %v references unknown symbol %q", p, tok.Name)}
				}
			}
		}
		g.productions[nt.Name] = cp
	}

	for _, n := range nonTerminals {
		if _, ok := g.productions[n.Name]; !ok {
			return nil, &GrammarMalformed{Reason: fmt.Sprintf("non-terminal %q has no production list", n.Name)}
		}
	}

	if !start.IsNonTerminal() {
		return nil, &GrammarMalformed{Reason: fmt.Sprintf("start symbol %q is not a non-terminal", start.Name)}
	}
	if _, ok := known[start.Name]; !ok {
		return nil, &GrammarMalformed{Reason: fmt.Sprintf("start symbol %q is not declared", start.Name)}
	}

	tracer().Debugf("grammar: constructed CFG with %d terminals, %d non-terminals, start=%s",
		len(g.terminals), len(g.nonTerminals), g.start)
	return g, nil
}

// Terminals returns the grammar's terminal alphabet.
func (g *CFG) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// NonTerminals returns the grammar's non-terminals in declaration order.
// This order is significant: Paull's algorithm (package leftrec) depends on
// it.
func (g *CFG) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonTerminals...)
}

// Start returns the grammar's designated start non-terminal (Goal).
func (g *CFG) Start() Symbol {
	return g.start
}

// Productions returns the ordered production list for non-terminal A.
// Order within the list is significant: it indexes PREDICT.
func (g *CFG) Productions(A Symbol) []Production {
	return append([]Production(nil), g.productions[A.Name]...)
}

// AllProductions returns every production of g, grouped by non-terminal in
// declaration order, each group in its stored order. This fixed iteration
// order is what makes table construction and conflict reporting
// reproducible (see §5).
func (g *CFG) AllProductions() []Production {
	var all []Production
	for _, nt := range g.nonTerminals {
		all = append(all, g.productions[nt.Name]...)
	}
	return all
}

// EachSymbol iterates over every terminal, then every non-terminal, in a
// fixed, reproducible order.
func (g *CFG) EachSymbol(f func(Symbol)) {
	for _, t := range g.terminals {
		f(t)
	}
	for _, n := range g.nonTerminals {
		f(n)
	}
}

// HasNonTerminal reports whether sym is one of g's declared non-terminals.
func (g *CFG) HasNonTerminal(sym Symbol) bool {
	_, ok := g.productions[sym.Name]
	return ok && sym.IsNonTerminal()
}

// Dump renders the grammar in "A -> X1 X2 ..." form, one production per
// line, in declaration/stored order — useful for golden-file tests and
// debugging.
func (g *CFG) Dump() string {
	var b strings.Builder
	for _, p := range g.AllProductions() {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// sortedNames is a small helper used by SortedSymbolNames to render sets
// deterministically (§4.3: "for reproducibility ... expose sets
// as deterministically-sorted sequences on output").
func sortedNames(syms []Symbol) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}

// SortedSymbolNames renders a slice of symbols as a deterministically
// sorted, comma-separated name list — the rendering convention used for
// FIRST/FOLLOW/PREDICT sets throughout diagnostics.
func SortedSymbolNames(syms []Symbol) string {
	return strings.Join(sortedNames(syms), ", ")
}

// NonLeftRecursiveCFG is a newtype wrapper around a CFG that additionally
// satisfies: for every production A -> X1 X2 …, if X1 is a non-terminal B,
// then B does not derive any sentential form beginning with A. This
// property is established by construction in package leftrec; nothing in
// this package enforces it, since grammar does not know about elimination.
type NonLeftRecursiveCFG struct {
	g *CFG
}

// WrapNonLeftRecursive wraps g as a NonLeftRecursiveCFG. Callers outside of
// package leftrec should not call this directly — leftrec.Eliminate is the
// only place the non-left-recursive property is actually established.
func WrapNonLeftRecursive(g *CFG) NonLeftRecursiveCFG {
	return NonLeftRecursiveCFG{g: g}
}

// CFG returns the wrapped, proved-non-left-recursive grammar.
func (n NonLeftRecursiveCFG) CFG() *CFG {
	return n.g
}
