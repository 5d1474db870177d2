package gramtext

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/amberwood/gram/grammar"
)

type parser struct {
	toks         []rawToken
	pos          int
	terminals    map[string]grammar.Symbol
	termOrder    []grammar.Symbol
	nonTerminals map[string]grammar.Symbol
	ntOrder      []grammar.Symbol
	prods        map[grammar.Symbol][]grammar.Production
	forkOf       map[string]int
}

// Parse reads a grammar written in the notation described in the package
// doc and builds a *grammar.CFG from it. The source must declare a
// production for a non-terminal named Goal (grammar.GoalName).
func Parse(src string) (*grammar.CFG, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		toks:         toks,
		terminals:    make(map[string]grammar.Symbol),
		nonTerminals: make(map[string]grammar.Symbol),
		prods:        make(map[grammar.Symbol][]grammar.Production),
		forkOf:       make(map[string]int),
	}
	p.skipNewlines()
	for !p.atEnd() {
		if err := p.parseLine(); err != nil {
			return nil, err
		}
		p.skipNewlines()
	}
	goal, ok := p.nonTerminals[grammar.GoalName]
	if !ok {
		return nil, &grammar.GrammarMalformed{Reason: "source declares no production for Goal"}
	}
	tracer().Debugf("gramtext: parsed %d non-terminals, %d terminals", len(p.ntOrder), len(p.termOrder))
	return grammar.NewCFG(p.termOrder, p.ntOrder, p.prods, goal)
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) cur() rawToken {
	if p.atEnd() {
		return rawToken{kind: tokNewline}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() { p.pos++ }

func (p *parser) skipNewlines() {
	for !p.atEnd() && p.cur().kind == tokNewline {
		p.advance()
	}
}

func (p *parser) parseLine() error {
	if p.cur().kind != tokIdent {
		return fmt.Errorf("gramtext: expected a non-terminal name, got %q", p.cur().text)
	}
	name := p.cur().text
	if !isUpper(name) {
		return fmt.Errorf("gramtext: production left-hand side %q must be a non-terminal (capitalized)", name)
	}
	lhs := p.internNonTerminal(name)
	p.advance()

	if p.cur().kind != tokArrow {
		return fmt.Errorf("gramtext: expected '->' after %q", name)
	}
	p.advance()

	var alts [][]grammar.Token
	for {
		alt, err := p.parseAlt()
		if err != nil {
			return err
		}
		alts = append(alts, alt)
		if p.cur().kind == tokPipe {
			p.advance()
			continue
		}
		break
	}
	if !p.atEnd() && p.cur().kind != tokNewline {
		return fmt.Errorf("gramtext: unexpected token %q after production for %q", p.cur().text, name)
	}

	for _, alt := range alts {
		p.prods[lhs] = append(p.prods[lhs], grammar.NewProduction(lhs, alt))
	}
	return nil
}

func (p *parser) parseAlt() ([]grammar.Token, error) {
	var seq []grammar.Token
	for !p.atEnd() && (p.cur().kind == tokIdent || p.cur().kind == tokString) {
		sym, err := p.parseSymbol()
		if err != nil {
			return nil, err
		}
		seq = append(seq, sym)
	}
	return seq, nil
}

func (p *parser) parseSymbol() (grammar.Token, error) {
	tok := p.cur()
	var sym grammar.Symbol
	if tok.kind == tokString {
		sym = p.internTerminal(tok.text)
		p.advance()
	} else {
		if tok.text == "epsilon" {
			p.advance()
			return grammar.Epsilon, nil
		}
		if isUpper(tok.text) {
			sym = p.internNonTerminal(tok.text)
		} else {
			sym = p.internTerminal(tok.text)
		}
		p.advance()
	}

	switch p.cur().kind {
	case tokOptional:
		p.advance()
		return p.desugarOptional(sym), nil
	case tokStar:
		p.advance()
		return p.desugarStar(sym), nil
	case tokPlus:
		p.advance()
		return p.desugarPlus(sym), nil
	}
	return sym, nil
}

func (p *parser) internNonTerminal(name string) grammar.Symbol {
	if sym, ok := p.nonTerminals[name]; ok {
		return sym
	}
	var sym grammar.Symbol
	if name == grammar.GoalName {
		sym = grammar.Goal
	} else {
		sym, _ = grammar.NewNonTerminal(name)
	}
	p.nonTerminals[name] = sym
	p.ntOrder = append(p.ntOrder, sym)
	return sym
}

func (p *parser) internTerminal(name string) grammar.Symbol {
	if sym, ok := p.terminals[name]; ok {
		return sym
	}
	sym, _ := grammar.NewTerminal(name)
	p.terminals[name] = sym
	p.termOrder = append(p.termOrder, sym)
	return sym
}

// asNonTerminal returns base unchanged if it is already a non-terminal,
// otherwise wraps the terminal base in a fresh singleton-production
// non-terminal so EBNF desugaring (which forks non-terminals) also works
// on a bare terminal operand, e.g. 'x'*.
func (p *parser) asNonTerminal(base grammar.Symbol) grammar.Symbol {
	if base.IsNonTerminal() {
		return base
	}
	wrapped := p.internNonTerminal("Lit_" + sanitize(base.Name))
	if _, exists := p.prods[wrapped]; !exists {
		p.prods[wrapped] = []grammar.Production{grammar.NewProduction(wrapped, []grammar.Token{base})}
	}
	return wrapped
}

// freshFork mints a new non-terminal derived from base's name by repeated
// grammar.Fork, the same mechanism package leftrec uses to name tail
// non-terminals, until an unused name is found.
func (p *parser) freshFork(base grammar.Symbol) grammar.Symbol {
	fork := grammar.Fork(base)
	for {
		if _, taken := p.nonTerminals[fork.Name]; !taken {
			break
		}
		fork = grammar.Fork(fork)
	}
	p.nonTerminals[fork.Name] = fork
	p.ntOrder = append(p.ntOrder, fork)
	return fork
}

// desugarOptional implements X? -> (X | ε), grounded on nihei9-9gram's
// registerAlternative EBNF desugaring (see DESIGN.md).
func (p *parser) desugarOptional(sym grammar.Symbol) grammar.Symbol {
	base := p.asNonTerminal(sym)
	fork := p.freshFork(base)
	p.prods[fork] = []grammar.Production{
		grammar.NewProduction(fork, []grammar.Token{base}),
		grammar.NewProduction(fork, nil),
	}
	return fork
}

// desugarStar implements X* -> (X X* | ε).
func (p *parser) desugarStar(sym grammar.Symbol) grammar.Symbol {
	base := p.asNonTerminal(sym)
	fork := p.freshFork(base)
	p.prods[fork] = []grammar.Production{
		grammar.NewProduction(fork, []grammar.Token{base, fork}),
		grammar.NewProduction(fork, nil),
	}
	return fork
}

// desugarPlus implements X+ -> X X*, with X* desugared as in desugarStar.
func (p *parser) desugarPlus(sym grammar.Symbol) grammar.Symbol {
	base := p.asNonTerminal(sym)
	star := p.freshFork(base)
	p.prods[star] = []grammar.Production{
		grammar.NewProduction(star, []grammar.Token{base, star}),
		grammar.NewProduction(star, nil),
	}
	plus := p.freshFork(star)
	p.prods[plus] = []grammar.Production{
		grammar.NewProduction(plus, []grammar.Token{base, star}),
	}
	return plus
}

func isUpper(name string) bool {
	if name == "" {
		return false
	}
	r := []rune(name)[0]
	return unicode.IsUpper(r)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
