package recdescent

import (
	"testing"

	"github.com/amberwood/gram/grammar"
)

func tok(name string, kind grammar.SymbolKind) grammar.Symbol {
	return grammar.Symbol{Name: name, Kind: kind}
}

func terms(names ...string) []grammar.Symbol {
	out := make([]grammar.Symbol, len(names))
	for i, n := range names {
		out[i] = tok(n, grammar.TerminalKind)
	}
	return out
}

func TestParseReferenceArithmeticInputs(t *testing.T) {
	cases := []struct {
		name   string
		input  []grammar.Symbol
		accept bool
	}{
		{"name-plus-num", terms("name", "+", "num"), true},
		{"paren-name-minus-num-close-star-name", terms("(", "name", "-", "num", ")", "*", "name"), true},
		{"name-plus-trailing", terms("name", "+"), false},
		{"paren-name-unclosed", terms("(", "name"), false},
		{"num-num", terms("num", "num"), false},
		{"empty-input", terms(), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Parse(c.input)
			if c.accept && err != nil {
				t.Fatalf("expected accept, got reject: %v", err)
			}
			if !c.accept && err == nil {
				t.Fatalf("expected reject, got accept")
			}
		})
	}
}
