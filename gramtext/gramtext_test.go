package gramtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amberwood/gram/grammar"
)

func TestParseReferenceArithmeticGrammar(t *testing.T) {
	src := `
Goal   -> Expr
Expr   -> Expr '+' Term | Expr '-' Term | Term
Term   -> Term '*' Factor | Term '/' Factor | Factor
Factor -> '(' Expr ')' | num | name
`
	g, err := Parse(src)
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Equal(t, grammar.Goal, g.Start())

	names := func(syms []grammar.Symbol) []string {
		out := make([]string, len(syms))
		for i, s := range syms {
			out[i] = s.Name
		}
		return out
	}
	assert.ElementsMatch(t, []string{"Goal", "Expr", "Term", "Factor"}, names(g.NonTerminals()))
	assert.ElementsMatch(t, []string{"+", "-", "*", "/", "(", ")", "num", "name"}, names(g.Terminals()))

	exprProds := g.Productions(mustFind(t, g.NonTerminals(), "Expr"))
	assert.Len(t, exprProds, 3)
}

func TestParseRejectsMissingGoal(t *testing.T) {
	src := `Expr -> num`
	_, err := Parse(src)
	require.Error(t, err)
	_, ok := err.(*grammar.GrammarMalformed)
	assert.True(t, ok, "expected *grammar.GrammarMalformed, got %T", err)
}

func TestParseDesugarsOptional(t *testing.T) {
	src := `
Goal -> name Sign?
Sign -> '+' | '-'
`
	g, err := Parse(src)
	require.NoError(t, err)

	var forked grammar.Symbol
	for _, nt := range g.NonTerminals() {
		if nt.Name != "Goal" && nt.Name != "Sign" {
			forked = nt
		}
	}
	require.NotEqual(t, grammar.Symbol{}, forked, "expected a forked non-terminal for Sign?")

	prods := g.Productions(forked)
	require.Len(t, prods, 2)
	sawEpsilon, sawSign := false, false
	for _, p := range prods {
		if p.IsEpsilon() {
			sawEpsilon = true
		} else {
			require.Len(t, p.RHS, 1)
			assert.Equal(t, "Sign", p.RHS[0].Name)
			sawSign = true
		}
	}
	assert.True(t, sawEpsilon)
	assert.True(t, sawSign)
}

func TestParseDesugarsStarOnBareTerminal(t *testing.T) {
	src := `
Goal -> 'x'*
`
	g, err := Parse(src)
	require.NoError(t, err)

	// one fork for the star itself, plus one wrapper non-terminal for the
	// bare terminal operand
	assert.Len(t, g.NonTerminals(), 3)
}

func mustFind(t *testing.T, syms []grammar.Symbol, name string) grammar.Symbol {
	t.Helper()
	for _, s := range syms {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("symbol %q not found", name)
	return grammar.Symbol{}
}
