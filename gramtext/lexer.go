package gramtext

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokArrow
	tokPipe
	tokOptional
	tokStar
	tokPlus
	tokNewline
)

type rawToken struct {
	kind tokenKind
	text string
}

const (
	idIdent = iota
	idString
	idArrow
	idPipe
	idOptional
	idStar
	idPlus
	idNewline
)

func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()

	add := func(pattern string, id int) {
		lexer.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return s.Token(id, string(m.Bytes), m), nil
		})
	}
	skip := func(pattern string) {
		lexer.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return nil, nil
		})
	}

	add(`[A-Za-z_][A-Za-z0-9_]*`, idIdent)
	add(`'[^']*'`, idString)
	add(`->`, idArrow)
	add(`\|`, idPipe)
	add(`\?`, idOptional)
	add(`\*`, idStar)
	add(`\+`, idPlus)
	add(`(\r)?\n`, idNewline)
	skip(`[ \t]|#[^\r\n]*`)

	if err := lexer.Compile(); err != nil {
		tracer().Errorf("gramtext: error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// tokenize lexes src into a flat token stream, eliding blank lines.
func tokenize(src string) ([]rawToken, error) {
	lexer, err := newLexer()
	if err != nil {
		return nil, err
	}
	s, err := lexer.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var out []rawToken
	for {
		tok, err, eof := s.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, fmt.Errorf("gramtext: unrecognized input at byte %d", ui.StartColumn)
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		kind := map[int]tokenKind{
			idIdent: tokIdent, idString: tokString, idArrow: tokArrow,
			idPipe: tokPipe, idOptional: tokOptional, idStar: tokStar,
			idPlus: tokPlus, idNewline: tokNewline,
		}[t.Type]
		text := string(t.Lexeme)
		if kind == tokString {
			text = text[1 : len(text)-1]
		}
		if kind == tokNewline && len(out) > 0 && out[len(out)-1].kind == tokNewline {
			continue // collapse blank lines
		}
		out = append(out, rawToken{kind: kind, text: text})
	}
	return out, nil
}
