/*
Package recdescent is a hand-written recursive-descent recognizer for the
fixed arithmetic grammar used as the reference example throughout this
module (see spec.md §8):

	Expr   -> Expr '+' Term | Expr '-' Term | Term
	Term   -> Term '*' Factor | Term '/' Factor | Factor
	Factor -> '(' Expr ')' | num | name

It exists for illustration only, translated from the original prototype's
src/parser/recursive_descent.rs: the left-recursive rules for Expr and Term
are hand-rewritten into the usual expr/expr_ and term/term_ tail-loop
shape. It is not part of the core — package ll1's generic table-driven
recognizer subsumes it for any grammar, not just this one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package recdescent

import (
	"fmt"

	"github.com/amberwood/gram/grammar"
)

// Error reports where recognition failed, mirroring grammar.ParseReject's
// shape for this illustrative, non-table-driven recognizer.
type Error struct {
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("recdescent: parse rejected at input position %d", e.Position)
}

type context struct {
	tokens []grammar.Symbol
	idx    int
}

func (c *context) current() grammar.Symbol {
	if c.idx == len(c.tokens) {
		return grammar.EOF
	}
	return c.tokens[c.idx]
}

func (c *context) forward() {
	if c.idx != len(c.tokens) {
		c.idx++
	}
}

// Parse recognizes tokens against the arithmetic grammar, returning nil on
// accept or an *Error naming the first position at which no alternative of
// the current rule applied.
func Parse(tokens []grammar.Symbol) error {
	ctx := &context{tokens: tokens}
	if err := expr(ctx); err != nil {
		return err
	}
	if ctx.current().IsEOF() {
		return nil
	}
	return &Error{Position: ctx.idx}
}

func expr(ctx *context) error {
	if err := term(ctx); err != nil {
		return err
	}
	return exprTail(ctx)
}

func exprTail(ctx *context) error {
	t := ctx.current()
	if t.Name == "+" || t.Name == "-" {
		ctx.forward()
		if err := term(ctx); err != nil {
			return err
		}
		return exprTail(ctx)
	}
	return nil
}

func term(ctx *context) error {
	if err := factor(ctx); err != nil {
		return err
	}
	return termTail(ctx)
}

func termTail(ctx *context) error {
	t := ctx.current()
	if t.Name == "*" || t.Name == "/" {
		ctx.forward()
		if err := factor(ctx); err != nil {
			return err
		}
		return termTail(ctx)
	}
	return nil
}

func factor(ctx *context) error {
	t := ctx.current()
	switch {
	case t.Name == "num" || t.Name == "name":
		ctx.forward()
		return nil
	case t.Name == "(":
		ctx.forward()
		if err := expr(ctx); err != nil {
			return err
		}
		if ctx.current().Name == ")" {
			ctx.forward()
			return nil
		}
		return &Error{Position: ctx.idx}
	default:
		return &Error{Position: ctx.idx}
	}
}
