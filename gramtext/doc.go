/*
Package gramtext parses a small textual grammar notation into a
*grammar.CFG: this is the "concrete lexing" collaborator the core
specification treats as out of scope, written so that the core packages
(grammar, leftrec, analysis, ll1, lr1) can be exercised from a human-
writable source file instead of being wired up production-by-production in
Go.

Notation

	Goal   -> Expr
	Expr   -> Expr '+' Term | Expr '-' Term | Term
	Term   -> Term '*' Factor | Term '/' Factor | Factor
	Factor -> '(' Expr ')' | num | name | epsilon

One production per line (continuation alternatives separated by '|' on the
same line). An identifier starting with an upper-case letter is a
non-terminal; everything else (a bare lower-case identifier, or a quoted
literal) is a terminal. The reserved word "epsilon" denotes ε. A grammar
must declare a production for a non-terminal named Goal.

EBNF postfix operators '?', '*', '+' on a single grammar symbol are
desugared into a fresh forked non-terminal exactly as gorgo's relative
`nihei9/gram`-style `registerAlternative` desugars EBNF alternatives into
plain productions (see DESIGN.md) — X? becomes (X | ε), X* becomes
(X X* | ε), X+ becomes the single alternative X X*.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package gramtext
