/*
Package gram is a parser-construction toolkit for context-free grammars.

It implements the classic compiler-theory pipeline over an in-memory CFG:
eliminate left recursion (package leftrec), compute FIRST/FOLLOW/PREDICT sets
(package analysis), build an LL(1) predictive table and drive a stack-based
recognizer (package ll1), and independently build the canonical collection
of LR(1) items with ACTION/GOTO tables and drive a shift/reduce recognizer
(package lr1). Package grammar holds the shared CFG data model.

    g, _ := grammar.NewCFG(...)
    nlr, _ := leftrec.Eliminate(g)
    sets := analysis.Compute(nlr.CFG())
    table, _ := ll1.Build(nlr.CFG(), sets)
    err := ll1.Recognize(table, tokens)

Package structure:

■ grammar: the CFG data model — symbols, tokens, productions, equality.

■ leftrec: Paull's algorithm for indirect and direct left-recursion
elimination.

■ analysis: fixed-point computation of FIRST, FOLLOW and PREDICT sets.

■ ll1: LL(1) table construction and the stack-driven LL(1) recognizer.

■ lr1: LR(1) canonical-collection construction, ACTION/GOTO tables, and the
shift/reduce LR(1) recognizer.

■ gramtext, gramio, cmd/gramcheck: external collaborators (a small textual
grammar notation, diagnostic export, and a CLI) — not part of the core
algorithms above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package gram
