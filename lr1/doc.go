/*
Package lr1 builds the canonical collection of LR(1) item sets for a grammar
(component C5), then the ACTION and GOTO tables over that collection and a
shift/reduce recognizer driven by them (component C6).

Unlike package ll1, lr1 operates directly on the original grammar (plus a
synthesized augmented start production unless Goal has a single production
and appears on no right-hand side) rather than on a left-recursion-eliminated
grammar, and it
reuses package analysis only for FIRST, needed by item-set closure.

The item representation keeps the dot position implicit as a split between
consumed (Left) and remaining (Right) right-hand-side tokens, following the
teacher's practice (see package ll1 and package leftrec) of favoring plain
slices over a dot index. Right-hand sides entering this package are true
zero-length sequences rather than grammar's [ε] convention; toLRRHS performs
that one-time translation at the package boundary (see grammar.Production's
doc comment on the [ε] convention).

Canonical-collection construction mirrors the characteristic-finite-state-
machine construction of the teacher's lr.TableGenerator: a treeset of
pending state IDs drives a worklist, and ACTION/GOTO are encoded as sparse
integer matrices (package internal/sparse) exactly as the teacher encodes
its SLR(1) tables, adapted here to full LR(1) lookahead-per-item semantics
rather than FOLLOW-based SLR(1) reduce entries.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lr1
