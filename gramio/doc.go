/*
Package gramio renders the artifacts the core packages compute —
grammar.CFG, analysis.Sets, ll1.Table, and lr1.Tables/CFSM — for a human or
for another tool: a terminal pretty-printer built on pterm (tables and the
canonical collection as a tree), a Graphviz DOT export of the CFSM, and a
plain JSON export of the ACTION/GOTO matrices.

This package is read-only: it never mutates the structures it renders, and
it imports no package outside grammar/analysis/ll1/lr1 plus their
encoding/output dependencies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package gramio
