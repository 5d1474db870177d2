package grammar

import "fmt"

// GrammarMalformed reports a structurally invalid CFG: a duplicate
// production, an unknown symbol on some RHS, or a reserved-name collision.
type GrammarMalformed struct {
	Reason string
}

func (e *GrammarMalformed) Error() string {
	return fmt.Sprintf("grammar malformed: %s", e.Reason)
}

// AllLeftRecursive reports that, during direct left-recursion elimination,
// a non-terminal had no non-recursive production — the grammar derives no
// terminal string from it.
type AllLeftRecursive struct {
	NonTerminal Symbol
}

func (e *AllLeftRecursive) Error() string {
	return fmt.Sprintf("grammar error: non-terminal %q has only left-recursive productions", e.NonTerminal.Name)
}

// PredictConflict reports that an LL(1) table cell would hold two
// productions: the grammar is not LL(1).
type PredictConflict struct {
	NonTerminal Symbol
	Lookahead   Symbol
	First       Production
	Second      Production
}

func (e *PredictConflict) Error() string {
	return fmt.Sprintf("LL(1) predict conflict on %s under lookahead %s: %v vs %v",
		e.NonTerminal, e.Lookahead, e.First, e.Second)
}

// ShiftReduceConflict reports that an LR(1) ACTION cell was assigned both a
// shift and a reduce entry. RunID identifies the table-construction run that
// found the conflict (see lr1.Build), so repeated runs in a trace log stay
// distinguishable; it is empty when the caller didn't tag the run.
type ShiftReduceConflict struct {
	State     int
	Lookahead Symbol
	Shift     int
	Reduce    Production
	RunID     string
}

func (e *ShiftReduceConflict) Error() string {
	if e.RunID != "" {
		return fmt.Sprintf("[%s] shift/reduce conflict in state %d on %s: shift to %d vs reduce %v",
			e.RunID, e.State, e.Lookahead, e.Shift, e.Reduce)
	}
	return fmt.Sprintf("shift/reduce conflict in state %d on %s: shift to %d vs reduce %v",
		e.State, e.Lookahead, e.Shift, e.Reduce)
}

// ReduceReduceConflict reports that an LR(1) ACTION cell was assigned two
// different reduce entries. RunID is as for ShiftReduceConflict.
type ReduceReduceConflict struct {
	State     int
	Lookahead Symbol
	First     Production
	Second    Production
	RunID     string
}

func (e *ReduceReduceConflict) Error() string {
	if e.RunID != "" {
		return fmt.Sprintf("[%s] reduce/reduce conflict in state %d on %s: %v vs %v",
			e.RunID, e.State, e.Lookahead, e.First, e.Second)
	}
	return fmt.Sprintf("reduce/reduce conflict in state %d on %s: %v vs %v",
		e.State, e.Lookahead, e.First, e.Second)
}

// ParseReject reports that a recognizer received input it cannot derive.
// Position is the 0-based index into the input token sequence at which
// recognition failed (len(input) if it failed at EOF). State is set only by
// the LR(1) driver and is -1 from the LL(1) driver.
type ParseReject struct {
	Position int
	State    int
}

func (e *ParseReject) Error() string {
	if e.State >= 0 {
		return fmt.Sprintf("parse rejected at input position %d, state %d", e.Position, e.State)
	}
	return fmt.Sprintf("parse rejected at input position %d", e.Position)
}
