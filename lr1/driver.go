package lr1

import (
	"github.com/amberwood/gram/grammar"
)

// Recognize drives the LR(1) shift/reduce stack machine of §4.6 against
// input, a sequence of terminal tokens not including the trailing EOF
// sentinel (Recognize supplies it). It returns nil on accept, or a
// *grammar.ParseReject naming the input position and current state at the
// point no ACTION entry was found.
func Recognize(t *Tables, input []grammar.Symbol) error {
	stateStack := []int{0}
	var symStack []grammar.Symbol
	pos := 0

	current := func() grammar.Symbol {
		if pos >= len(input) {
			return grammar.EOF
		}
		return input[pos]
	}

	for {
		s := stateStack[len(stateStack)-1]
		a := current()

		action, ok := t.Action(s, a)
		if !ok {
			return &grammar.ParseReject{Position: pos, State: s}
		}

		switch action.Kind {
		case ActionAccept:
			return nil
		case ActionShift:
			symStack = append(symStack, a)
			stateStack = append(stateStack, action.Target)
			pos++
		case ActionReduce:
			k := len(toLRRHS(action.Production.RHS))
			if k > 0 {
				symStack = symStack[:len(symStack)-k]
				stateStack = stateStack[:len(stateStack)-k]
			}
			exposed := stateStack[len(stateStack)-1]
			symStack = append(symStack, action.Production.LHS)
			target, ok := t.Goto(exposed, action.Production.LHS)
			if !ok {
				panic("lr1: GOTO undefined after reduce by " + action.Production.String())
			}
			stateStack = append(stateStack, target)
		}
	}
}
