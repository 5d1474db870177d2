package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/npillmayer/schuko/gtrace"
)

// runREPL reads whitespace-separated terminal sequences from stdin via
// chzyer/readline and reports accept/reject against eng, grounded on trepl's own
// readline.New/Readline loop (terex/terexlang/trepl/repl.go's REPL
// method), adapted from s-expression evaluation to grammar recognition.
func runREPL(eng *engine) {
	gtrace.SyntaxTracer.Infof("gramcheck[%s]: starting REPL in %s mode", runID, eng.mode)

	rl, err := readline.New("gramcheck> ")
	if err != nil {
		fmt.Printf("gramcheck: could not start REPL: %v\n", err)
		return
	}
	defer rl.Close()

	fmt.Println("Enter whitespace-separated terminal names; :dump KIND to render an artifact; Ctrl-D to quit.")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":dump") {
			kind := strings.TrimSpace(strings.TrimPrefix(line, ":dump"))
			if err := eng.dump(kind); err != nil {
				fmt.Printf("gramcheck: %v\n", err)
			}
			continue
		}
		tokens, err := eng.tokenize(strings.Fields(line))
		if err != nil {
			fmt.Printf("gramcheck: %v\n", err)
			continue
		}
		if err := eng.recognize(tokens); err != nil {
			fmt.Printf("reject: %v\n", err)
			continue
		}
		fmt.Println("accept")
	}
	fmt.Println("Good bye!")
}
