/*
Gramcheck wires the grammar, leftrec, analysis, ll1, lr1, gramtext, and
gramio packages into one CLI: given a grammar written in gramtext's
notation, it builds an LL(1) or LR(1) table and either recognizes tokens
given on the command line, drops into an interactive REPL, or dumps an
artifact (FIRST/FOLLOW sets, the parse table, a Graphviz CFSM, or JSON).

Usage:

	gramcheck --grammar FILE [--mode ll1|lr1] [--dump sets|table|dot|json] [tokens...]
	gramcheck --grammar FILE --repl

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/amberwood/gram/gramtext"
)

var (
	grammarFile = pflag.StringP("grammar", "g", "", "path to a gramtext grammar file (required)")
	mode        = pflag.StringP("mode", "m", "lr1", "parser mode: ll1 or lr1")
	dump        = pflag.String("dump", "", "dump an artifact instead of/before recognizing: sets, table, dot, or json")
	traceLevel  = pflag.String("trace", "Error", "trace level: Debug|Info|Error")
	configFile  = pflag.String("config", "", "optional TOML config file providing defaults for unset flags")
	interactive = pflag.BoolP("repl", "i", false, "start an interactive REPL instead of recognizing positional args")
)

func main() {
	pflag.Parse()
	applyConfigDefaults()

	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))

	if *grammarFile == "" {
		fmt.Fprintln(os.Stderr, "gramcheck: --grammar is required")
		pflag.Usage()
		os.Exit(2)
	}
	src, err := os.ReadFile(*grammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gramcheck: %v\n", err)
		os.Exit(2)
	}
	g, err := gramtext.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gramcheck: parsing grammar: %v\n", err)
		os.Exit(2)
	}
	eng, err := buildEngine(g, *mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gramcheck: %v\n", err)
		os.Exit(2)
	}

	if *dump != "" {
		if err := eng.dump(*dump); err != nil {
			fmt.Fprintf(os.Stderr, "gramcheck: %v\n", err)
			os.Exit(1)
		}
	}

	if *interactive {
		runREPL(eng)
		return
	}
	if args := pflag.Args(); len(args) > 0 {
		tokens, err := eng.tokenize(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gramcheck: %v\n", err)
			os.Exit(2)
		}
		if err := eng.recognize(tokens); err != nil {
			fmt.Printf("reject: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("accept")
	}
}

func applyConfigDefaults() {
	if *configFile == "" {
		return
	}
	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gramcheck: reading config: %v\n", err)
		os.Exit(2)
	}
	if !pflag.Lookup("grammar").Changed && cfg.Grammar != "" {
		*grammarFile = cfg.Grammar
	}
	if !pflag.Lookup("mode").Changed && cfg.Mode != "" {
		*mode = cfg.Mode
	}
	if !pflag.Lookup("trace").Changed && cfg.Trace != "" {
		*traceLevel = cfg.Trace
	}
}

// runID tags one CLI invocation's REPL session for trace correlation,
// mirroring lr1.Build's per-build UUID tag.
var runID = uuid.New().String()
