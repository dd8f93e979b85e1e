// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"github.com/herbie-fp/eggcore/internal/engine"
	"github.com/herbie-fp/eggcore/internal/ruleset"
	"github.com/herbie-fp/eggcore/repl"
)

func main() {
	commonlog.Configure(1, nil)

	if len(os.Args) < 2 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	e := engine.New(engine.DefaultConfig())
	id, err := e.AddExpr(string(source))
	if err != nil {
		reportParseError(path, err)
		os.Exit(1)
	}

	rules, err := ruleset.Builtin()
	if err != nil {
		color.Red("failed to load built-in ruleset: %s", err)
		os.Exit(1)
	}
	e.AddRuleSet(rules)

	if len(os.Args) > 2 {
		rulesSource, err := os.ReadFile(os.Args[2])
		if err != nil {
			color.Red("failed to read rule file: %s", err)
			os.Exit(1)
		}
		n, err := e.AddRules(string(rulesSource))
		if err != nil {
			reportParseError(os.Args[2], err)
			os.Exit(1)
		}
		fmt.Printf("loaded %d rule(s) from %s\n", n, os.Args[2])
	}

	result := e.RunIteration()
	for _, it := range result.Iterations {
		fmt.Printf("iteration %d: size %d -> %d, %d classes\n", it.Index, it.SizeBefore, it.SizeAfter, it.Classes)
	}
	fmt.Printf("stopped: %s\n", result.Stop)

	best, err := e.Best(id)
	if err != nil {
		color.Red("extraction failed: %s", err)
		os.Exit(1)
	}
	fmt.Println(best)

	if result.Unsound {
		color.Yellow("⚠ analysis unsound: two folded constants disagreed on an equivalence")
	}
	color.Green("✅ processed %s (%d e-nodes)", path, e.Size())
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(filename string, err error) {
	var pe participle.Error
	if !errors.As(err, &pe) {
		color.Red("%s", err)
		return
	}

	pos := pe.Position()
	color.Red("❌ syntax error in %s at line %d, column %d: %s", filename, pos.Line, pos.Column, pe.Message())
}
