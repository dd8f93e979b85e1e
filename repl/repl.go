// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/herbie-fp/eggcore/internal/engine"
	"github.com/herbie-fp/eggcore/internal/ruleset"
)

const PROMPT = ">> "

// Start runs an interactive loop over in: every line is added to a
// single, session-long engine instance, saturated against the built-in
// ruleset, and its best extraction printed. ":size" and ":rules <file>"
// are recognized as REPL commands; anything else is parsed as a term.
func Start(in io.Reader, out io.Writer) {
	e := engine.New(engine.DefaultConfig())
	if rules, err := ruleset.Builtin(); err == nil {
		e.AddRuleSet(rules)
	} else {
		fmt.Fprintf(out, "warning: failed to load built-in ruleset: %s\n", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == ":size":
			fmt.Fprintf(out, "%d e-nodes\n", e.Size())
			continue
		case strings.HasPrefix(line, ":rules "):
			handleRules(e, out, strings.TrimSpace(strings.TrimPrefix(line, ":rules ")))
			continue
		}

		handleExpr(e, out, line)
	}
}

func handleExpr(e *engine.Engine, out io.Writer, line string) {
	id, err := e.AddExpr(line)
	if err != nil {
		reportParseError(out, "<stdin>", err)
		return
	}

	result := e.RunIteration()
	best, err := e.Best(id)
	if err != nil {
		fmt.Fprintf(out, "extraction failed: %s\n", err)
		return
	}

	fmt.Fprintf(out, "=> %s\n", best)
	if result.Unsound {
		color.New(color.FgYellow).Fprintln(out, "⚠ analysis unsound")
	}
}

func handleRules(e *engine.Engine, out io.Writer, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "failed to read %s: %s\n", path, err)
		return
	}
	n, err := e.AddRules(string(source))
	if err != nil {
		reportParseError(out, path, err)
		return
	}
	fmt.Fprintf(out, "loaded %d rule(s) from %s\n", n, path)
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(out io.Writer, filename string, err error) {
	var pe participle.Error
	if !errors.As(err, &pe) {
		fmt.Fprintf(out, "error: %s\n", err)
		return
	}
	pos := pe.Position()
	color.New(color.FgRed).Fprintf(out, "❌ syntax error in %s at line %d, column %d: %s\n", filename, pos.Line, pos.Column, pe.Message())
}
