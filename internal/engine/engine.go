package engine

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/herbie-fp/eggcore/internal/egraph"
	"github.com/herbie-fp/eggcore/internal/extract"
	"github.com/herbie-fp/eggcore/internal/lang"
	"github.com/herbie-fp/eggcore/internal/parser"
	"github.com/herbie-fp/eggcore/internal/rewrite"
)

// Engine is one independent e-graph instance together with the rules
// registered against it. Each call to New returns a fresh, isolated
// instance; multiple independent engines can coexist without sharing
// any state.
type Engine struct {
	config Config
	graph  *egraph.EGraph
	rules  []*rewrite.Rule
	log    commonlog.Logger
}

// New constructs an Engine (host ABI "create").
func New(config Config) *Engine {
	analysis := egraph.Analysis(egraph.NoopAnalysis{})
	if config.FoldConstants {
		analysis = egraph.ConstFold{}
	}
	g := egraph.New(analysis, egraph.Config{FoldConstants: config.FoldConstants, LeafPrune: config.LeafPrune})
	return &Engine{config: config, graph: g, log: commonlog.GetLogger("eggcore.engine")}
}

// AddExpr parses source as a single term and inserts it into the
// e-graph, returning its class Id (host ABI "add_expr").
func (e *Engine) AddExpr(source string) (egraph.Id, error) {
	sexpr, err := parser.ParseSexpr("add_expr", source)
	if err != nil {
		return 0, fmt.Errorf("add_expr: %w", err)
	}
	expr, err := lang.FromSexpr(sexpr)
	if err != nil {
		return 0, fmt.Errorf("add_expr: %w", err)
	}
	return e.graph.AddExpr(expr), nil
}

// AddRules parses source as a rule file and appends every valid rule to
// this engine's ruleset. A single invalid rule in the file fails the
// whole call rather than silently dropping it.
func (e *Engine) AddRules(source string) (int, error) {
	file, err := parser.ParseRuleSource("add_rules", source)
	if err != nil {
		return 0, fmt.Errorf("add_rules: %w", err)
	}
	rules, err := rewrite.FromRuleFile(file)
	if err != nil {
		return 0, fmt.Errorf("add_rules: %w", err)
	}
	e.rules = append(e.rules, rules...)
	return len(rules), nil
}

// AddRuleSet appends an already-compiled set of rules (used by callers
// that construct a ruleset in Go, e.g. internal/ruleset.Builtin).
func (e *Engine) AddRuleSet(rules []*rewrite.Rule) {
	e.rules = append(e.rules, rules...)
}

// RunIteration runs the rewrite driver to saturation, the node limit,
// or the iteration limit, whichever comes first (host ABI
// "run_iteration"). Returns the per-iteration reports for diagnostics.
func (e *Engine) RunIteration() rewrite.RunResult {
	result := rewrite.Run(e.graph, e.rules, e.config.NodeLimit, e.config.IterLimit)
	if result.Unsound {
		e.log.Warningf("engine is latched unsound after run_iteration (stop=%s)", result.Stop)
	}
	return result
}

// Best extracts the cheapest known term for the class named by id,
// using the AstSize cost function (host ABI "best").
func (e *Engine) Best(id egraph.Id) (string, error) {
	ex := extract.New(e.graph, extract.AstSize{})
	rec, _, err := ex.Extract(id)
	if err != nil {
		return "", fmt.Errorf("best: %w", err)
	}
	return lang.Print(rec), nil
}

// Size returns the e-graph's current total e-node count (host ABI
// "size").
func (e *Engine) Size() int { return e.graph.Size() }

// Unsound reports whether this engine's analysis latch has tripped.
func (e *Engine) Unsound() bool { return e.graph.Unsound() }

// Graph exposes the underlying e-graph for callers (tests, the REPL)
// that need lower-level access than the ABI-shaped methods above.
func (e *Engine) Graph() *egraph.EGraph { return e.graph }
