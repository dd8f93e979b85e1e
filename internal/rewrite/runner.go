package rewrite

import (
	"github.com/tliron/commonlog"

	"github.com/herbie-fp/eggcore/internal/egraph"
)

// StopReason names why Run stopped.
type StopReason string

const (
	// StopSaturated means a Step produced no unions: the e-graph is a
	// fixed point for this ruleset.
	StopSaturated StopReason = "saturated"

	// StopIterationLimit means Run reached its configured maximum
	// number of iterations before saturating.
	StopIterationLimit StopReason = "iteration_limit"

	// StopNodeLimit means a Step hit the node_limit ceiling mid-apply.
	StopNodeLimit StopReason = "node_limit"
)

// IterationReport records one iteration's effect: per-iteration
// size/rule-hit counts useful for diagnostics and regression tests, not
// just a final saturated/not-saturated bit.
type IterationReport struct {
	Index      int
	SizeBefore int
	SizeAfter  int
	Classes    int
	Rules      []RuleStats
}

// RunResult is the outcome of Run: every iteration's report plus why it
// stopped.
type RunResult struct {
	Iterations []IterationReport
	Stop       StopReason
	Unsound    bool
}

// Run applies rules to g iteration after iteration until saturation, the
// node_limit, or maxIterations, whichever comes first. A
// node_limit <= 0 means unbounded; maxIterations <= 0 means unbounded
// (saturation or node_limit is then the only stop condition).
func Run(g *egraph.EGraph, rules []*Rule, nodeLimit, maxIterations int) RunResult {
	log := commonlog.GetLogger("eggcore.rewrite")
	var result RunResult

	for i := 0; maxIterations <= 0 || i < maxIterations; i++ {
		before := g.Size()
		step, err := Step(g, rules, nodeLimit)

		report := IterationReport{
			Index:      i,
			SizeBefore: before,
			SizeAfter:  g.Size(),
			Classes:    g.NumClasses(),
			Rules:      step.Rules,
		}
		result.Iterations = append(result.Iterations, report)
		log.Debugf("iteration %d: size %d -> %d, classes %d", i, before, report.SizeAfter, report.Classes)

		if err != nil {
			result.Stop = StopNodeLimit
			break
		}
		if !step.Changed {
			result.Stop = StopSaturated
			break
		}
		if i+1 == maxIterations {
			result.Stop = StopIterationLimit
		}
	}

	result.Unsound = g.Unsound()
	return result
}
