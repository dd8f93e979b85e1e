// Package engine is the façade tying the parser, e-graph, analysis,
// matcher, rewrite driver and extractor together into the operations
// named by the host ABI: create, add_expr, add_rules,
// run_iteration, best, size.
package engine

// Config is the single per-engine configuration bundle. Every tunable is
// a construction-time field on Engine rather than process-wide state, so
// independently-created engines never share configuration or the
// unsound latch.
type Config struct {
	// NodeLimit bounds e-graph size during a run_iteration call; <= 0
	// means unbounded.
	NodeLimit int

	// IterLimit bounds the number of search/apply passes a single
	// run_iteration call performs; <= 0 means unbounded (saturation or
	// NodeLimit is then the only stop condition).
	IterLimit int

	// FoldConstants enables the default ConstFold analysis.
	// When false, engine uses a no-op analysis that always reports the
	// bottom element.
	FoldConstants bool

	// LeafPrune enables dropping a class's non-leaf e-nodes once its
	// analysis determines a constant/symbol value.
	LeafPrune bool
}

// DefaultConfig returns the engine's defaults: constant folding on, leaf
// pruning off, and a node/iteration budget generous enough for
// exploratory CLI/REPL use without letting an unbounded ruleset (e.g.
// associativity, which alone blows up combinatorially) run forever.
func DefaultConfig() Config {
	return Config{FoldConstants: true, NodeLimit: 10000, IterLimit: 30}
}
