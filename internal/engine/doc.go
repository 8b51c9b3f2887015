// Package engine composes the query-processing pipeline behind a single
// entry point.
//
// # Basic Usage
//
//	e, err := engine.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := e.Load(ctx); err != nil {
//	    log.Printf("knowledge base degraded: %v", err)
//	}
//
//	result, err := e.ProcessQuery(ctx, "learn organic gardening", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.EnhancedQuery)
//
// # Pipeline
//
// ProcessQuery runs, in order: query analysis, match selection against the
// knowledge base, confidence calculation, query enhancement, and
// recommendation generation. Every stage is deterministic, so identical
// inputs against the same knowledge base yield identical results; results
// for repeated queries are served from a bounded LRU cache. Each processed
// query is recorded in the session tracker, whose aggregate view is
// available through GetSearchPatterns.
//
// # Degraded Mode
//
// When a configured knowledge-base source fails to load, the engine falls
// back to the built-in knowledge base and keeps serving queries; Degraded
// reports this state.
package engine
