// Package matcher scores knowledge-base entries against analyzed queries
// and selects the best match.
//
// Scoring is additive over independent signals: exact and partial lexical
// overlap between query stems and term stems, domain/intent alignment,
// domain-hint alignment, and cosine similarity between a synthesized query
// vector and the entry's vector. The sum is clamped to [0, 1].
//
//	scorer := matcher.NewScorer(matcher.DefaultWeights(), tok)
//	selector := matcher.NewSelector(scorer, matcher.DefaultWeights())
//	match := selector.Select(query, analysis, kb)
//
// Selection scans entries in the knowledge base's declared order and keeps
// the first highest-scoring entry. When nothing clears the acceptance
// threshold, a fallback match is synthesized from a static intent mapping,
// so Select never returns nil.
//
// Confidence derives the final [0, 1] confidence from the match's raw
// score: exact matches and hard high-scoring queries are boosted, fallback
// matches are penalized multiplicatively after the boosts.
package matcher
