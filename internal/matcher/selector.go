package matcher

import (
	"strings"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// EntrySource is the read-only view of the knowledge base the selector
// scans. Terms() preserves the knowledge base's declared order.
type EntrySource interface {
	Terms() []string
	Get(term string) (*types.SemanticEntry, bool)
	Len() int
}

// fallbackTerms maps each intent to its representative entry term. Terms
// here name entries in the built-in default knowledge base; when the
// active knowledge base lacks the term, the ultimate default entry below
// is used instead.
var fallbackTerms = map[types.Intent]string{
	types.IntentLearning:      "new skills training",
	types.IntentResearch:      "research methods",
	types.IntentWellness:      "stress relief",
	types.IntentEcologicalAct: "renewable energy",
	types.IntentAction:        "community project",
}

// ultimateFallbackTerm names the entry used for unmapped intents and for
// knowledge bases missing the mapped term.
const ultimateFallbackTerm = "sustainable living"

// ultimateFallbackEntry is synthesized when even the fallback term is
// absent, so Select never returns a nil match.
func ultimateFallbackEntry() *types.SemanticEntry {
	return &types.SemanticEntry{
		Domain: types.DomainEnvironment,
		Vector: []float32{0.3, 0.1, 0.2, 0.3, 0.1, 0.8, 0.2, 0.3},
	}
}

// Selector scans every knowledge-base entry and retains the best-scoring
// one, applying the fallback policy when nothing clears the acceptance
// threshold.
type Selector struct {
	scorer  *Scorer
	weights Weights
}

// NewSelector creates a Selector around the given scorer.
func NewSelector(scorer *Scorer, weights Weights) *Selector {
	return &Selector{scorer: scorer, weights: weights}
}

// Select returns the best match for the query, never nil. Entries are
// scored in the knowledge base's declared order; ties keep the first
// encountered. A best score below the acceptance threshold is discarded in
// favor of a synthesized fallback match.
func (s *Selector) Select(query string, analysis *types.QueryAnalysis, entries EntrySource) *types.Match {
	var bestTerm string
	var bestEntry *types.SemanticEntry
	bestScore := -1.0

	if entries != nil {
		for _, term := range entries.Terms() {
			entry, ok := entries.Get(term)
			if !ok {
				continue
			}
			score := s.scorer.Score(term, entry, analysis)
			if score > bestScore {
				bestScore = score
				bestTerm = term
				bestEntry = entry
			}
		}
	}

	if bestEntry == nil || bestScore < s.weights.MinScore {
		return s.fallbackMatch(analysis, entries)
	}

	return &types.Match{
		Term:  bestTerm,
		Entry: bestEntry,
		Score: bestScore,
		Type:  classifyMatch(query, bestTerm),
	}
}

// fallbackMatch synthesizes a low-score match for the analyzed intent.
func (s *Selector) fallbackMatch(analysis *types.QueryAnalysis, entries EntrySource) *types.Match {
	term, ok := fallbackTerms[analysis.Intent]
	if !ok {
		term = ultimateFallbackTerm
	}

	var entry *types.SemanticEntry
	if entries != nil {
		if e, found := entries.Get(term); found {
			entry = e
		}
	}
	if entry == nil {
		term = ultimateFallbackTerm
		if entries != nil {
			if e, found := entries.Get(term); found {
				entry = e
			}
		}
	}
	if entry == nil {
		entry = ultimateFallbackEntry()
	}

	return &types.Match{
		Term:  term,
		Entry: entry,
		Score: s.weights.FallbackScore,
		Type:  types.MatchDomainFallback,
	}
}

// classifyMatch sets the match type from the lexical relation between the
// query and the selected term.
func classifyMatch(query, term string) types.MatchType {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(term))

	switch {
	case q == t:
		return types.MatchExact
	case q != "" && (strings.Contains(q, t) || strings.Contains(t, q)):
		return types.MatchPartial
	default:
		return types.MatchSemantic
	}
}
