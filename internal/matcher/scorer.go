package matcher

import (
	"strings"

	"github.com/ecoquery/ecoquery-mcp/internal/tokenizer"
	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// Scorer scores one knowledge-base entry against a query and its analysis.
// Scoring is additive over independent signals and clamped to [0, 1].
type Scorer struct {
	weights   Weights
	tokenizer *tokenizer.Tokenizer
}

// NewScorer creates a Scorer with the given weight set.
func NewScorer(weights Weights, tok *tokenizer.Tokenizer) *Scorer {
	return &Scorer{weights: weights, tokenizer: tok}
}

// Score computes the match score for (query, term, entry) given the query
// analysis. Contributions:
//   - exact word pairs between query stems and term stems
//   - partial (substring) word pairs not already counted as exact
//   - entry domain aligned with the analyzed intent
//   - entry domain among the query's domain hints
//   - cosine similarity between the synthesized query vector and the
//     entry vector (mismatched dimensions contribute 0)
func (s *Scorer) Score(term string, entry *types.SemanticEntry, analysis *types.QueryAnalysis) float64 {
	score := 0.0

	queryStems := stemsOf(analysis.Tokens)
	termStems := s.termStems(term)

	for _, qw := range queryStems {
		for _, tw := range termStems {
			switch {
			case qw == tw:
				score += s.weights.ExactWord
			case strings.Contains(qw, tw) || strings.Contains(tw, qw):
				score += s.weights.PartialWord
			}
		}
	}

	if entry != nil {
		if domainIntent[entry.Domain] == analysis.Intent {
			score += s.weights.DomainIntent
		}
		if analysis.HintsDomain(entry.Domain) {
			score += s.weights.DomainHint
		}

		similarity := CosineSimilarity(QueryVector(analysis.Tokens), entry.Vector)
		if similarity > 0 {
			score += s.weights.VectorSim * similarity
		}
	}

	return clamp01(score)
}

// termStems tokenizes a knowledge-base term the same way queries are
// tokenized, so lexical comparison happens stem-to-stem.
func (s *Scorer) termStems(term string) []string {
	return stemsOf(s.tokenizer.Tokenize(term))
}

func stemsOf(tokens []types.Token) []string {
	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = tok.Stem
	}
	return stems
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
