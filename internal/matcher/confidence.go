package matcher

import "github.com/ecoquery/ecoquery-mcp/pkg/types"

// Confidence adjustment constants. Additive boosts apply before the
// multiplicative fallback penalty; the result is clamped to [0, 1].
const (
	exactMatchBoost     = 0.2
	highComplexityBoost = 0.1
	highComplexityFloor = 0.6
	fallbackScoreFactor = 0.8
)

// Confidence derives the final confidence for a match from its raw score
// and contextual adjustments.
func Confidence(match *types.Match, analysis *types.QueryAnalysis) float64 {
	confidence := match.Score

	if match.Type == types.MatchExact {
		confidence += exactMatchBoost
	}
	if analysis.Complexity == types.ComplexityHigh && match.Score > highComplexityFloor {
		confidence += highComplexityBoost
	}
	if match.Type == types.MatchDomainFallback {
		confidence *= fallbackScoreFactor
	}

	return clamp01(confidence)
}
