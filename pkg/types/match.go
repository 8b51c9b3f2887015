package types

// MatchType classifies how the selected entry relates to the query.
type MatchType string

const (
	MatchExact          MatchType = "exact"
	MatchPartial        MatchType = "partial"
	MatchSemantic       MatchType = "semantic"
	MatchDomainFallback MatchType = "domain_fallback"
)

// Match is the selected knowledge-base entry for a query, plus its raw
// score and classification.
type Match struct {
	Term  string         `json:"term"`
	Entry *SemanticEntry `json:"entry"`
	Score float64        `json:"score"`
	Type  MatchType      `json:"match_type"`
}

// IsFallback reports whether the match was synthesized by the fallback
// policy rather than scored from the knowledge base.
func (m *Match) IsFallback() bool {
	return m.Type == MatchDomainFallback
}

// Validate checks if the match is well formed.
func (m *Match) Validate() error {
	if m.Term == "" {
		return ErrEmptyTerm
	}
	if m.Entry == nil {
		return ErrMissingEntry
	}
	if m.Score < 0 || m.Score > 1 {
		return ErrInvalidScore
	}
	switch m.Type {
	case MatchExact, MatchPartial, MatchSemantic, MatchDomainFallback:
		return nil
	default:
		return ErrInvalidMatchType
	}
}
