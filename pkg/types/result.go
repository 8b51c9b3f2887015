package types

// SearchResult is the composite outcome of processing one query. It is a
// pure function of (query, user context, knowledge base); the session
// record is the only side effect of producing one.
type SearchResult struct {
	OriginalQuery       string         `json:"original_query"`
	SemanticMatch       *Match         `json:"semantic_match"`
	ConfidenceScore     float64        `json:"confidence_score"`
	EnhancedQuery       string         `json:"enhanced_query"`
	ContextualQuestions []QuestionStep `json:"contextual_questions"`
	RecommendedActions  []string       `json:"recommended_actions"`
	Analysis            *QueryAnalysis `json:"analysis"`
}

// Validate checks if the search result is well formed.
func (sr *SearchResult) Validate() error {
	if sr.SemanticMatch == nil {
		return ErrMissingMatch
	}
	if err := sr.SemanticMatch.Validate(); err != nil {
		return err
	}
	if sr.ConfidenceScore < 0 || sr.ConfidenceScore > 1 {
		return ErrInvalidConfidence
	}
	if sr.Analysis == nil {
		return ErrMissingAnalysis
	}
	return nil
}
