package types

import "time"

// SearchRecord is one completed search as remembered by the session
// tracker. Records are append-only.
type SearchRecord struct {
	ID              string    `json:"id"`
	Keyword         string    `json:"keyword"`
	Match           *Match    `json:"match"`
	ConfidenceScore float64   `json:"confidence_score"`
	Timestamp       time.Time `json:"timestamp"`
}

// SuccessfulMatch is the compact form kept on the user profile for
// high-confidence searches.
type SuccessfulMatch struct {
	Keyword   string    `json:"keyword"`
	Domain    DomainTag `json:"domain"`
	Timestamp time.Time `json:"timestamp"`
}

// UserProfile accumulates per-user preference signals. It is mutated only
// by the session tracker, once per completed search.
type UserProfile struct {
	Preferences       map[string]string `json:"preferences"`
	SuccessfulMatches []SuccessfulMatch `json:"successful_matches"`
}

// SearchPatterns is the aggregate view over session history exposed to
// callers.
type SearchPatterns struct {
	PreferredDomains  []string `json:"preferred_domains"`
	TotalSearches     int      `json:"total_searches"`
	AverageConfidence float64  `json:"average_confidence"`
}
