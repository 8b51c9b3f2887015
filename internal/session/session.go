// Package session tracks per-session search history and derives usage
// patterns from it.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// maxHistory bounds the retained search history. The oldest record is
// evicted when a new one would exceed the bound.
const maxHistory = 50

// successThreshold marks a search as successful for profile purposes.
const successThreshold = 0.7

// topDomainCount is how many preferred domains Patterns reports.
const topDomainCount = 3

// Tracker records searches for a single session. All methods are safe for
// concurrent use.
type Tracker struct {
	mu      sync.Mutex
	history []types.SearchRecord
	profile types.UserProfile
	total   int
}

// NewTracker creates an empty session tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record stores the outcome of one search. Newest records sit at the front
// of the history; when the bound is exceeded the oldest record falls off.
// Searches whose confidence clears the success threshold are additionally
// kept in the profile's successful-match list.
func (t *Tracker) Record(keyword string, match *types.Match, confidence float64) types.SearchRecord {
	rec := types.SearchRecord{
		ID:              uuid.New().String(),
		Keyword:         keyword,
		Match:           match,
		ConfidenceScore: confidence,
		Timestamp:       time.Now().UTC(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.history = append([]types.SearchRecord{rec}, t.history...)
	if len(t.history) > maxHistory {
		t.history = t.history[:maxHistory]
	}
	t.total++

	if confidence > successThreshold && match != nil && match.Entry != nil {
		t.profile.SuccessfulMatches = append(t.profile.SuccessfulMatches, types.SuccessfulMatch{
			Keyword:   keyword,
			Domain:    match.Entry.Domain,
			Timestamp: rec.Timestamp,
		})
	}

	return rec
}

// History returns a copy of the retained records, newest first.
func (t *Tracker) History() []types.SearchRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]types.SearchRecord, len(t.history))
	copy(out, t.history)
	return out
}

// Profile returns a copy of the accumulated user profile.
func (t *Tracker) Profile() types.UserProfile {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := types.UserProfile{
		SuccessfulMatches: append([]types.SuccessfulMatch(nil), t.profile.SuccessfulMatches...),
	}
	if t.profile.Preferences != nil {
		out.Preferences = make(map[string]string, len(t.profile.Preferences))
		for k, v := range t.profile.Preferences {
			out.Preferences[k] = v
		}
	}
	return out
}

// SetPreference stores a user preference on the profile.
func (t *Tracker) SetPreference(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.profile.Preferences == nil {
		t.profile.Preferences = make(map[string]string)
	}
	t.profile.Preferences[key] = value
}

// TotalSearches returns the lifetime search count, including searches whose
// records have been evicted from history.
func (t *Tracker) TotalSearches() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Patterns summarizes the session: the domains most frequent among
// successful matches, the lifetime search count, and the mean confidence
// over retained history. An empty session yields zero values.
func (t *Tracker) Patterns() *types.SearchPatterns {
	t.mu.Lock()
	defer t.mu.Unlock()

	patterns := &types.SearchPatterns{
		PreferredDomains: t.topDomainsLocked(),
		TotalSearches:    t.total,
	}

	if len(t.history) > 0 {
		var sum float64
		for _, rec := range t.history {
			sum += rec.ConfidenceScore
		}
		patterns.AverageConfidence = sum / float64(len(t.history))
	}

	return patterns
}

// topDomainsLocked counts domains across the profile's successful matches
// and returns up to topDomainCount tags, most frequent first. Searches
// below the success threshold never influence preferred domains. Ties keep
// the order in which a domain first succeeded.
func (t *Tracker) topDomainsLocked() []string {
	counts := make(map[types.DomainTag]int)
	var firstSeen []types.DomainTag
	for _, sm := range t.profile.SuccessfulMatches {
		if counts[sm.Domain] == 0 {
			firstSeen = append(firstSeen, sm.Domain)
		}
		counts[sm.Domain]++
	}

	ranked := append([]types.DomainTag(nil), firstSeen...)
	// Insertion sort keeps the first-seen order among equal counts.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && counts[ranked[j]] > counts[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > topDomainCount {
		ranked = ranked[:topDomainCount]
	}
	out := make([]string, len(ranked))
	for i, d := range ranked {
		out[i] = string(d)
	}
	return out
}
