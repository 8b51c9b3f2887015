// Package analyzer derives query-level signals (intent, complexity, domain
// hints, tone, urgency) from tokenized queries using ordered trigger rules.
package analyzer

import (
	"strings"

	"github.com/ecoquery/ecoquery-mcp/internal/tokenizer"
	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// complexity thresholds on token count
const (
	mediumTokenCount = 2
	highTokenCount   = 4
)

// Analyzer aggregates token-level signals into a query-level analysis.
type Analyzer struct {
	tokenizer *tokenizer.Tokenizer
}

// New creates an Analyzer backed by the given tokenizer.
func New(tok *tokenizer.Tokenizer) *Analyzer {
	return &Analyzer{tokenizer: tok}
}

// Analyze derives a fresh QueryAnalysis for the raw query. It never fails:
// a query with zero usable tokens resolves to an empty-token analysis with
// general_inquiry intent.
func (a *Analyzer) Analyze(query string, userCtx *types.UserContext) *types.QueryAnalysis {
	lowered := strings.ToLower(query)
	tokens := a.tokenizer.Tokenize(query)

	return &types.QueryAnalysis{
		Tokens:        tokens,
		Intent:        a.detectIntent(lowered, tokens),
		Complexity:    a.assessComplexity(lowered, tokens),
		DomainHints:   a.detectDomainHints(lowered),
		EmotionalTone: a.detectTone(lowered),
		UrgencyLevel:  a.detectUrgency(lowered),
		UserContext:   userCtx,
	}
}

// detectIntent applies the ordered trigger-phrase rules first, then falls
// back to token-type signals.
func (a *Analyzer) detectIntent(lowered string, tokens []types.Token) types.Intent {
	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				return rule.intent
			}
		}
	}

	// Token-type fallbacks, in order of specificity.
	for _, wt := range []struct {
		wordType types.WordType
		intent   types.Intent
	}{
		{types.WordEmotional, types.IntentWellness},
		{types.WordEcological, types.IntentEcologicalAct},
		{types.WordVerb, types.IntentAction},
	} {
		for _, tok := range tokens {
			if tok.Type == wt.wordType {
				return wt.intent
			}
		}
	}

	return types.IntentGeneralInquiry
}

// assessComplexity grades the query on token count, promoting to high only
// when an academic term also appears.
func (a *Analyzer) assessComplexity(lowered string, tokens []types.Token) types.Complexity {
	if len(tokens) > highTokenCount && containsAny(lowered, academicTerms) {
		return types.ComplexityHigh
	}
	if len(tokens) > mediumTokenCount {
		return types.ComplexityMedium
	}
	return types.ComplexityLow
}

// detectDomainHints collects every domain whose keyword list has at least
// one substring match. Domains are checked in canonical order so the hint
// set is deterministic.
func (a *Analyzer) detectDomainHints(lowered string) []types.DomainTag {
	var hints []types.DomainTag
	for _, domain := range types.Domains {
		if containsAny(lowered, domainKeywords[domain]) {
			hints = append(hints, domain)
		}
	}
	return hints
}

// detectTone counts positive vs negative word hits; ties are neutral.
func (a *Analyzer) detectTone(lowered string) types.Tone {
	positive := countMatches(lowered, positiveWords)
	negative := countMatches(lowered, negativeWords)

	switch {
	case positive > negative:
		return types.TonePositive
	case negative > positive:
		return types.ToneNegative
	default:
		return types.ToneNeutral
	}
}

func (a *Analyzer) detectUrgency(lowered string) types.Urgency {
	if containsAny(lowered, urgencyIndicators) {
		return types.UrgencyHigh
	}
	return types.UrgencyLow
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func countMatches(s string, substrings []string) int {
	count := 0
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			count++
		}
	}
	return count
}
