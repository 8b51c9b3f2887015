// Package enhancer expands a raw query with context phrases derived from
// the selected match and the query analysis.
package enhancer

import (
	"strings"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// Context key consulted on the user context for modifier lookup.
const contextAnswerKey = "context"

// Phrase appended when the query itself carries no ecological signal.
const ecologicalPhrase = "sustainable eco-friendly"

// Phrase appended for queries with a negative emotional tone.
const supportPhrase = "supportive guidance"

// domainPhrases looks up the domain-context phrase for the matched entry.
var domainPhrases = map[types.DomainTag]string{
	types.DomainAgriculture: "sustainable agriculture practices",
	types.DomainWellness:    "natural techniques",
	types.DomainTechnology:  "open source tools",
	types.DomainEducation:   "step-by-step guide",
	types.DomainEnvironment: "low impact solutions",
	types.DomainCommunity:   "local community resources",
}

// intentPhrases looks up the intent-context phrase for the analysis.
var intentPhrases = map[types.Intent]string{
	types.IntentLearning:      "beginner friendly tutorial",
	types.IntentResearch:      "in-depth analysis",
	types.IntentAction:        "practical implementation",
	types.IntentWellness:      "holistic approach",
	types.IntentEcologicalAct: "environmentally responsible",
}

// complexityPhrases looks up the complexity phrase; medium adds nothing.
var complexityPhrases = map[types.Complexity]string{
	types.ComplexityLow:  "basics fundamentals",
	types.ComplexityHigh: "advanced expert",
}

// Enhancer builds enhanced query strings.
type Enhancer struct{}

// New creates an Enhancer.
func New() *Enhancer {
	return &Enhancer{}
}

// Enhance appends modifier phrases to the original query in fixed order:
// domain context, intent context, entry modifier for the user's context
// answer, ecological context (only when the query has no ecological
// token), complexity, and emotional support (only on negative tone).
func (e *Enhancer) Enhance(query string, match *types.Match, analysis *types.QueryAnalysis) string {
	parts := []string{strings.TrimSpace(query)}

	if match != nil && match.Entry != nil {
		if phrase, ok := domainPhrases[match.Entry.Domain]; ok {
			parts = append(parts, phrase)
		}
	}

	if phrase, ok := intentPhrases[analysis.Intent]; ok {
		parts = append(parts, phrase)
	}

	if match != nil && match.Entry != nil {
		answer := analysis.UserContext.Answer(contextAnswerKey)
		if modifier := match.Entry.Modifier(answer); modifier != "" {
			parts = append(parts, modifier)
		}
	}

	if !analysis.HasTokenType(types.WordEcological) {
		parts = append(parts, ecologicalPhrase)
	}

	if phrase, ok := complexityPhrases[analysis.Complexity]; ok {
		parts = append(parts, phrase)
	}

	if analysis.EmotionalTone == types.ToneNegative {
		parts = append(parts, supportPhrase)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
