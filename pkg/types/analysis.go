package types

// Intent is the inferred purpose of a query.
type Intent string

const (
	IntentLearning       Intent = "learning"
	IntentResearch       Intent = "research"
	IntentAction         Intent = "action"
	IntentWellness       Intent = "wellness"
	IntentEcologicalAct  Intent = "ecological_action"
	IntentGeneralInquiry Intent = "general_inquiry"
)

// Complexity grades how involved a query is.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Tone is the detected emotional tone of a query.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// Urgency indicates whether a query asks for an immediate answer.
type Urgency string

const (
	UrgencyLow  Urgency = "low"
	UrgencyHigh Urgency = "high"
)

// DomainTag is a coarse topical tag attached to knowledge-base entries.
type DomainTag string

const (
	DomainAgriculture DomainTag = "AGRICULTURE"
	DomainWellness    DomainTag = "WELLNESS"
	DomainTechnology  DomainTag = "TECHNOLOGY"
	DomainEducation   DomainTag = "EDUCATION"
	DomainEnvironment DomainTag = "ENVIRONMENT"
	DomainCommunity   DomainTag = "COMMUNITY"
)

// Domains lists all known domain tags in their canonical order. Domain-hint
// detection iterates this order so analysis output is deterministic.
var Domains = []DomainTag{
	DomainAgriculture,
	DomainWellness,
	DomainTechnology,
	DomainEducation,
	DomainEnvironment,
	DomainCommunity,
}

// UserContext carries optional per-user answers and preferences supplied
// with a query. Both maps may be nil.
type UserContext struct {
	Answers     map[string]string `json:"answers,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// Answer returns the answer stored under key, or "" when absent.
func (uc *UserContext) Answer(key string) string {
	if uc == nil || uc.Answers == nil {
		return ""
	}
	return uc.Answers[key]
}

// QueryAnalysis is the query-level aggregation of token signals. It is
// derived fresh per query; no state is shared across queries.
type QueryAnalysis struct {
	Tokens        []Token      `json:"tokens"`
	Intent        Intent       `json:"intent"`
	Complexity    Complexity   `json:"complexity"`
	DomainHints   []DomainTag  `json:"domain_hints"`
	EmotionalTone Tone         `json:"emotional_tone"`
	UrgencyLevel  Urgency      `json:"urgency_level"`
	UserContext   *UserContext `json:"-"`
}

// HintsDomain reports whether the analysis detected the given domain.
func (a *QueryAnalysis) HintsDomain(d DomainTag) bool {
	for _, hint := range a.DomainHints {
		if hint == d {
			return true
		}
	}
	return false
}

// HasTokenType reports whether any token carries the given word type.
func (a *QueryAnalysis) HasTokenType(wt WordType) bool {
	for _, tok := range a.Tokens {
		if tok.Type == wt {
			return true
		}
	}
	return false
}
