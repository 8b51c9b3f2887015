package analyzer

import "github.com/ecoquery/ecoquery-mcp/pkg/types"

// Intent rules are evaluated in order against the lower-cased raw query;
// the first rule with any matching trigger phrase wins.
var intentRules = []struct {
	intent   types.Intent
	triggers []string
}{
	{types.IntentLearning, []string{
		"learn", "study", "understand", "how to", "tutorial", "course", "teach me",
	}},
	{types.IntentResearch, []string{
		"research", "analyze", "analysis", "compare", "methodology", "investigate",
	}},
	{types.IntentWellness, []string{
		"stress", "anxiety", "relax", "meditation", "wellbeing", "mental health", "sleep better",
	}},
	{types.IntentEcologicalAct, []string{
		"sustainable", "recycle", "compost", "renewable", "carbon", "eco-friendly", "zero waste",
	}},
	{types.IntentAction, []string{
		"build", "create", "make", "start", "implement", "install", "set up",
	}},
}

// Academic terms that, combined with a long enough query, mark it as high
// complexity.
var academicTerms = []string{"methodology", "analysis", "research", "development"}

// Domain-hint keyword lists, checked by substring against the raw query. A
// query may hint several domains at once.
var domainKeywords = map[types.DomainTag][]string{
	types.DomainAgriculture: {
		"farm", "garden", "crop", "soil", "organic", "grow", "harvest", "permaculture",
	},
	types.DomainWellness: {
		"stress", "health", "anxiety", "sleep", "meditat", "mindful", "wellbeing", "relax",
	},
	types.DomainTechnology: {
		"software", "code", "programming", "app", "digital", "computer", "tech", "data",
	},
	types.DomainEducation: {
		"learn", "study", "course", "tutorial", "teach", "school", "skill",
	},
	types.DomainEnvironment: {
		"sustainab", "eco", "green", "renewable", "climate", "recycl", "environment", "solar",
	},
	types.DomainCommunity: {
		"community", "local", "volunteer", "neighbor", "group", "together",
	},
}

// Tone word lists. More positive substring hits than negative means a
// positive tone; a tie is neutral.
var positiveWords = []string{
	"happy", "excited", "great", "love", "enjoy", "hope", "thrive", "better",
}

var negativeWords = []string{
	"sad", "angry", "stressed", "anxious", "tired", "worried", "overwhelmed",
	"struggle", "problem",
}

// Urgency indicator phrases.
var urgencyIndicators = []string{"now", "immediately", "urgent", "asap", "emergency"}
