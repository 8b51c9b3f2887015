package matcher

import "github.com/ecoquery/ecoquery-mcp/pkg/types"

// Weights holds the scoring weight set, exposed as configuration rather
// than buried in the scorer.
type Weights struct {
	ExactWord    float64 // per exact query-word / term-word pair
	PartialWord  float64 // per substring-containment pair (not exact)
	DomainIntent float64 // entry domain maps to the analyzed intent
	DomainHint   float64 // entry domain is among the query's domain hints
	VectorSim    float64 // multiplied by cosine similarity

	MinScore      float64 // acceptance threshold for a scored match
	FallbackScore float64 // fixed score assigned to synthesized fallbacks
}

// DefaultWeights returns the canonical weight set.
func DefaultWeights() Weights {
	return Weights{
		ExactWord:     0.30,
		PartialWord:   0.15,
		DomainIntent:  0.25,
		DomainHint:    0.15,
		VectorSim:     0.20,
		MinScore:      0.25,
		FallbackScore: 0.20,
	}
}

// domainIntent maps an entry's domain to the intent it best serves.
var domainIntent = map[types.DomainTag]types.Intent{
	types.DomainEducation:   types.IntentLearning,
	types.DomainTechnology:  types.IntentResearch,
	types.DomainWellness:    types.IntentWellness,
	types.DomainAgriculture: types.IntentEcologicalAct,
	types.DomainEnvironment: types.IntentEcologicalAct,
	types.DomainCommunity:   types.IntentAction,
}
