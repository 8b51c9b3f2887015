package kb

import "github.com/ecoquery/ecoquery-mcp/pkg/types"

// Default returns the built-in knowledge base used when no source is
// configured or when loading fails. It carries at least one representative
// entry per intent so the fallback policy always has somewhere to land.
//
// Vector slots: verb, adverb, adjective, noun, emotional, ecological,
// object, activity.
func Default() *KnowledgeBase {
	kb := New()

	add := func(term string, entry *types.SemanticEntry) {
		// entries below are static and valid; Add only rejects
		// malformed input
		_ = kb.Add(term, entry)
	}

	add("new skills training", &types.SemanticEntry{
		Domain:    types.DomainEducation,
		Subdomain: "skills",
		Vector:    []float32{0.9, 0.1, 0.2, 0.6, 0, 0.1, 0.1, 0.2},
		Questions: []types.QuestionStep{
			{Step: "context", Title: "What do you want to learn?", Options: []types.QuestionOption{
				{Label: "A practical skill", Value: "practical"},
				{Label: "A deeper subject", Value: "subject"},
				{Label: "Start today with something small", Value: "quick"},
			}},
			{Step: "approach", Title: "How do you learn best?", Options: []types.QuestionOption{
				{Label: "Structured courses", Value: "course"},
				{Label: "Hands-on projects", Value: "project"},
			}},
			{Step: "outcome", Title: "What outcome matters most?", Options: []types.QuestionOption{
				{Label: "Confidence with basics", Value: "basics"},
				{Label: "Job-ready expertise", Value: "career"},
			}},
		},
		Actions: &types.ActionSet{Flat: []string{
			"Find beginner resources",
			"Join a learning community",
			"Set a weekly practice schedule",
		}},
		Modifiers: map[string]string{
			"home": "for self-paced home learning",
			"work": "for professional development",
		},
	})

	add("research methods", &types.SemanticEntry{
		Domain: types.DomainTechnology,
		Vector: []float32{0.5, 0, 0.2, 0.7, 0, 0, 0.2, 0.1},
		Actions: &types.ActionSet{Flat: []string{
			"Survey existing literature",
			"Define a research question",
			"Pick an analysis method",
		}},
	})

	add("organic farming", &types.SemanticEntry{
		Domain:    types.DomainAgriculture,
		Subdomain: "organic",
		Vector:    []float32{0.2, 0, 0.1, 0.3, 0, 0.9, 0.3, 0.8},
		Questions: []types.QuestionStep{
			{Step: "context", Title: "What space do you have?", Options: []types.QuestionOption{
				{Label: "Balcony or windowsill", Value: "balcony"},
				{Label: "Backyard plot", Value: "yard"},
				{Label: "Start now with containers", Value: "containers"},
			}},
			{Step: "approach", Title: "What would you like to grow first?", Options: []types.QuestionOption{
				{Label: "Herbs and greens", Value: "herbs"},
				{Label: "Vegetables", Value: "vegetables"},
			}},
		},
		Actions: &types.ActionSet{ByHorizon: map[types.Horizon][]string{
			types.HorizonImmediate:  {"Test your soil"},
			types.HorizonShortTerm:  {"Start a compost pile"},
			types.HorizonMediumTerm: {"Plan crop rotation"},
			types.HorizonLongTerm:   {"Build a comprehensive soil program"},
		}},
		Modifiers: map[string]string{
			"home":   "for a home garden",
			"market": "for market-scale growing",
		},
	})

	add("grow vegetables", &types.SemanticEntry{
		Domain: types.DomainAgriculture,
		Vector: []float32{0.6, 0, 0.1, 0.4, 0, 0.7, 0.4, 0.7},
		Actions: &types.ActionSet{Flat: []string{
			"Pick crops suited to your climate",
			"Prepare raised beds",
		}},
	})

	add("stress relief", &types.SemanticEntry{
		Domain:    types.DomainWellness,
		Subdomain: "mental",
		Vector:    []float32{0.2, 0.2, 0.2, 0.2, 0.9, 0.2, 0, 0.4},
		Questions: []types.QuestionStep{
			{Step: "context", Title: "When does stress peak for you?", Options: []types.QuestionOption{
				{Label: "During work hours", Value: "work"},
				{Label: "In the evening", Value: "evening"},
				{Label: "Right now, I need quick relief", Value: "acute"},
			}},
			{Step: "approach", Title: "What helps you unwind?", Options: []types.QuestionOption{
				{Label: "Movement and exercise", Value: "movement"},
				{Label: "Quiet and stillness", Value: "stillness"},
			}},
		},
		Actions: &types.ActionSet{Flat: []string{
			"Practice mindfulness",
			"Take a short walk outside",
			"Connect with support",
		}},
	})

	add("natural remedies", &types.SemanticEntry{
		Domain: types.DomainWellness,
		Vector: []float32{0.1, 0, 0.3, 0.5, 0.6, 0.7, 0.2, 0.1},
	})

	add("renewable energy", &types.SemanticEntry{
		Domain: types.DomainEnvironment,
		Vector: []float32{0.2, 0, 0.2, 0.7, 0, 0.9, 0.5, 0.1},
		Actions: &types.ActionSet{ByHorizon: map[types.Horizon][]string{
			types.HorizonImmediate: {"Audit your energy use"},
			types.HorizonShortTerm: {"Switch to a green energy tariff"},
			types.HorizonLongTerm:  {"Plan a long-term solar installation"},
		}},
	})

	add("reduce waste", &types.SemanticEntry{
		Domain: types.DomainEnvironment,
		Vector: []float32{0.7, 0, 0.1, 0.5, 0, 0.8, 0.3, 0.5},
		Actions: &types.ActionSet{Flat: []string{
			"Start separating recyclables",
			"Switch to reusable containers",
		}},
	})

	add("community project", &types.SemanticEntry{
		Domain: types.DomainCommunity,
		Vector: []float32{0.6, 0, 0.1, 0.5, 0.2, 0.3, 0.1, 0.5},
		Questions: []types.QuestionStep{
			{Step: "context", Title: "What kind of project interests you?", Options: []types.QuestionOption{
				{Label: "Shared garden", Value: "garden"},
				{Label: "Repair cafe", Value: "repair"},
				{Label: "Something starting immediately", Value: "urgent"},
			}},
		},
		Actions: &types.ActionSet{Flat: []string{
			"Find local groups",
			"Attend a community meeting",
		}},
	})

	add("sustainable living", &types.SemanticEntry{
		Domain: types.DomainEnvironment,
		Vector: []float32{0.3, 0.1, 0.2, 0.3, 0.1, 0.8, 0.2, 0.3},
		Actions: &types.ActionSet{Flat: []string{
			"Pick one habit to change this week",
			"Measure your footprint",
		}},
		Modifiers: map[string]string{
			"home": "for everyday household changes",
		},
	})

	add("build software", &types.SemanticEntry{
		Domain: types.DomainTechnology,
		Vector: []float32{0.8, 0, 0.1, 0.6, 0, 0, 0.3, 0},
		Actions: &types.ActionSet{Flat: []string{
			"Start with a simple project",
			"Learn essential tools",
		}},
	})

	return kb
}
