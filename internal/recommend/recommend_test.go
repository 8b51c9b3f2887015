package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoquery/ecoquery-mcp/internal/kb"
	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

func analysisWith(intent types.Intent, complexity types.Complexity, urgency types.Urgency) *types.QueryAnalysis {
	return &types.QueryAnalysis{
		Intent:        intent,
		Complexity:    complexity,
		EmotionalTone: types.ToneNeutral,
		UrgencyLevel:  urgency,
	}
}

func matchFor(t *testing.T, term string) *types.Match {
	t.Helper()
	entry, ok := kb.Default().Get(term)
	require.True(t, ok, "default knowledge base should contain %q", term)
	return &types.Match{Term: term, Entry: entry, Score: 0.8, Type: types.MatchExact}
}

func TestQuestions_UsesEntryFlow(t *testing.T) {
	g := New()
	match := matchFor(t, "stress relief")

	steps := g.Questions(match, analysisWith(types.IntentWellness, types.ComplexityLow, types.UrgencyLow))

	require.Len(t, steps, 2)
	assert.Equal(t, "context", steps[0].Step)
	assert.Equal(t, "When does stress peak for you?", steps[0].Title)
	assert.Equal(t, "During work hours", steps[0].Options[0].Label)
}

func TestQuestions_GenericTemplateWhenEntryHasNone(t *testing.T) {
	g := New()
	match := matchFor(t, "natural remedies")

	steps := g.Questions(match, analysisWith(types.IntentWellness, types.ComplexityLow, types.UrgencyLow))

	require.Len(t, steps, 3)
	assert.Equal(t, "context", steps[0].Step)
	assert.Equal(t, "approach", steps[1].Step)
	assert.Equal(t, "outcome", steps[2].Step)
	for _, step := range steps {
		assert.NotEmpty(t, step.Options)
	}
}

func TestQuestions_UrgencySurfacesImmediateOptions(t *testing.T) {
	g := New()
	match := matchFor(t, "stress relief")

	steps := g.Questions(match, analysisWith(types.IntentWellness, types.ComplexityLow, types.UrgencyHigh))

	require.Len(t, steps, 2)
	first := steps[0].Options
	require.Len(t, first, 3)
	assert.Equal(t, "Right now, I need quick relief", first[0].Label)
	// Remaining options keep their declared relative order.
	assert.Equal(t, "During work hours", first[1].Label)
	assert.Equal(t, "In the evening", first[2].Label)
}

func TestQuestions_ReturnedOptionsAreIsolated(t *testing.T) {
	g := New()
	match := matchFor(t, "stress relief")

	steps := g.Questions(match, analysisWith(types.IntentWellness, types.ComplexityLow, types.UrgencyLow))

	require.NotEmpty(t, steps)
	require.NotEmpty(t, steps[0].Options)
	steps[0].Options[0].Label = "tampered"

	assert.Equal(t, "During work hours", match.Entry.Questions[0].Options[0].Label)
}

func TestQuestions_UrgencyDoesNotMutateEntry(t *testing.T) {
	g := New()
	match := matchFor(t, "stress relief")

	g.Questions(match, analysisWith(types.IntentWellness, types.ComplexityLow, types.UrgencyHigh))

	assert.Equal(t, "During work hours", match.Entry.Questions[0].Options[0].Label)
}

func TestActions_DeduplicatesEntryAndIntentOverlap(t *testing.T) {
	g := New()
	match := matchFor(t, "stress relief")

	actions := g.Actions(match, analysisWith(types.IntentWellness, types.ComplexityMedium, types.UrgencyLow))

	// Entry and wellness intent both contribute "Practice mindfulness" and
	// "Connect with support"; only the first occurrence survives.
	assert.Equal(t, []string{
		"Practice mindfulness",
		"Take a short walk outside",
		"Connect with support",
	}, actions)
}

func TestActions_FlattensHorizonsImmediateFirst(t *testing.T) {
	g := New()
	match := matchFor(t, "renewable energy")

	actions := g.Actions(match, analysisWith(types.IntentEcologicalAct, types.ComplexityMedium, types.UrgencyLow))

	require.GreaterOrEqual(t, len(actions), 3)
	assert.Equal(t, "Audit your energy use", actions[0])
	assert.Equal(t, "Switch to a green energy tariff", actions[1])
	assert.Equal(t, "Plan a long-term solar installation", actions[2])
}

func TestActions_UrgencyDropsSlowActions(t *testing.T) {
	g := New()
	match := matchFor(t, "renewable energy")

	actions := g.Actions(match, analysisWith(types.IntentEcologicalAct, types.ComplexityMedium, types.UrgencyHigh))

	for _, action := range actions {
		assert.NotContains(t, action, "long-term")
		assert.NotContains(t, action, "comprehensive")
	}
	assert.Contains(t, actions, "Audit your energy use")
}

func TestActions_OutcomePrefixesEntries(t *testing.T) {
	g := New()
	match := matchFor(t, "reduce waste")
	analysis := analysisWith(types.IntentEcologicalAct, types.ComplexityMedium, types.UrgencyLow)
	analysis.UserContext = &types.UserContext{Answers: map[string]string{"outcome": "practical"}}

	actions := g.Actions(match, analysis)

	require.NotEmpty(t, actions)
	for _, action := range actions {
		assert.True(t, len(action) > len(outcomeModifier) && action[:len(outcomeModifier)] == outcomeModifier,
			"action %q should carry the outcome modifier", action)
	}
}

func TestActions_PadsToMinimum(t *testing.T) {
	g := New()

	actions := g.Actions(nil, analysisWith(types.IntentGeneralInquiry, types.ComplexityMedium, types.UrgencyLow))

	assert.Len(t, actions, minActions)
	assert.Equal(t, "Explore related topics", actions[0])
}

func TestActions_CapsAtMaximum(t *testing.T) {
	g := New()
	match := &types.Match{
		Term: "everything at once",
		Entry: &types.SemanticEntry{
			Domain: types.DomainEducation,
			Actions: &types.ActionSet{Flat: []string{
				"First task", "Second task", "Third task", "Fourth task", "Fifth task", "Sixth task",
			}},
		},
		Score: 0.9,
		Type:  types.MatchExact,
	}

	actions := g.Actions(match, analysisWith(types.IntentLearning, types.ComplexityHigh, types.UrgencyLow))

	assert.Len(t, actions, maxActions)
	assert.Equal(t, "First task", actions[0])
}
