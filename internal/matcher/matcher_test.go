package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoquery/ecoquery-mcp/internal/analyzer"
	"github.com/ecoquery/ecoquery-mcp/internal/tokenizer"
	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// fakeSource is an ordered in-memory EntrySource for tests.
type fakeSource struct {
	terms   []string
	entries map[string]*types.SemanticEntry
}

func newFakeSource() *fakeSource {
	return &fakeSource{entries: make(map[string]*types.SemanticEntry)}
}

func (f *fakeSource) add(term string, entry *types.SemanticEntry) *fakeSource {
	f.terms = append(f.terms, term)
	f.entries[term] = entry
	return f
}

func (f *fakeSource) Terms() []string { return f.terms }
func (f *fakeSource) Len() int        { return len(f.terms) }

func (f *fakeSource) Get(term string) (*types.SemanticEntry, bool) {
	e, ok := f.entries[term]
	return e, ok
}

func setupMatcher(t *testing.T) (*Scorer, *Selector, *analyzer.Analyzer) {
	t.Helper()
	tok := tokenizer.New()
	weights := DefaultWeights()
	scorer := NewScorer(weights, tok)
	return scorer, NewSelector(scorer, weights), analyzer.New(tok)
}

func TestScore_ExactOverlapMonotonicity(t *testing.T) {
	scorer, _, an := setupMatcher(t)

	entry := &types.SemanticEntry{Domain: types.DomainAgriculture}

	// adding an exact word overlap strictly increases the score
	without := scorer.Score("organic farming", entry, an.Analyze("compost bins", nil))
	with := scorer.Score("organic farming", entry, an.Analyze("organic compost bins", nil))
	assert.Greater(t, with, without)
}

func TestScore_PartialNotDoubleCounted(t *testing.T) {
	scorer, _, an := setupMatcher(t)

	entry := &types.SemanticEntry{Domain: types.DomainTechnology}
	weights := DefaultWeights()

	// identical single-word pairs count once, as exact
	analysis := an.Analyze("compost", nil)
	score := scorer.Score("compost", entry, analysis)
	assert.LessOrEqual(t, score, weights.ExactWord+weights.DomainIntent+weights.DomainHint+weights.VectorSim)
	assert.GreaterOrEqual(t, score, weights.ExactWord)
}

func TestScore_ClampedToOne(t *testing.T) {
	scorer, _, an := setupMatcher(t)

	entry := &types.SemanticEntry{
		Domain: types.DomainAgriculture,
		Vector: []float32{0, 0, 0, 0, 0, 0.9, 0, 0.7},
	}

	analysis := an.Analyze("organic garden organic garden organic garden", nil)
	score := scorer.Score("organic garden", entry, analysis)
	assert.LessOrEqual(t, score, 1.0)
	assert.GreaterOrEqual(t, score, 0.0)
}

func TestScore_MismatchedVectorIgnored(t *testing.T) {
	scorer, _, an := setupMatcher(t)

	short := &types.SemanticEntry{Domain: types.DomainWellness, Vector: []float32{0.5, 0.5}}
	full := &types.SemanticEntry{Domain: types.DomainWellness}

	analysis := an.Analyze("meditation for stress", nil)
	// a wrong-length vector scores the same as no vector at all
	assert.InDelta(t, scorer.Score("stress relief", full, analysis),
		scorer.Score("stress relief", short, analysis), 1e-9)
}

func TestSelect_PrefersLexicalOverlap(t *testing.T) {
	_, selector, an := setupMatcher(t)

	kb := newFakeSource().
		add("organic farming", &types.SemanticEntry{
			Domain: types.DomainAgriculture,
			Vector: []float32{0.1, 0, 0.1, 0.1, 0, 0.9, 0.2, 0.8},
		}).
		add("learn programming", &types.SemanticEntry{
			Domain: types.DomainTechnology,
			Vector: []float32{0.8, 0, 0.1, 0.5, 0, 0, 0.3, 0},
		})

	analysis := an.Analyze("learn organic gardening", nil)
	match := selector.Select("learn organic gardening", analysis, kb)

	require.NotNil(t, match)
	assert.Equal(t, "organic farming", match.Term)
	assert.Contains(t, []types.MatchType{types.MatchPartial, types.MatchSemantic}, match.Type)
	assert.NoError(t, match.Validate())
}

func TestSelect_TieKeepsDeclaredOrder(t *testing.T) {
	_, selector, an := setupMatcher(t)

	first := &types.SemanticEntry{Domain: types.DomainEnvironment}
	second := &types.SemanticEntry{Domain: types.DomainEnvironment}
	kb := newFakeSource().
		add("renewable energy", first).
		add("renewable power", second)

	analysis := an.Analyze("renewable options", nil)
	match := selector.Select("renewable options", analysis, kb)
	assert.Equal(t, "renewable energy", match.Term)
	assert.Same(t, first, match.Entry)
}

func TestSelect_ExactMatchType(t *testing.T) {
	_, selector, an := setupMatcher(t)

	kb := newFakeSource().add("organic farming", &types.SemanticEntry{
		Domain: types.DomainAgriculture,
	})

	analysis := an.Analyze("organic farming", nil)
	match := selector.Select("organic farming", analysis, kb)
	assert.Equal(t, types.MatchExact, match.Type)
}

func TestSelect_FallbackBelowThreshold(t *testing.T) {
	_, selector, an := setupMatcher(t)

	kb := newFakeSource().add("quantum computing", &types.SemanticEntry{
		Domain: types.DomainTechnology,
	})

	analysis := an.Analyze("pottery glazing", nil)
	match := selector.Select("pottery glazing", analysis, kb)

	require.NotNil(t, match)
	assert.Equal(t, types.MatchDomainFallback, match.Type)
	assert.InDelta(t, DefaultWeights().FallbackScore, match.Score, 1e-9)
	assert.NotNil(t, match.Entry)
}

func TestSelect_EmptyKnowledgeBase(t *testing.T) {
	_, selector, an := setupMatcher(t)

	analysis := an.Analyze("anything at all", nil)
	match := selector.Select("anything at all", analysis, newFakeSource())

	require.NotNil(t, match)
	assert.Equal(t, types.MatchDomainFallback, match.Type)
	assert.NotNil(t, match.Entry)
	assert.NoError(t, match.Validate())
}

func TestSelect_FallbackUsesIntentMapping(t *testing.T) {
	tok := tokenizer.New()
	weights := DefaultWeights()
	weights.MinScore = 0.3 // raise the bar so weak alignment falls through
	selector := NewSelector(NewScorer(weights, tok), weights)
	an := analyzer.New(tok)

	wellness := &types.SemanticEntry{Domain: types.DomainWellness}
	kb := newFakeSource().add("stress relief", wellness)

	analysis := an.Analyze("feeling overwhelmed", nil)
	require.Equal(t, types.IntentWellness, analysis.Intent)

	match := selector.Select("feeling overwhelmed", analysis, kb)
	require.Equal(t, types.MatchDomainFallback, match.Type)
	assert.Equal(t, "stress relief", match.Term)
	assert.Same(t, wellness, match.Entry)
	assert.InDelta(t, weights.FallbackScore, match.Score, 1e-9)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name     string
		match    *types.Match
		analysis *types.QueryAnalysis
		want     float64
	}{
		{
			"plain semantic match",
			&types.Match{Score: 0.5, Type: types.MatchSemantic},
			&types.QueryAnalysis{Complexity: types.ComplexityMedium},
			0.5,
		},
		{
			"exact boost",
			&types.Match{Score: 0.5, Type: types.MatchExact},
			&types.QueryAnalysis{Complexity: types.ComplexityLow},
			0.7,
		},
		{
			"high complexity boost",
			&types.Match{Score: 0.7, Type: types.MatchSemantic},
			&types.QueryAnalysis{Complexity: types.ComplexityHigh},
			0.8,
		},
		{
			"fallback penalty",
			&types.Match{Score: 0.2, Type: types.MatchDomainFallback},
			&types.QueryAnalysis{Complexity: types.ComplexityLow},
			0.16,
		},
		{
			"clamped at one",
			&types.Match{Score: 0.95, Type: types.MatchExact},
			&types.QueryAnalysis{Complexity: types.ComplexityHigh},
			1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Confidence(tt.match, tt.analysis), 1e-9)
		})
	}
}

func TestConfidence_AlwaysInRange(t *testing.T) {
	for _, score := range []float64{0, 0.1, 0.5, 0.9, 1.0} {
		for _, mt := range []types.MatchType{
			types.MatchExact, types.MatchPartial, types.MatchSemantic, types.MatchDomainFallback,
		} {
			c := Confidence(
				&types.Match{Score: score, Type: mt},
				&types.QueryAnalysis{Complexity: types.ComplexityHigh},
			)
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
	}
}
