package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoquery/ecoquery-mcp/internal/kb"
	"github.com/ecoquery/ecoquery-mcp/internal/matcher"
	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(kb.NewStatic(kb.Default()), cfg)
	require.NoError(t, err)
	return e
}

func TestProcessQuery_BlankQueryResolvesToFallback(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	result, err := e.ProcessQuery(context.Background(), "   ", nil)
	require.NoError(t, err)

	require.NotNil(t, result.SemanticMatch)
	assert.Equal(t, types.MatchDomainFallback, result.SemanticMatch.Type)
	assert.Equal(t, "sustainable living", result.SemanticMatch.Term)
	assert.Equal(t, types.IntentGeneralInquiry, result.Analysis.Intent)
	assert.Empty(t, result.Analysis.Tokens)
	assert.InDelta(t, 0.16, result.ConfidenceScore, 1e-9)
	assert.NoError(t, result.Validate())
}

func TestProcessQuery_NotReady(t *testing.T) {
	e, err := New(kb.NewLoader(), DefaultConfig())
	require.NoError(t, err)

	_, err = e.ProcessQuery(context.Background(), "learn gardening", nil)

	assert.ErrorIs(t, err, types.ErrNotReady)
}

func TestProcessQuery_OrganicGardeningScenario(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	result, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)

	require.NotNil(t, result.SemanticMatch)
	assert.Equal(t, "organic farming", result.SemanticMatch.Term)
	assert.Equal(t, "learn organic gardening", result.OriginalQuery)
	assert.Contains(t, result.EnhancedQuery, "learn organic gardening")
	assert.Contains(t, result.EnhancedQuery, "sustainable")
	assert.Equal(t, types.IntentLearning, result.Analysis.Intent)
	assert.NoError(t, result.Validate())
}

func TestProcessQuery_NonsenseFallsBack(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	result, err := e.ProcessQuery(context.Background(), "xyzqwk blorptex", nil)
	require.NoError(t, err)

	require.NotNil(t, result.SemanticMatch)
	assert.Equal(t, types.MatchDomainFallback, result.SemanticMatch.Type)
	assert.Equal(t, "sustainable living", result.SemanticMatch.Term)
	assert.InDelta(t, 0.16, result.ConfidenceScore, 1e-9)
}

func TestProcessQuery_BoundsHold(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	queries := []string{
		"learn organic gardening",
		"I need stress relief now",
		"research renewable energy systems methodology",
		"start a community project",
		"how to reduce waste at home",
	}

	for _, q := range queries {
		result, err := e.ProcessQuery(context.Background(), q, nil)
		require.NoError(t, err, "query %q", q)

		assert.GreaterOrEqual(t, result.SemanticMatch.Score, 0.0, "query %q", q)
		assert.LessOrEqual(t, result.SemanticMatch.Score, 1.0, "query %q", q)
		assert.GreaterOrEqual(t, result.ConfidenceScore, 0.0, "query %q", q)
		assert.LessOrEqual(t, result.ConfidenceScore, 1.0, "query %q", q)
		assert.GreaterOrEqual(t, len(result.RecommendedActions), 3, "query %q", q)
		assert.LessOrEqual(t, len(result.RecommendedActions), 5, "query %q", q)
		assert.NotEmpty(t, result.ContextualQuestions, "query %q", q)
	}
}

func TestProcessQuery_Deterministic(t *testing.T) {
	// Cache disabled, so both calls run the full pipeline.
	e := newTestEngine(t, Config{CacheSize: 0})

	first, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)
	second, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)

	assert.Equal(t, first.SemanticMatch.Term, second.SemanticMatch.Term)
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
	assert.Equal(t, first.EnhancedQuery, second.EnhancedQuery)
	assert.Equal(t, first.RecommendedActions, second.RecommendedActions)
}

func TestProcessQuery_CacheHitStillRecordsSession(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	_, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)
	_, err = e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, e.GetSearchPatterns().TotalSearches)
}

func TestProcessQuery_CachedResultIsIsolated(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	first, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)
	first.RecommendedActions[0] = "tampered"
	first.SemanticMatch.Term = "tampered"
	require.NotEmpty(t, first.ContextualQuestions)
	require.NotEmpty(t, first.ContextualQuestions[0].Options)
	first.ContextualQuestions[0].Options[0].Label = "tampered"

	second, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)

	assert.NotEqual(t, "tampered", second.RecommendedActions[0])
	assert.Equal(t, "organic farming", second.SemanticMatch.Term)
	assert.NotEqual(t, "tampered", second.ContextualQuestions[0].Options[0].Label)
}

func TestProcessQuery_UserContextChangesCacheKey(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	plain, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)

	withCtx, err := e.ProcessQuery(context.Background(), "learn organic gardening", &types.UserContext{
		Answers: map[string]string{"context": "home"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, plain.EnhancedQuery, withCtx.EnhancedQuery)
}

func TestGetSearchPatterns(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	// "stress relief" is an exact term match, so its confidence clears the
	// success threshold; repeats hit the cache but still count.
	for i := 0; i < 2; i++ {
		_, err := e.ProcessQuery(context.Background(), "stress relief", nil)
		require.NoError(t, err)
	}
	_, err := e.ProcessQuery(context.Background(), "renewable energy", nil)
	require.NoError(t, err)
	// Below the success threshold: shapes the average, not the domains.
	_, err = e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)

	patterns := e.GetSearchPatterns()
	assert.Equal(t, 4, patterns.TotalSearches)
	require.Len(t, patterns.PreferredDomains, 2)
	assert.Equal(t, string(types.DomainWellness), patterns.PreferredDomains[0])
	assert.Equal(t, string(types.DomainEnvironment), patterns.PreferredDomains[1])
	assert.Greater(t, patterns.AverageConfidence, 0.0)
}

func TestProcessQuery_CustomWeights(t *testing.T) {
	// An impossible threshold forces every query through the fallback path.
	weights := matcher.DefaultWeights()
	weights.MinScore = 2.0
	e, err := New(kb.NewStatic(kb.Default()), Config{CacheSize: 8, Weights: &weights})
	require.NoError(t, err)

	result, err := e.ProcessQuery(context.Background(), "learn organic gardening", nil)
	require.NoError(t, err)

	assert.Equal(t, types.MatchDomainFallback, result.SemanticMatch.Type)
}

func TestNewFromConfig_SourcesOptional(t *testing.T) {
	e, err := NewFromConfig(Config{CacheSize: 8})
	require.NoError(t, err)
	require.NoError(t, e.Load(context.Background()))

	assert.True(t, e.Ready())
	assert.False(t, e.Degraded())
}
