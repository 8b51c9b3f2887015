package engine

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ecoquery/ecoquery-mcp/internal/analyzer"
	"github.com/ecoquery/ecoquery-mcp/internal/enhancer"
	"github.com/ecoquery/ecoquery-mcp/internal/kb"
	"github.com/ecoquery/ecoquery-mcp/internal/matcher"
	"github.com/ecoquery/ecoquery-mcp/internal/recommend"
	"github.com/ecoquery/ecoquery-mcp/internal/session"
	"github.com/ecoquery/ecoquery-mcp/internal/tokenizer"
	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// Engine composes the full query pipeline: analysis, matching, confidence,
// enhancement, recommendations, and session tracking. Results for repeated
// queries are served from a bounded LRU cache.
type Engine struct {
	analyzer  *analyzer.Analyzer
	selector  *matcher.Selector
	enhancer  *enhancer.Enhancer
	generator *recommend.Generator
	tracker   *session.Tracker
	loader    *kb.Loader
	cache     *lru.Cache[[32]byte, *types.SearchResult]
}

// New creates an engine around the given knowledge-base loader. The caller
// remains responsible for driving loader.Load.
func New(loader *kb.Loader, cfg Config) (*Engine, error) {
	tok := tokenizer.New()
	weights := cfg.weights()
	e := &Engine{
		analyzer:  analyzer.New(tok),
		selector:  matcher.NewSelector(matcher.NewScorer(weights, tok), weights),
		enhancer:  enhancer.New(),
		generator: recommend.New(),
		tracker:   session.NewTracker(),
		loader:    loader,
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[[32]byte, *types.SearchResult](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
		e.cache = cache
	}

	return e, nil
}

// NewFromEnv builds an engine whose knowledge-base sources come from the
// ECOQUERY_* environment variables. The loader still needs Load called on
// it; use Load on the returned engine.
func NewFromEnv() (*Engine, error) {
	return NewFromConfig(FromEnv())
}

// NewFromConfig builds an engine and its loader from an explicit config.
func NewFromConfig(cfg Config) (*Engine, error) {
	var sources []kb.Source
	if cfg.KBPath != "" {
		sources = append(sources, kb.NewJSONSource(cfg.KBPath))
	}
	if cfg.KBDSN != "" {
		sources = append(sources, kb.NewSQLiteSource(cfg.KBDSN))
	}
	return New(kb.NewLoader(sources...), cfg)
}

// Load drives the underlying knowledge-base loader. It is safe to call
// once at startup; a source failure leaves the engine serving the built-in
// knowledge base in degraded mode.
func (e *Engine) Load(ctx context.Context) error {
	return e.loader.Load(ctx)
}

// Ready reports whether the knowledge base has finished loading.
func (e *Engine) Ready() bool {
	return e.loader.Ready()
}

// Degraded reports whether the engine fell back to the built-in knowledge
// base after a source failure.
func (e *Engine) Degraded() bool {
	return e.loader.Degraded()
}

// ProcessQuery runs the full pipeline for one query. The same query and
// user context always produce the same result; recording the search in the
// session is the only side effect, and it happens on cache hits too.
//
// Degenerate input is not an error: a blank query yields an empty-token
// analysis, which resolves to the general-inquiry fallback match.
func (e *Engine) ProcessQuery(ctx context.Context, query string, userCtx *types.UserContext) (*types.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(query)
	if !e.loader.Ready() {
		return nil, types.ErrNotReady
	}

	key := queryHash(trimmed, userCtx)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.tracker.Record(trimmed, cached.SemanticMatch, cached.ConfidenceScore)
			return copyResult(cached), nil
		}
	}

	analysis := e.analyzer.Analyze(trimmed, userCtx)
	match := e.selector.Select(trimmed, analysis, e.loader.KnowledgeBase())
	confidence := matcher.Confidence(match, analysis)

	result := &types.SearchResult{
		OriginalQuery:       trimmed,
		SemanticMatch:       match,
		ConfidenceScore:     confidence,
		EnhancedQuery:       e.enhancer.Enhance(trimmed, match, analysis),
		ContextualQuestions: e.generator.Questions(match, analysis),
		RecommendedActions:  e.generator.Actions(match, analysis),
		Analysis:            analysis,
	}

	if e.cache != nil {
		e.cache.Add(key, copyResult(result))
	}
	e.tracker.Record(trimmed, match, confidence)

	return result, nil
}

// KnowledgeBaseSize returns the number of loaded entries, or zero while
// loading.
func (e *Engine) KnowledgeBaseSize() int {
	if loaded := e.loader.KnowledgeBase(); loaded != nil {
		return loaded.Len()
	}
	return 0
}

// GetSearchPatterns summarizes the session history.
func (e *Engine) GetSearchPatterns() *types.SearchPatterns {
	return e.tracker.Patterns()
}

// Session exposes the session tracker, mainly for status reporting.
func (e *Engine) Session() *session.Tracker {
	return e.tracker
}

// queryHash builds a deterministic cache key over the query and the user
// context. Map keys are sorted so equal contexts hash equally.
func queryHash(query string, userCtx *types.UserContext) [32]byte {
	var data strings.Builder
	data.WriteString(query)
	if userCtx != nil {
		data.WriteString("|answers:")
		writeSortedMap(&data, userCtx.Answers)
		data.WriteString("|preferences:")
		writeSortedMap(&data, userCtx.Preferences)
	}
	return sha256.Sum256([]byte(data.String()))
}

func writeSortedMap(data *strings.Builder, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		data.WriteString(k)
		data.WriteString("=")
		data.WriteString(m[k])
		data.WriteString(",")
	}
}

// copyResult returns a deep enough copy that callers mutating a result
// cannot corrupt the cached one. Knowledge-base entries are immutable and
// stay shared.
func copyResult(src *types.SearchResult) *types.SearchResult {
	dst := *src

	if src.SemanticMatch != nil {
		matchCopy := *src.SemanticMatch
		dst.SemanticMatch = &matchCopy
	}
	if src.Analysis != nil {
		analysisCopy := *src.Analysis
		analysisCopy.Tokens = append([]types.Token(nil), src.Analysis.Tokens...)
		analysisCopy.DomainHints = append([]types.DomainTag(nil), src.Analysis.DomainHints...)
		dst.Analysis = &analysisCopy
	}
	dst.ContextualQuestions = copyQuestionSteps(src.ContextualQuestions)
	dst.RecommendedActions = append([]string(nil), src.RecommendedActions...)

	return &dst
}

// copyQuestionSteps copies steps including their option slices, so neither
// side can reach the other's backing arrays.
func copyQuestionSteps(steps []types.QuestionStep) []types.QuestionStep {
	out := make([]types.QuestionStep, len(steps))
	copy(out, steps)
	for i := range out {
		out[i].Options = append([]types.QuestionOption(nil), out[i].Options...)
	}
	return out
}
