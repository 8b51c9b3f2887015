package kb

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// State is the loader's lifecycle state. The lifecycle is strictly
// Loading -> Ready; a failed load still ends Ready, holding the default
// knowledge base.
type State int

const (
	StateLoading State = iota
	StateReady
)

// Source supplies one knowledge-base document. Implementations must be
// safe to call once; the loader does not retry.
type Source interface {
	// Name identifies the source in error messages.
	Name() string
	// Load parses the source into a knowledge base.
	Load(ctx context.Context) (*KnowledgeBase, error)
}

// Loader owns the knowledge base's load lifecycle. The engine checks
// Ready before scoring; queries arriving before the load completes are
// rejected with a distinct not-ready condition rather than stalling.
type Loader struct {
	mu       sync.RWMutex
	state    State
	kb       *KnowledgeBase
	degraded bool
	sources  []Source
}

// NewLoader creates a loader in the Loading state. With no sources, Load
// resolves immediately to the built-in default knowledge base.
func NewLoader(sources ...Source) *Loader {
	return &Loader{state: StateLoading, sources: sources}
}

// NewStatic returns a loader that is immediately Ready over the given
// knowledge base. A nil knowledge base resolves to the default.
func NewStatic(kb *KnowledgeBase) *Loader {
	if kb == nil {
		kb = Default()
	}
	return &Loader{state: StateReady, kb: kb}
}

// Load runs every source concurrently, merges the results in declared
// source order, and transitions to Ready exactly once. Any source failure
// degrades to the default knowledge base; the error is returned for
// logging but the loader is still Ready afterwards.
func (l *Loader) Load(ctx context.Context) error {
	if len(l.sources) == 0 {
		l.become(Default(), false)
		return nil
	}

	results := make([]*KnowledgeBase, len(l.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range l.sources {
		g.Go(func() error {
			loaded, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			results[i] = loaded
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.become(Default(), true)
		return err
	}

	merged := New()
	for _, result := range results {
		merged.Merge(result)
	}
	if merged.Len() == 0 {
		l.become(Default(), true)
		return fmt.Errorf("all sources empty, using default knowledge base")
	}

	l.become(merged, false)
	return nil
}

// become transitions to Ready with the given knowledge base. The swap
// happens once; later calls are ignored.
func (l *Loader) become(kb *KnowledgeBase, degraded bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateReady {
		return
	}
	l.state = StateReady
	l.kb = kb
	l.degraded = degraded
}

// Ready reports whether the knowledge base is available.
func (l *Loader) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateReady
}

// Degraded reports whether the loader fell back to the default knowledge
// base after a failed load.
func (l *Loader) Degraded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.degraded
}

// KnowledgeBase returns the ready knowledge base, or nil while loading.
func (l *Loader) KnowledgeBase() *KnowledgeBase {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.kb
}
