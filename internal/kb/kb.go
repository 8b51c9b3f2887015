package kb

import (
	"fmt"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// KnowledgeBase is an ordered, read-only mapping from term to semantic
// entry. Iteration via Terms preserves the declared order of the source
// document, which match selection depends on for tie-breaking.
type KnowledgeBase struct {
	terms   []string
	entries map[string]*types.SemanticEntry
}

// New creates an empty knowledge base.
func New() *KnowledgeBase {
	return &KnowledgeBase{
		entries: make(map[string]*types.SemanticEntry),
	}
}

// Add appends an entry under term. Duplicate terms keep the first entry,
// so merged sources preserve declared precedence.
func (kb *KnowledgeBase) Add(term string, entry *types.SemanticEntry) error {
	if term == "" {
		return fmt.Errorf("%w: empty term", types.ErrMalformedEntry)
	}
	if entry == nil {
		return fmt.Errorf("%w: nil entry for %q", types.ErrMalformedEntry, term)
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("entry %q: %w", term, err)
	}

	if _, exists := kb.entries[term]; exists {
		return nil
	}
	kb.terms = append(kb.terms, term)
	kb.entries[term] = entry
	return nil
}

// Get returns the entry for term, if present.
func (kb *KnowledgeBase) Get(term string) (*types.SemanticEntry, bool) {
	e, ok := kb.entries[term]
	return e, ok
}

// Terms returns all terms in declared order. Callers must not modify the
// returned slice.
func (kb *KnowledgeBase) Terms() []string {
	return kb.terms
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int {
	return len(kb.terms)
}

// Merge appends every entry of other, keeping existing terms on conflict.
func (kb *KnowledgeBase) Merge(other *KnowledgeBase) {
	if other == nil {
		return
	}
	for _, term := range other.terms {
		// entries already validated on the way in
		_ = kb.Add(term, other.entries[term])
	}
}
