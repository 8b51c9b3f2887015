// Package types provides shared type definitions for the EcoQuery MCP server.
//
// This package defines the domain types used across the engine's components:
// tokens, query analyses, knowledge-base entries, matches, search results,
// and session records.
//
// # Core Types
//
// Token represents one classified word of a query:
//
//	tok := types.Token{
//	    Word:   "learning",
//	    Stem:   "learn",
//	    Type:   types.WordVerb,
//	    Weight: 0.9,
//	}
//
// SemanticEntry is one knowledge-base record. Entries are read-only shared
// data; optional fields (vector, questions, actions, modifiers) default to
// empty values in every consumer:
//
//	entry := &types.SemanticEntry{
//	    Domain: types.DomainAgriculture,
//	    Vector: []float32{0, 0, 0, 0, 0, 0.9, 0, 0.7},
//	}
//
// Match combines the selected entry with its score and classification, and
// SearchResult is the composite outcome of one processed query.
//
// # Invariants
//
// Match scores and confidence scores are always clamped to [0, 1], and the
// Validate methods enforce that range:
//
//	if err := result.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Session history is bounded (50 records, FIFO eviction) and owned by the
// session tracker; the types here are plain data.
package types
