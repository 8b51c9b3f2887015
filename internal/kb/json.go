package kb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// JSONSource loads a knowledge-base document from a JSON file. The
// document is an object with an "entries" array; array order becomes the
// knowledge base's declared order.
//
//	{
//	  "entries": [
//	    {
//	      "term": "organic farming",
//	      "domain": "AGRICULTURE",
//	      "vector": [0.2, 0, 0.1, 0.3, 0, 0.9, 0.3, 0.8],
//	      "actions": {"immediate": ["Test your soil"]},
//	      "modifiers": {"home": "for a home garden"}
//	    }
//	  ]
//	}
type JSONSource struct {
	Path string
}

// NewJSONSource creates a source reading from path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{Path: path}
}

// Name identifies the source in error messages.
func (s *JSONSource) Name() string {
	return fmt.Sprintf("json:%s", s.Path)
}

type jsonEntry struct {
	Term string `json:"term"`
	types.SemanticEntry
}

type jsonDocument struct {
	Entries []jsonEntry `json:"entries"`
}

// Load parses the document. Entries with malformed fields fail the whole
// load; the loader then degrades to the default knowledge base.
func (s *JSONSource) Load(ctx context.Context) (*KnowledgeBase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	kb := New()
	for i := range doc.Entries {
		entry := doc.Entries[i].SemanticEntry
		if err := kb.Add(doc.Entries[i].Term, &entry); err != nil {
			return nil, err
		}
	}
	return kb, nil
}
