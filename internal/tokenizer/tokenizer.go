package tokenizer

import (
	"strings"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// minWordLength is the shortest word the tokenizer keeps. Shorter words
// carry no classification signal and are discarded.
const minWordLength = 3

// Tokenizer splits raw queries into classified tokens. The classification
// tables are precomputed once at construction; a Tokenizer is safe for
// concurrent use after that.
type Tokenizer struct {
	wordTypes map[string]types.WordType
	weights   map[string]float64
	normal    map[string]string
	irregular map[string]string
}

// New creates a Tokenizer with the precomputed word-type lookup built from
// the static lexicons.
func New() *Tokenizer {
	wordTypes := make(map[string]types.WordType)
	for _, lex := range lexicons {
		for _, w := range lex.words {
			// First match wins: a word already claimed by a
			// higher-priority lexicon keeps its type.
			if _, exists := wordTypes[w]; !exists {
				wordTypes[w] = lex.wordType
			}
		}
	}

	return &Tokenizer{
		wordTypes: wordTypes,
		weights:   wordWeights,
		normal:    normalizations,
		irregular: irregularStems,
	}
}

// Tokenize splits and classifies raw input. Output is order-preserving and
// keeps duplicates. Empty input yields an empty slice, never an error.
func (t *Tokenizer) Tokenize(input string) []types.Token {
	fields := strings.Fields(strings.ToLower(input))
	tokens := make([]types.Token, 0, len(fields))

	for _, word := range fields {
		if len(word) < minWordLength {
			continue
		}
		normalized := t.Normalize(word)
		wordType, weight := t.Classify(normalized)
		stem := t.Stem(normalized)
		tokens = append(tokens, types.Token{
			Word:   word,
			Stem:   stem,
			Type:   wordType,
			Weight: weight,
		})
	}

	return tokens
}

// Normalize maps an inflected form to its base word. Unknown words pass
// through unchanged.
func (t *Tokenizer) Normalize(word string) string {
	if base, ok := t.normal[word]; ok {
		return base
	}
	return word
}

// Stem reduces a normalized word to its stem: irregular lookup first, then
// a plain suffix trim ("ing", "ed", "s") as last resort. The trim never
// shortens a word below the minimum token length.
func (t *Tokenizer) Stem(word string) string {
	if stem, ok := t.irregular[word]; ok {
		return stem
	}

	for _, suffix := range []string{"ing", "ed", "s"} {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		if suffix == "s" && strings.HasSuffix(word, "ss") {
			continue
		}
		trimmed := word[:len(word)-len(suffix)]
		if len(trimmed) >= minWordLength {
			return trimmed
		}
	}

	return word
}

// Classify resolves a normalized word to its semantic type and importance
// weight. Words outside every lexicon are typed "other"; words outside the
// importance table weigh types.DefaultWordWeight.
func (t *Tokenizer) Classify(word string) (types.WordType, float64) {
	wordType, ok := t.wordTypes[word]
	if !ok {
		wordType = types.WordOther
	}

	weight, ok := t.weights[word]
	if !ok {
		weight = types.DefaultWordWeight
	}

	return wordType, weight
}
