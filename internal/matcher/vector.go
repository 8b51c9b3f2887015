package matcher

import (
	"math"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// VectorDimension is the fixed length of knowledge-base entry vectors and
// synthesized query vectors: one slot per signal-bearing word type. Tokens
// typed "other" carry no vector signal.
const VectorDimension = 8

// typeSlot maps a word type to its accumulator index.
var typeSlot = map[types.WordType]int{
	types.WordVerb:       0,
	types.WordAdverb:     1,
	types.WordAdjective:  2,
	types.WordNoun:       3,
	types.WordEmotional:  4,
	types.WordEcological: 5,
	types.WordObject:     6,
	types.WordActivity:   7,
}

// QueryVector synthesizes a fixed-length vector from classified tokens.
// Each token adds its weight to the slot for its type; the result is
// L2-normalized. A query with no signal-bearing tokens yields the zero
// vector, which every similarity comparison treats as similarity 0.
func QueryVector(tokens []types.Token) []float32 {
	vec := make([]float32, VectorDimension)
	for _, tok := range tokens {
		slot, ok := typeSlot[tok.Type]
		if !ok {
			continue
		}
		vec[slot] += float32(tok.Weight)
	}
	return normalize(vec)
}

// normalize scales the vector to unit length. The zero vector is returned
// unchanged rather than dividing by zero.
func normalize(vec []float32) []float32 {
	var sumSquares float64
	for _, v := range vec {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vec
	}
	norm := math.Sqrt(sumSquares)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}

// CosineSimilarity computes the cosine similarity between two vectors.
// Mismatched dimensions and zero vectors yield 0, never an error.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
