package tokenizer

import "github.com/ecoquery/ecoquery-mcp/pkg/types"

// Static lexicons for word classification. Order matters: classification is
// first-match, checked verb > adverb > adjective > noun > emotional >
// ecological > object > activity. A word listed under two types keeps the
// higher-priority one.
var lexicons = []struct {
	wordType types.WordType
	words    []string
}{
	{types.WordVerb, []string{
		"learn", "study", "build", "create", "make", "do", "find", "get",
		"use", "work", "help", "need", "want", "grow", "reduce", "start",
		"teach", "improve", "fix", "plant", "save",
	}},
	{types.WordAdverb, []string{
		"quickly", "easily", "slowly", "well", "fast", "now", "today", "soon",
	}},
	{types.WordAdjective, []string{
		"best", "good", "bad", "easy", "hard", "simple", "complex", "free",
		"paid", "new", "old", "healthy", "local", "cheap",
	}},
	{types.WordNoun, []string{
		"course", "tutorial", "guide", "book", "video", "tool", "software",
		"app", "website", "resource", "energy", "water", "food", "waste",
	}},
	{types.WordEmotional, []string{
		"mad", "angry", "sad", "happy", "bored", "tired", "stressed",
		"stress", "anxious", "anxiety", "excited", "worried",
		"overwhelmed", "calm",
	}},
	{types.WordEcological, []string{
		"sustainable", "eco", "green", "organic", "natural", "renewable",
		"environment", "climate", "biodegradable",
	}},
	{types.WordObject, []string{
		"compost", "bin", "seed", "panel", "battery", "turbine", "mulch",
		"solar",
	}},
	{types.WordActivity, []string{
		"garden", "farm", "cook", "recycle", "hike", "bike", "meditate",
		"volunteer",
	}},
}

// Importance weights for known words. Words absent here get
// types.DefaultWordWeight.
var wordWeights = map[string]float64{
	"learn":       0.9,
	"study":       0.8,
	"build":       0.85,
	"create":      0.85,
	"teach":       0.75,
	"grow":        0.75,
	"reduce":      0.7,
	"help":        0.6,
	"need":        0.6,
	"want":        0.6,
	"find":        0.65,
	"sustainable": 0.95,
	"organic":     0.9,
	"renewable":   0.9,
	"environment": 0.9,
	"climate":     0.85,
	"green":       0.75,
	"natural":     0.8,
	"eco":         0.8,
	"garden":      0.7,
	"farm":        0.7,
	"recycle":     0.8,
	"compost":     0.75,
	"meditate":    0.8,
	"stressed":    0.85,
	"stress":      0.85,
	"anxious":     0.8,
	"anxiety":     0.8,
	"tutorial":    0.65,
	"course":      0.6,
	"guide":       0.6,
	"energy":      0.7,
	"solar":       0.75,
	"waste":       0.7,
}

// Normalization lookup applied before classification. Maps common inflected
// forms to their base word.
var normalizations = map[string]string{
	"learning":     "learn",
	"studying":     "study",
	"building":     "build",
	"creating":     "create",
	"making":       "make",
	"doing":        "do",
	"finding":      "find",
	"getting":      "get",
	"using":        "use",
	"working":      "work",
	"helping":      "help",
	"growing":      "grow",
	"reducing":     "reduce",
	"starting":     "start",
	"teaching":     "teach",
	"farming":      "farm",
	"gardening":    "garden",
	"cooking":      "cook",
	"recycling":    "recycle",
	"composting":   "compost",
	"meditating":   "meditate",
	"volunteering": "volunteer",
	"planting":     "plant",
	"saving":       "save",
	"hiking":       "hike",
	"biking":       "bike",
}

// Irregular stems the suffix trim cannot produce.
var irregularStems = map[string]string{
	"taught": "teach",
	"made":   "make",
	"grew":   "grow",
	"found":  "find",
	"got":    "get",
	"did":    "do",
	"built":  "build",
}
