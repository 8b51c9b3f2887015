package types

// WordType classifies a token into one of the engine's semantic categories.
// Classification is first-match against the static lexicons, so a word has
// exactly one type.
type WordType string

const (
	WordVerb       WordType = "verb"
	WordAdverb     WordType = "adverb"
	WordAdjective  WordType = "adjective"
	WordNoun       WordType = "noun"
	WordEmotional  WordType = "emotional"
	WordEcological WordType = "ecological"
	WordObject     WordType = "object"
	WordActivity   WordType = "activity"
	WordOther      WordType = "other"
)

// DefaultWordWeight is assigned to words absent from the importance table.
const DefaultWordWeight = 0.5

// Token is a classified unit of input text. Tokens are immutable once
// produced by the tokenizer.
type Token struct {
	Word   string   `json:"word"`
	Stem   string   `json:"stem"`
	Type   WordType `json:"type"`
	Weight float64  `json:"weight"`
}

// ValidateWordType checks if the word type is one of the known categories.
func (t *Token) ValidateWordType() error {
	switch t.Type {
	case WordVerb, WordAdverb, WordAdjective, WordNoun, WordEmotional,
		WordEcological, WordObject, WordActivity, WordOther:
		return nil
	default:
		return ErrInvalidWordType
	}
}

// Validate performs comprehensive validation of the token.
func (t *Token) Validate() error {
	if t.Word == "" {
		return ErrEmptyWord
	}
	if t.Stem == "" {
		return ErrEmptyStem
	}
	if t.Weight < 0 {
		return ErrNegativeWeight
	}
	return t.ValidateWordType()
}
