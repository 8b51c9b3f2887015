package types

import (
	"encoding/json"
	"fmt"
)

// Horizon orders staged actions from most to least immediate.
type Horizon string

const (
	HorizonImmediate  Horizon = "immediate"
	HorizonShortTerm  Horizon = "short_term"
	HorizonMediumTerm Horizon = "medium_term"
	HorizonLongTerm   Horizon = "long_term"
)

// Horizons lists action horizons in flattening order.
var Horizons = []Horizon{HorizonImmediate, HorizonShortTerm, HorizonMediumTerm, HorizonLongTerm}

// QuestionOption is one selectable answer within a question step.
type QuestionOption struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// QuestionStep is one step of a contextual question flow.
type QuestionStep struct {
	Step    string           `json:"step"`
	Title   string           `json:"title"`
	Options []QuestionOption `json:"options,omitempty"`
}

// ActionSet holds an entry's recommended actions, which knowledge-base
// documents author either as a flat list or grouped by horizon. Flatten
// always yields a single ordered list.
type ActionSet struct {
	Flat      []string
	ByHorizon map[Horizon][]string
}

// Flatten returns all actions as one ordered list. Horizon-grouped actions
// are emitted immediate first, long_term last.
func (as *ActionSet) Flatten() []string {
	if as == nil {
		return nil
	}
	if len(as.ByHorizon) == 0 {
		return append([]string(nil), as.Flat...)
	}
	var out []string
	out = append(out, as.Flat...)
	for _, h := range Horizons {
		out = append(out, as.ByHorizon[h]...)
	}
	return out
}

// UnmarshalJSON accepts either a JSON array of strings or an object keyed
// by horizon name.
func (as *ActionSet) UnmarshalJSON(data []byte) error {
	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		as.Flat = flat
		as.ByHorizon = nil
		return nil
	}

	var grouped map[Horizon][]string
	if err := json.Unmarshal(data, &grouped); err != nil {
		return fmt.Errorf("actions must be a list or a horizon map: %w", err)
	}
	for h := range grouped {
		switch h {
		case HorizonImmediate, HorizonShortTerm, HorizonMediumTerm, HorizonLongTerm:
		default:
			return fmt.Errorf("%w: unknown horizon %q", ErrMalformedEntry, h)
		}
	}
	as.Flat = nil
	as.ByHorizon = grouped
	return nil
}

// MarshalJSON emits the same shape the entry was authored with.
func (as ActionSet) MarshalJSON() ([]byte, error) {
	if len(as.ByHorizon) > 0 {
		return json.Marshal(as.ByHorizon)
	}
	return json.Marshal(as.Flat)
}

// SemanticEntry is one knowledge-base record. Entries are loaded once and
// are read-only to the engine; every optional field is treated as an empty
// value by consumers, never as a fatal condition.
type SemanticEntry struct {
	Domain    DomainTag         `json:"domain"`
	Subdomain string            `json:"subdomain,omitempty"`
	Vector    []float32         `json:"vector,omitempty"`
	Questions []QuestionStep    `json:"questions,omitempty"`
	Actions   *ActionSet        `json:"actions,omitempty"`
	Modifiers map[string]string `json:"modifiers,omitempty"`
}

// Modifier returns the modifier phrase for the given context key, or ""
// when the entry carries none.
func (e *SemanticEntry) Modifier(key string) string {
	if e == nil || e.Modifiers == nil || key == "" {
		return ""
	}
	return e.Modifiers[key]
}

// Validate checks the entry's domain tag. Missing vector, questions, and
// actions are legal; consumers default them.
func (e *SemanticEntry) Validate() error {
	switch e.Domain {
	case DomainAgriculture, DomainWellness, DomainTechnology,
		DomainEducation, DomainEnvironment, DomainCommunity:
		return nil
	default:
		return fmt.Errorf("%w: unknown domain %q", ErrMalformedEntry, e.Domain)
	}
}
