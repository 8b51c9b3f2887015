// Package recommend produces contextual question sets and personalized
// action lists for a selected match.
package recommend

import (
	"strings"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// Action list bounds: pad with generic fillers up to the minimum, then
// truncate at the cap.
const (
	minActions = 3
	maxActions = 5
)

// outcomeModifier prefixes every action when the user supplied an
// outcome answer.
const outcomeModifier = "Toward your goal:"

// Answer key consulted for the outcome modifier.
const outcomeAnswerKey = "outcome"

// Labels containing any of these mark an option as immediate, for urgency
// reordering.
var immediacyMarkers = []string{"now", "today", "immediate", "quick", "start"}

// Urgent queries drop actions containing these.
var slowActionMarkers = []string{"long-term", "comprehensive"}

// intentActions are appended after the entry's own actions.
var intentActions = map[types.Intent][]string{
	types.IntentLearning:      {"Find beginner resources", "Join a learning community"},
	types.IntentResearch:      {"Review recent studies", "Compare approaches"},
	types.IntentAction:        {"Start with a simple project", "Learn essential tools"},
	types.IntentWellness:      {"Practice mindfulness", "Connect with support"},
	types.IntentEcologicalAct: {"Explore sustainable alternatives", "Join an eco-community"},
}

// complexityActions follow the intent actions.
var complexityActions = map[types.Complexity][]string{
	types.ComplexityLow:  {"Review the basics first"},
	types.ComplexityHigh: {"Consult expert sources"},
}

// fillerActions pad short lists to the minimum.
var fillerActions = []string{
	"Explore related topics",
	"Save useful resources",
	"Revisit your goals next week",
}

// genericQuestions is substituted when the matched entry authored none.
var genericQuestions = []types.QuestionStep{
	{Step: "context", Title: "What's your current situation?", Options: []types.QuestionOption{
		{Label: "Just getting started", Value: "beginner"},
		{Label: "Some experience", Value: "intermediate"},
		{Label: "Looking to go deeper", Value: "advanced"},
	}},
	{Step: "approach", Title: "How do you prefer to proceed?", Options: []types.QuestionOption{
		{Label: "Step-by-step guidance", Value: "guided"},
		{Label: "Explore on my own", Value: "independent"},
	}},
	{Step: "outcome", Title: "What outcome matters most?", Options: []types.QuestionOption{
		{Label: "Quick practical results", Value: "practical"},
		{Label: "Deep understanding", Value: "understanding"},
	}},
}

// Generator builds question sets and action lists.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// Questions returns the matched entry's question flow, or the generic
// template when the entry authored none. On urgent queries, options whose
// labels imply immediacy are surfaced first within each step; nothing is
// dropped.
func (g *Generator) Questions(match *types.Match, analysis *types.QueryAnalysis) []types.QuestionStep {
	source := genericQuestions
	if match != nil && match.Entry != nil && len(match.Entry.Questions) > 0 {
		source = match.Entry.Questions
	}

	steps := make([]types.QuestionStep, len(source))
	copy(steps, source)

	// Option slices are copied so callers can reorder or relabel without
	// touching the knowledge-base entry.
	for i := range steps {
		steps[i].Options = append([]types.QuestionOption(nil), steps[i].Options...)
		if analysis.UrgencyLevel == types.UrgencyHigh {
			steps[i].Options = surfaceImmediate(steps[i].Options)
		}
	}

	return steps
}

// surfaceImmediate stably moves immediacy-labeled options to the front.
func surfaceImmediate(options []types.QuestionOption) []types.QuestionOption {
	if len(options) < 2 {
		return options
	}

	immediate := make([]types.QuestionOption, 0, len(options))
	rest := make([]types.QuestionOption, 0, len(options))
	for _, opt := range options {
		if labelImpliesImmediacy(opt.Label) {
			immediate = append(immediate, opt)
		} else {
			rest = append(rest, opt)
		}
	}
	return append(immediate, rest...)
}

func labelImpliesImmediacy(label string) bool {
	lowered := strings.ToLower(label)
	for _, marker := range immediacyMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// Actions builds the personalized action list: entry actions (horizon
// groups flattened immediate-first), then intent-specific, then
// complexity-specific actions. Urgent queries drop slow actions; an
// outcome answer prefixes everything remaining. The result is
// deduplicated, padded to at least three entries, and capped at five.
func (g *Generator) Actions(match *types.Match, analysis *types.QueryAnalysis) []string {
	var actions []string

	if match != nil && match.Entry != nil {
		actions = append(actions, match.Entry.Actions.Flatten()...)
	}
	actions = append(actions, intentActions[analysis.Intent]...)
	actions = append(actions, complexityActions[analysis.Complexity]...)

	if analysis.UrgencyLevel == types.UrgencyHigh {
		actions = dropSlowActions(actions)
	}

	if outcome := analysis.UserContext.Answer(outcomeAnswerKey); outcome != "" {
		for i := range actions {
			actions[i] = outcomeModifier + " " + actions[i]
		}
	}

	actions = dedupe(actions)

	for i := 0; len(actions) < minActions && i < len(fillerActions); i++ {
		actions = append(actions, fillerActions[i])
	}
	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}

	return actions
}

// dropSlowActions filters actions whose text marks them as long-running.
func dropSlowActions(actions []string) []string {
	kept := actions[:0]
	for _, action := range actions {
		lowered := strings.ToLower(action)
		slow := false
		for _, marker := range slowActionMarkers {
			if strings.Contains(lowered, marker) {
				slow = true
				break
			}
		}
		if !slow {
			kept = append(kept, action)
		}
	}
	return kept
}

// dedupe removes duplicates preserving first occurrence.
func dedupe(actions []string) []string {
	seen := make(map[string]struct{}, len(actions))
	out := actions[:0]
	for _, action := range actions {
		if _, dup := seen[action]; dup {
			continue
		}
		seen[action] = struct{}{}
		out = append(out, action)
	}
	return out
}
