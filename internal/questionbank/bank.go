package questionbank

import (
	"fmt"
	"sort"
)

// Dimension is one of the two independent assessment axes.
type Dimension string

const (
	DimensionCommunication Dimension = "communication"
	DimensionMotivation    Dimension = "motivation"
)

// Category is a scoring bucket within a dimension.
type Category string

const (
	// Communication categories, in tie-break order.
	CategoryDirector    Category = "Director"
	CategoryEncourager  Category = "Encourager"
	CategoryFacilitator Category = "Facilitator"
	CategoryTracker     Category = "Tracker"

	// Motivation categories, in tie-break order.
	CategoryGrowth      Category = "Growth"
	CategoryPurpose     Category = "Purpose"
	CategoryConnection  Category = "Connection"
	CategoryAchievement Category = "Achievement"
)

var dimensionCategories = map[Dimension][]Category{
	DimensionCommunication: {CategoryDirector, CategoryEncourager, CategoryFacilitator, CategoryTracker},
	DimensionMotivation:    {CategoryGrowth, CategoryPurpose, CategoryConnection, CategoryAchievement},
}

// Categories returns the fixed category set for a dimension. The slice order
// is the declared enumeration order used for tie-breaking; callers must not
// mutate it.
func Categories(d Dimension) []Category {
	return dimensionCategories[d]
}

// IsCategory reports whether c belongs to dimension d's fixed category set.
func IsCategory(d Dimension, c Category) bool {
	for _, cat := range dimensionCategories[d] {
		if cat == c {
			return true
		}
	}
	return false
}

// QuestionType distinguishes how an item is answered and scored.
type QuestionType string

const (
	// TypeRated is a single statement rated 1-5.
	TypeRated QuestionType = "rated"
	// TypeChoice is a forced choice between two statements.
	TypeChoice QuestionType = "choice"
	// TypeContext is a non-scoring strain item (Motivation only).
	TypeContext QuestionType = "context"
)

// ChoiceOption is one side of a forced-choice item.
type ChoiceOption struct {
	Prompt string   `json:"prompt"`
	Target Category `json:"target"`
}

// Question is a single immutable questionnaire item. Rated and context items
// use Prompt/Target; choice items use OptionA/OptionB.
type Question struct {
	ID        string       `json:"id"`
	Dimension Dimension    `json:"dimension"`
	Type      QuestionType `json:"type"`
	Prompt    string       `json:"prompt,omitempty"`
	Target    Category     `json:"target,omitempty"`
	Weight    float64      `json:"weight,omitempty"`
	Reversed  bool         `json:"reversed,omitempty"`
	OptionA   ChoiceOption `json:"option_a,omitempty"`
	OptionB   ChoiceOption `json:"option_b,omitempty"`
}

// QuestionsFor returns the full ordered item list for a dimension. The banks
// are defined once at init and never mutated; presentation order elsewhere
// does not affect scoring.
func QuestionsFor(d Dimension) []Question {
	switch d {
	case DimensionCommunication:
		return communicationQuestions
	case DimensionMotivation:
		return motivationQuestions
	default:
		return nil
	}
}

// Answer is one raw response. Rated and context items carry Rating (1-5);
// choice items carry Pick ("a" or "b").
type Answer struct {
	Rating int    `json:"rating,omitempty"`
	Pick   string `json:"pick,omitempty"`
}

// AnswerSet maps question ID to the respondent's raw answer.
type AnswerSet map[string]Answer

// ValidateAnswers checks an answer set for completeness and range before
// scoring may run. It returns the sorted IDs of missing non-context questions
// and an error describing the first malformed answer, if any. Context items
// are optional: a dimension with context questions defined but unanswered is
// still scoreable.
func ValidateAnswers(d Dimension, set AnswerSet) (missing []string, err error) {
	for _, q := range QuestionsFor(d) {
		a, ok := set[q.ID]
		if !ok {
			if q.Type != TypeContext {
				missing = append(missing, q.ID)
			}
			continue
		}
		switch q.Type {
		case TypeRated, TypeContext:
			if a.Rating < 1 || a.Rating > 5 {
				return nil, fmt.Errorf("question %s: rating %d out of range [1,5]", q.ID, a.Rating)
			}
		case TypeChoice:
			if a.Pick != "a" && a.Pick != "b" {
				return nil, fmt.Errorf("question %s: pick %q must be \"a\" or \"b\"", q.ID, a.Pick)
			}
		}
	}
	sort.Strings(missing)
	return missing, nil
}

// validateBank asserts the structural invariants of a bank: every target
// category belongs to the dimension, rated items are balanced across
// categories, and IDs are unique. Called from init; a violation is a content
// bug, so it panics.
func validateBank(d Dimension, questions []Question) {
	seen := make(map[string]bool, len(questions))
	ratedPerCategory := make(map[Category]int)
	for _, q := range questions {
		if seen[q.ID] {
			panic(fmt.Sprintf("questionbank: duplicate question ID %s", q.ID))
		}
		seen[q.ID] = true
		switch q.Type {
		case TypeRated:
			if !IsCategory(d, q.Target) {
				panic(fmt.Sprintf("questionbank: %s targets %q outside dimension %s", q.ID, q.Target, d))
			}
			ratedPerCategory[q.Target]++
		case TypeChoice:
			for _, opt := range []ChoiceOption{q.OptionA, q.OptionB} {
				if !IsCategory(d, opt.Target) {
					panic(fmt.Sprintf("questionbank: %s option targets %q outside dimension %s", q.ID, opt.Target, d))
				}
			}
			if q.OptionA.Target == q.OptionB.Target {
				panic(fmt.Sprintf("questionbank: %s pits a category against itself", q.ID))
			}
		case TypeContext:
			if d != DimensionMotivation {
				panic(fmt.Sprintf("questionbank: context item %s outside motivation dimension", q.ID))
			}
		}
	}
	want := -1
	for _, c := range Categories(d) {
		if want == -1 {
			want = ratedPerCategory[c]
		}
		if ratedPerCategory[c] != want {
			panic(fmt.Sprintf("questionbank: dimension %s rated items unbalanced: %v", d, ratedPerCategory))
		}
	}
}

func init() {
	validateBank(DimensionCommunication, communicationQuestions)
	validateBank(DimensionMotivation, motivationQuestions)
}
