package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeAnswers builds a full answer set for a dimension: rating 3 for every
// rated and context item, pick "a" for every choice item.
func completeAnswers(d Dimension) AnswerSet {
	set := make(AnswerSet)
	for _, q := range QuestionsFor(d) {
		switch q.Type {
		case TypeChoice:
			set[q.ID] = Answer{Pick: "a"}
		default:
			set[q.ID] = Answer{Rating: 3}
		}
	}
	return set
}

func TestBankShape(t *testing.T) {
	tests := []struct {
		name        string
		dimension   Dimension
		wantRated   int
		wantChoice  int
		wantContext int
	}{
		{
			name:       "communication bank",
			dimension:  DimensionCommunication,
			wantRated:  20,
			wantChoice: 4,
		},
		{
			name:        "motivation bank",
			dimension:   DimensionMotivation,
			wantRated:   20,
			wantChoice:  4,
			wantContext: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rated, choice, context int
			perCategory := make(map[Category]int)
			for _, q := range QuestionsFor(tt.dimension) {
				switch q.Type {
				case TypeRated:
					rated++
					perCategory[q.Target]++
				case TypeChoice:
					choice++
				case TypeContext:
					context++
				}
			}
			assert.Equal(t, tt.wantRated, rated)
			assert.Equal(t, tt.wantChoice, choice)
			assert.Equal(t, tt.wantContext, context)

			for _, c := range Categories(tt.dimension) {
				assert.Equal(t, tt.wantRated/4, perCategory[c], "rated items unbalanced for %s", c)
			}
		})
	}
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t,
		[]Category{CategoryDirector, CategoryEncourager, CategoryFacilitator, CategoryTracker},
		Categories(DimensionCommunication))
	assert.Equal(t,
		[]Category{CategoryGrowth, CategoryPurpose, CategoryConnection, CategoryAchievement},
		Categories(DimensionMotivation))
	assert.Nil(t, Categories(Dimension("unknown")))
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory(DimensionCommunication, CategoryTracker))
	assert.False(t, IsCategory(DimensionCommunication, CategoryGrowth))
	assert.False(t, IsCategory(DimensionMotivation, Category("Nonsense")))
}

func TestValidateAnswersComplete(t *testing.T) {
	for _, d := range []Dimension{DimensionCommunication, DimensionMotivation} {
		missing, err := ValidateAnswers(d, completeAnswers(d))
		require.NoError(t, err)
		assert.Empty(t, missing)
	}
}

func TestValidateAnswersMissing(t *testing.T) {
	set := completeAnswers(DimensionCommunication)
	delete(set, "C03")
	delete(set, "C01")
	delete(set, "CC2")

	missing, err := ValidateAnswers(DimensionCommunication, set)
	require.NoError(t, err)
	assert.Equal(t, []string{"C01", "C03", "CC2"}, missing, "missing IDs must be sorted")
}

func TestValidateAnswersContextOptional(t *testing.T) {
	set := completeAnswers(DimensionMotivation)
	for _, q := range QuestionsFor(DimensionMotivation) {
		if q.Type == TypeContext {
			delete(set, q.ID)
		}
	}

	missing, err := ValidateAnswers(DimensionMotivation, set)
	require.NoError(t, err)
	assert.Empty(t, missing, "unanswered context items are not missing")
}

func TestValidateAnswersMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(AnswerSet)
	}{
		{
			name:   "rating below range",
			mutate: func(s AnswerSet) { s["C01"] = Answer{Rating: 0} },
		},
		{
			name:   "rating above range",
			mutate: func(s AnswerSet) { s["C02"] = Answer{Rating: 6} },
		},
		{
			name:   "choice with bad pick",
			mutate: func(s AnswerSet) { s["CC1"] = Answer{Pick: "c"} },
		},
		{
			name:   "choice with empty pick",
			mutate: func(s AnswerSet) { s["CC1"] = Answer{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := completeAnswers(DimensionCommunication)
			tt.mutate(set)
			_, err := ValidateAnswers(DimensionCommunication, set)
			assert.Error(t, err)
		})
	}
}

func TestChoiceOptionsDiffer(t *testing.T) {
	for _, d := range []Dimension{DimensionCommunication, DimensionMotivation} {
		for _, q := range QuestionsFor(d) {
			if q.Type != TypeChoice {
				continue
			}
			assert.NotEqual(t, q.OptionA.Target, q.OptionB.Target, "%s pits a category against itself", q.ID)
		}
	}
}
