package scoring

import (
	"github.com/harborlight/teamlens/internal/questionbank"
)

// Scoring constants carried over from the original instrument. The ratios are
// load-bearing: the authored profile text assumes the score ranges these
// produce. A single forced choice is worth three rated points at weight 1.0,
// and strain items are up-weighted when aggregated into the strain load.
const (
	RatedWeight  = 1.0
	ChoiceWeight = 3.0
	StrainWeight = 1.2
)

// ScoreMap holds the accumulated total per category for one dimension.
// A computed map always has exactly four entries.
type ScoreMap map[questionbank.Category]float64

// Tally is the output of scoring one dimension's answer set: the category
// totals plus the raw values of any answered context items, kept out of the
// category buckets entirely.
type Tally struct {
	Scores      ScoreMap
	ContextRaws []int
}

// Score accumulates a complete answer set into category totals. It is a pure
// function of its inputs: iteration runs over the bank's declared item order,
// accumulation is commutative, and the same answer set always produces the
// same map. Completeness and range are the caller's responsibility via
// questionbank.ValidateAnswers; answers absent from the set are skipped here
// rather than guessed at.
func Score(d questionbank.Dimension, set questionbank.AnswerSet) Tally {
	scores := make(ScoreMap, 4)
	for _, c := range questionbank.Categories(d) {
		scores[c] = 0
	}

	var contextRaws []int
	for _, q := range questionbank.QuestionsFor(d) {
		a, ok := set[q.ID]
		if !ok {
			continue
		}
		switch q.Type {
		case questionbank.TypeRated:
			effective := float64(a.Rating)
			if q.Reversed {
				effective = 6 - effective
			}
			weight := q.Weight
			if weight == 0 {
				weight = RatedWeight
			}
			scores[q.Target] += effective * weight
		case questionbank.TypeChoice:
			target := q.OptionA.Target
			if a.Pick == "b" {
				target = q.OptionB.Target
			}
			scores[target] += ChoiceWeight
		case questionbank.TypeContext:
			contextRaws = append(contextRaws, a.Rating)
		}
	}

	return Tally{Scores: scores, ContextRaws: contextRaws}
}

// StrainLoad is the weighted sum of context item raw values. It accompanies
// the burnout indicator in reports but, like the indicator, never enters
// category ranking.
func StrainLoad(raws []int) float64 {
	sum := 0.0
	for _, r := range raws {
		sum += float64(r)
	}
	return sum * StrainWeight
}
