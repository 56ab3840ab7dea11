package scoring

import (
	"math"

	"github.com/harborlight/teamlens/internal/questionbank"
)

// Rank selects the primary and secondary category for a dimension by
// descending score. Exact ties are common with integer-weighted Likert sums,
// so resolution must be reproducible: equal scores rank in the dimension's
// declared category order. Iterating the declared order and requiring a
// strictly greater score to displace a held rank gives a stable result
// regardless of map iteration order.
func Rank(d questionbank.Dimension, scores ScoreMap) (primary, secondary questionbank.Category) {
	order := questionbank.Categories(d)
	primary = order[0]
	for _, c := range order[1:] {
		if scores[c] > scores[primary] {
			primary = c
		}
	}
	for _, c := range order {
		if c == primary {
			continue
		}
		if secondary == "" || scores[c] > scores[secondary] {
			secondary = c
		}
	}
	return primary, secondary
}

// BurnoutIndicator is the mean of the context item raw values, rounded to two
// decimal places. Nil when no context items were answered; the Motivation bank
// defines context items, but the code path tolerates their absence.
func BurnoutIndicator(raws []int) *float64 {
	if len(raws) == 0 {
		return nil
	}
	sum := 0
	for _, r := range raws {
		sum += r
	}
	mean := math.Round(float64(sum)/float64(len(raws))*100) / 100
	return &mean
}
