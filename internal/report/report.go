// Package report renders an assembled assessment result into a fixed-layout
// HTML document suitable for download or email attachment. Rendering is a
// pure function of the Result; it never touches the store or the network.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/harborlight/teamlens/internal/assessment"
	"github.com/harborlight/teamlens/internal/questionbank"
)

//go:embed report.gohtml
var templateFS embed.FS

var reportTemplate = template.Must(template.New("report.gohtml").Funcs(template.FuncMap{
	"deref": func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	},
}).ParseFS(templateFS, "report.gohtml"))

// scoreRow is one category's total, pre-sorted for display.
type scoreRow struct {
	Category questionbank.Category
	Score    float64
}

type templateData struct {
	Result      *assessment.Result
	CommScores  []scoreRow
	MotivScores []scoreRow
}

// Render produces the report document for a Result. Results without score
// maps (legacy rehydrated records) render the profile sections only; a nil
// combined profile simply omits that section.
func Render(res *assessment.Result) ([]byte, error) {
	data := templateData{
		Result:      res,
		CommScores:  sortedRows(questionbank.DimensionCommunication, res.Communication.Scores),
		MotivScores: sortedRows(questionbank.DimensionMotivation, res.Motivation.Scores),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return buf.Bytes(), nil
}

// sortedRows orders a score map by descending score with the declared
// category order breaking ties, matching how ranking resolves them.
func sortedRows(d questionbank.Dimension, scores map[questionbank.Category]float64) []scoreRow {
	if scores == nil {
		return nil
	}

	declared := make(map[questionbank.Category]int)
	for i, c := range questionbank.Categories(d) {
		declared[c] = i
	}

	rows := make([]scoreRow, 0, len(scores))
	for c, s := range scores {
		rows = append(rows, scoreRow{Category: c, Score: s})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return declared[rows[i].Category] < declared[rows[j].Category]
	})

	return rows
}
