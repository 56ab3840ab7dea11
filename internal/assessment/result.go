package assessment

import (
	"time"

	"github.com/harborlight/teamlens/internal/profiles"
	"github.com/harborlight/teamlens/internal/questionbank"
	"github.com/harborlight/teamlens/internal/scoring"
)

// Identity carries the respondent fields that travel with a result.
type Identity struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	RoleTitle string `json:"role_title"`
	Unit      string `json:"unit"`
}

// DimensionResult is one dimension's computed outcome. Scores may be nil when
// the result was rehydrated from a legacy record that dropped the raw score
// map; the rankings and profile are always present.
type DimensionResult struct {
	Scores    scoring.ScoreMap      `json:"scores,omitempty"`
	Primary   questionbank.Category `json:"primary"`
	Secondary questionbank.Category `json:"secondary"`
	Profile   profiles.Entry        `json:"profile"`
}

// Result is the terminal aggregate of one completed assessment. It is
// assembled once and treated as read-only by every downstream consumer
// (rendering, export, persistence, email).
type Result struct {
	ID            string                  `json:"id"`
	Identity      Identity                `json:"identity"`
	Role          profiles.Role           `json:"role"`
	Communication DimensionResult         `json:"communication"`
	Motivation    DimensionResult         `json:"motivation"`
	Combined      *profiles.CombinedEntry `json:"combined,omitempty"`
	Burnout       *float64                `json:"burnout,omitempty"`
	StrainLoad    *float64                `json:"strain_load,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`

	// ScoresAvailable is false for results rehydrated from stored records
	// that no longer carry score maps; renderers fall back to profile text.
	ScoresAvailable bool `json:"scores_available"`
}

// Assemble packages already-computed pieces into a Result. Pure aggregation:
// no scoring, resolution, or I/O happens here.
func Assemble(
	id string,
	identity Identity,
	role profiles.Role,
	comm, motiv DimensionResult,
	combined *profiles.CombinedEntry,
	burnout *float64,
	strainLoad *float64,
	createdAt time.Time,
) *Result {
	return &Result{
		ID:              id,
		Identity:        identity,
		Role:            role,
		Communication:   comm,
		Motivation:      motiv,
		Combined:        combined,
		Burnout:         burnout,
		StrainLoad:      strainLoad,
		CreatedAt:       createdAt,
		ScoresAvailable: comm.Scores != nil && motiv.Scores != nil,
	}
}
