package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborlight/teamlens/internal/errors"
	"github.com/harborlight/teamlens/internal/profiles"
	"github.com/harborlight/teamlens/internal/questionbank"
	"github.com/harborlight/teamlens/internal/scoring"
)

// Submission is one respondent's complete input: identity plus both
// dimensions' raw answer sets.
type Submission struct {
	Identity      Identity               `json:"identity"`
	Communication questionbank.AnswerSet `json:"communication"`
	Motivation    questionbank.AnswerSet `json:"motivation"`
}

// Evaluate runs the full pipeline on a submission: completeness validation,
// scoring, ranking, profile resolution, assembly. Pure except for the clock
// and the generated record ID; no collaborator is touched, so a persistence
// or delivery failure downstream cannot corrupt the returned Result.
func Evaluate(sub Submission) (*Result, error) {
	if sub.Identity.Email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if sub.Identity.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	for _, d := range []struct {
		dim questionbank.Dimension
		set questionbank.AnswerSet
	}{
		{questionbank.DimensionCommunication, sub.Communication},
		{questionbank.DimensionMotivation, sub.Motivation},
	} {
		missing, err := questionbank.ValidateAnswers(d.dim, d.set)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if len(missing) > 0 {
			return nil, errors.NewIncompleteInputError(string(d.dim), missing)
		}
	}

	commTally := scoring.Score(questionbank.DimensionCommunication, sub.Communication)
	motivTally := scoring.Score(questionbank.DimensionMotivation, sub.Motivation)

	comm, err := rankAndResolve(questionbank.DimensionCommunication, commTally.Scores)
	if err != nil {
		return nil, err
	}
	motiv, err := rankAndResolve(questionbank.DimensionMotivation, motivTally.Scores)
	if err != nil {
		return nil, err
	}

	var combined *profiles.CombinedEntry
	if entry, ok := profiles.ResolveCombined(comm.Primary, motiv.Primary); ok {
		combined = &entry
	}

	burnout := scoring.BurnoutIndicator(motivTally.ContextRaws)
	var strainLoad *float64
	if burnout != nil {
		load := scoring.StrainLoad(motivTally.ContextRaws)
		strainLoad = &load
	}

	return Assemble(
		uuid.New().String(),
		sub.Identity,
		profiles.NormalizeRole(sub.Identity.RoleTitle),
		comm,
		motiv,
		combined,
		burnout,
		strainLoad,
		time.Now().UTC(),
	), nil
}

// Rehydrate reconstructs a Result from stored fields, re-resolving profile
// text from the persisted rankings. Score maps may be nil for legacy records;
// the Result then reports ScoresAvailable false and renders from profiles
// alone. Rankings naming categories outside the fixed sets mean the stored
// record cannot be trusted.
func Rehydrate(
	id string,
	identity Identity,
	commScores, motivScores scoring.ScoreMap,
	commPrimary, commSecondary, motivPrimary, motivSecondary questionbank.Category,
	burnout *float64,
	createdAt time.Time,
) (*Result, error) {
	commProfile, err := profiles.Resolve(questionbank.DimensionCommunication, commPrimary)
	if err != nil {
		return nil, errors.NewInvalidRecordError(identity.Email, err)
	}
	if !questionbank.IsCategory(questionbank.DimensionCommunication, commSecondary) {
		return nil, errors.NewInvalidRecordError(identity.Email, nil)
	}
	motivProfile, err := profiles.Resolve(questionbank.DimensionMotivation, motivPrimary)
	if err != nil {
		return nil, errors.NewInvalidRecordError(identity.Email, err)
	}
	if !questionbank.IsCategory(questionbank.DimensionMotivation, motivSecondary) {
		return nil, errors.NewInvalidRecordError(identity.Email, nil)
	}

	var combined *profiles.CombinedEntry
	if entry, ok := profiles.ResolveCombined(commPrimary, motivPrimary); ok {
		combined = &entry
	}

	return Assemble(
		id,
		identity,
		profiles.NormalizeRole(identity.RoleTitle),
		DimensionResult{Scores: commScores, Primary: commPrimary, Secondary: commSecondary, Profile: commProfile},
		DimensionResult{Scores: motivScores, Primary: motivPrimary, Secondary: motivSecondary, Profile: motivProfile},
		combined,
		burnout,
		nil,
		createdAt,
	), nil
}

func rankAndResolve(d questionbank.Dimension, scores scoring.ScoreMap) (DimensionResult, error) {
	primary, secondary := scoring.Rank(d, scores)
	profile, err := profiles.Resolve(d, primary)
	if err != nil {
		// Unreachable once profiles.ValidateContent has passed at startup.
		return DimensionResult{}, errors.NewInternalError("profile resolution failed", err)
	}
	return DimensionResult{
		Scores:    scores,
		Primary:   primary,
		Secondary: secondary,
		Profile:   profile,
	}, nil
}
