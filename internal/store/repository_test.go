package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func sampleRecord(email string) *AssessmentRecord {
	burnout := 3.4
	return &AssessmentRecord{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      "Dana Reyes",
		RoleTitle: "Shift Supervisor",
		Unit:      "north-house",
		CommScores: map[string]float64{
			"Director": 18.75, "Encourager": 21.75, "Facilitator": 15.75, "Tracker": 18.75,
		},
		MotivScores: map[string]float64{
			"Growth": 20, "Purpose": 24.5, "Connection": 17, "Achievement": 14,
		},
		CommPrimary:    "Encourager",
		CommSecondary:  "Director",
		MotivPrimary:   "Purpose",
		MotivSecondary: "Growth",
		Burnout:        &burnout,
		RawAnswers:     map[string]string{"C01": "4", "CC1": "a", "MX1": "3"},
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func TestSaveAndFetchRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	rec := sampleRecord("dana@example.org")
	require.NoError(t, repo.SaveAssessment(rec))

	got, err := repo.FetchByEmail("dana@example.org")
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Name, got.Name)
	assert.Equal(t, rec.RoleTitle, got.RoleTitle)
	assert.Equal(t, rec.Unit, got.Unit)
	assert.Equal(t, rec.CommScores, got.CommScores)
	assert.Equal(t, rec.MotivScores, got.MotivScores)
	assert.Equal(t, rec.CommPrimary, got.CommPrimary)
	assert.Equal(t, rec.MotivSecondary, got.MotivSecondary)
	assert.Equal(t, rec.RawAnswers, got.RawAnswers)
	require.NotNil(t, got.Burnout)
	assert.InDelta(t, 3.4, *got.Burnout, 1e-9)
}

func TestFetchNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FetchByEmail("nobody@example.org")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertReplacesPreviousSubmission(t *testing.T) {
	repo := newTestRepo(t)

	first := sampleRecord("dana@example.org")
	require.NoError(t, repo.SaveAssessment(first))

	second := sampleRecord("dana@example.org")
	second.CommPrimary = "Tracker"
	second.CommSecondary = "Director"
	require.NoError(t, repo.SaveAssessment(second))

	got, err := repo.FetchByEmail("dana@example.org")
	require.NoError(t, err)
	// The row keeps its original id; only the assessment content is replaced.
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Tracker", got.CommPrimary)

	rows, err := repo.ListByUnit("")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "upsert must not create a second row")
}

func TestFetchLegacyRecordWithNullMaps(t *testing.T) {
	repo := newTestRepo(t)

	rec := sampleRecord("legacy@example.org")
	rec.CommScores = nil
	rec.MotivScores = nil
	rec.RawAnswers = nil
	rec.Burnout = nil
	require.NoError(t, repo.SaveAssessment(rec))

	got, err := repo.FetchByEmail("legacy@example.org")
	require.NoError(t, err)
	assert.Nil(t, got.CommScores)
	assert.Nil(t, got.MotivScores)
	assert.Nil(t, got.RawAnswers)
	assert.Nil(t, got.Burnout)
	assert.Equal(t, "Encourager", got.CommPrimary)
}

func TestFetchMalformedScoresIsInvalidRecord(t *testing.T) {
	repo := newTestRepo(t)

	rec := sampleRecord("broken@example.org")
	require.NoError(t, repo.SaveAssessment(rec))

	_, err := repo.db.Exec(`UPDATE assessments SET comm_scores = 'not-json' WHERE email = ?`, "broken@example.org")
	require.NoError(t, err)

	_, err = repo.FetchByEmail("broken@example.org")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestFetchMissingRankingsIsInvalidRecord(t *testing.T) {
	repo := newTestRepo(t)

	rec := sampleRecord("empty@example.org")
	require.NoError(t, repo.SaveAssessment(rec))

	_, err := repo.db.Exec(`UPDATE assessments SET comm_primary = '' WHERE email = ?`, "empty@example.org")
	require.NoError(t, err)

	_, err = repo.FetchByEmail("empty@example.org")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestListByUnit(t *testing.T) {
	repo := newTestRepo(t)

	north := sampleRecord("a@example.org")
	north.Unit = "north-house"
	south := sampleRecord("b@example.org")
	south.Unit = "south-house"
	require.NoError(t, repo.SaveAssessment(north))
	require.NoError(t, repo.SaveAssessment(south))

	rows, err := repo.ListByUnit("north-house")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a@example.org", rows[0].Email)

	all, err := repo.ListByUnit("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := repo.ListByUnit("east-house")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeedRosterIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	initial := []StaffMember{
		NewStaffMember("Dana Reyes", "Shift Supervisor", "north-house"),
		NewStaffMember("Lee Park", "Support Worker", "south-house"),
	}
	require.NoError(t, repo.SeedRoster(initial))

	// A second seed against a populated table is a no-op.
	require.NoError(t, repo.SeedRoster([]StaffMember{
		NewStaffMember("Ghost", "Support Worker", "north-house"),
	}))

	staff, err := repo.ListRoster()
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Dana Reyes", staff[0].Name)
	assert.Equal(t, "north-house", staff[0].Unit)
}
