package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors the handlers translate into distinct HTTP conditions.
var (
	// ErrNotFound: no record exists for the identity key.
	ErrNotFound = errors.New("store: assessment not found")
	// ErrInvalidRecord: a record exists but its stored shape no longer
	// parses; callers must not present it as a valid result.
	ErrInvalidRecord = errors.New("store: stored assessment is invalid")
)

// Repository handles assessment and roster persistence.
type Repository struct {
	db *DB
}

// NewRepository creates a repository over an open DB.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// SaveAssessment upserts a record keyed by email. A re-taken assessment
// replaces the previous submission for the same respondent.
func (r *Repository) SaveAssessment(rec *AssessmentRecord) error {
	commScores, err := marshalNullable(rec.CommScores)
	if err != nil {
		return fmt.Errorf("failed to encode communication scores: %w", err)
	}
	motivScores, err := marshalNullable(rec.MotivScores)
	if err != nil {
		return fmt.Errorf("failed to encode motivation scores: %w", err)
	}
	rawAnswers, err := marshalNullable(rec.RawAnswers)
	if err != nil {
		return fmt.Errorf("failed to encode raw answers: %w", err)
	}

	stmt, err := r.db.stmt("upsert_assessment")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(
		rec.ID, rec.Email, rec.Name, rec.RoleTitle, rec.Unit,
		commScores, motivScores,
		rec.CommPrimary, rec.CommSecondary, rec.MotivPrimary, rec.MotivSecondary,
		rec.Burnout, rawAnswers, rec.CreatedAt, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}

	return nil
}

// FetchByEmail retrieves the stored record for an email. Records with NULL
// score maps (legacy writes) are returned with nil maps; records whose stored
// JSON fails to parse return ErrInvalidRecord so callers can report invalid
// stored data as a distinct condition from not-found.
func (r *Repository) FetchByEmail(email string) (*AssessmentRecord, error) {
	stmt, err := r.db.stmt("get_assessment_by_email")
	if err != nil {
		return nil, err
	}

	var rec AssessmentRecord
	var commScores, motivScores, rawAnswers sql.NullString
	var roleTitle, unit sql.NullString

	err = stmt.QueryRow(email).Scan(
		&rec.ID, &rec.Email, &rec.Name, &roleTitle, &unit,
		&commScores, &motivScores,
		&rec.CommPrimary, &rec.CommSecondary, &rec.MotivPrimary, &rec.MotivSecondary,
		&rec.Burnout, &rawAnswers, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment: %w", err)
	}

	rec.RoleTitle = roleTitle.String
	rec.Unit = unit.String

	if commScores.Valid {
		if err := json.Unmarshal([]byte(commScores.String), &rec.CommScores); err != nil {
			return nil, fmt.Errorf("%w: communication scores: %v", ErrInvalidRecord, err)
		}
	}
	if motivScores.Valid {
		if err := json.Unmarshal([]byte(motivScores.String), &rec.MotivScores); err != nil {
			return nil, fmt.Errorf("%w: motivation scores: %v", ErrInvalidRecord, err)
		}
	}
	if rawAnswers.Valid {
		if err := json.Unmarshal([]byte(rawAnswers.String), &rec.RawAnswers); err != nil {
			return nil, fmt.Errorf("%w: raw answers: %v", ErrInvalidRecord, err)
		}
	}
	if rec.CommPrimary == "" || rec.MotivPrimary == "" {
		return nil, fmt.Errorf("%w: missing rankings", ErrInvalidRecord)
	}

	return &rec, nil
}

// ListByUnit returns dashboard rows for one organizational unit, newest
// first. An empty unit returns every record.
func (r *Repository) ListByUnit(unit string) ([]DashboardRow, error) {
	var rows *sql.Rows
	var err error

	if unit == "" {
		rows, err = r.db.Query(`SELECT id, email, name, role_title, unit,
			comm_primary, comm_secondary, motiv_primary, motiv_secondary, burnout, created_at
			FROM assessments ORDER BY created_at DESC`)
	} else {
		var stmt *sql.Stmt
		stmt, err = r.db.stmt("list_assessments_by_unit")
		if err != nil {
			return nil, err
		}
		rows, err = stmt.Query(unit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var out []DashboardRow
	for rows.Next() {
		var row DashboardRow
		var roleTitle, unitCol sql.NullString
		if err := rows.Scan(
			&row.ID, &row.Email, &row.Name, &roleTitle, &unitCol,
			&row.CommPrimary, &row.CommSecondary, &row.MotivPrimary, &row.MotivSecondary,
			&row.Burnout, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		row.RoleTitle = roleTitle.String
		row.Unit = unitCol.String
		out = append(out, row)
	}

	return out, rows.Err()
}

// ListRoster returns all staff members ordered by unit then name.
func (r *Repository) ListRoster() ([]StaffMember, error) {
	rows, err := r.db.Query(`SELECT id, name, role_title, unit FROM roster ORDER BY unit, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	defer rows.Close()

	var out []StaffMember
	for rows.Next() {
		var m StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.RoleTitle, &m.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// SeedRoster inserts staff members if the roster table is empty. Used at
// startup to load the initial roster file.
func (r *Repository) SeedRoster(members []StaffMember) error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM roster`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count roster: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin roster seed: %w", err)
	}
	defer tx.Rollback()

	for _, m := range members {
		if _, err := tx.Exec(`INSERT INTO roster (id, name, role_title, unit) VALUES (?, ?, ?, ?)`,
			m.ID, m.Name, m.RoleTitle, m.Unit); err != nil {
			return fmt.Errorf("failed to seed roster member %s: %w", m.Name, err)
		}
	}

	return tx.Commit()
}

func marshalNullable(v interface{}) (sql.NullString, error) {
	switch m := v.(type) {
	case map[string]float64:
		if m == nil {
			return sql.NullString{}, nil
		}
	case map[string]string:
		if m == nil {
			return sql.NullString{}, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
