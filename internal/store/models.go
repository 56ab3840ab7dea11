package store

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentRecord is the persisted shape of a completed assessment. Score
// maps and raw answers are stored as JSON text columns; either may be nil for
// records written by earlier versions of the tool, and the raw answers exist
// only so external analytics never need to re-derive scoring.
type AssessmentRecord struct {
	ID             string             `json:"id" db:"id"`
	Email          string             `json:"email" db:"email"`
	Name           string             `json:"name" db:"name"`
	RoleTitle      string             `json:"role_title" db:"role_title"`
	Unit           string             `json:"unit" db:"unit"`
	CommScores     map[string]float64 `json:"comm_scores,omitempty" db:"comm_scores"`
	MotivScores    map[string]float64 `json:"motiv_scores,omitempty" db:"motiv_scores"`
	CommPrimary    string             `json:"comm_primary" db:"comm_primary"`
	CommSecondary  string             `json:"comm_secondary" db:"comm_secondary"`
	MotivPrimary   string             `json:"motiv_primary" db:"motiv_primary"`
	MotivSecondary string             `json:"motiv_secondary" db:"motiv_secondary"`
	Burnout        *float64           `json:"burnout,omitempty" db:"burnout"`
	RawAnswers     map[string]string  `json:"raw_answers,omitempty" db:"raw_answers"`
	CreatedAt      time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" db:"updated_at"`
}

// DashboardRow is the trimmed listing shape served to supervisors; no score
// maps or raw answers cross that boundary.
type DashboardRow struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	RoleTitle      string    `json:"role_title"`
	Unit           string    `json:"unit"`
	CommPrimary    string    `json:"comm_primary"`
	CommSecondary  string    `json:"comm_secondary"`
	MotivPrimary   string    `json:"motiv_primary"`
	MotivSecondary string    `json:"motiv_secondary"`
	Burnout        *float64  `json:"burnout,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// StaffMember is one roster entry.
type StaffMember struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	RoleTitle string `json:"role_title" db:"role_title"`
	Unit      string `json:"unit" db:"unit"`
}

// NewStaffMember creates a roster entry with a generated ID.
func NewStaffMember(name, roleTitle, unit string) StaffMember {
	return StaffMember{
		ID:        uuid.New().String(),
		Name:      name,
		RoleTitle: roleTitle,
		Unit:      unit,
	}
}
