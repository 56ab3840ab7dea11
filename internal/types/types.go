package types

import "github.com/harborlight/teamlens/internal/questionbank"

// SubmitRequest is the body of POST /api/assessments.
type SubmitRequest struct {
	Name          string                 `json:"name" binding:"required"`
	Email         string                 `json:"email" binding:"required,email"`
	RoleTitle     string                 `json:"role_title"`
	Unit          string                 `json:"unit"`
	Communication questionbank.AnswerSet `json:"communication" binding:"required"`
	Motivation    questionbank.AnswerSet `json:"motivation" binding:"required"`
}

// LoginRequest is the body of POST /api/dashboard/login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
	Unit     string `json:"unit"`
}
