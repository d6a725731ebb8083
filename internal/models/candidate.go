package models

import (
	"github.com/google/uuid"
)

// FieldNotFound is the placeholder used for every profile field that the
// extractor could not recover. Downstream code renders it as-is instead of
// dealing with null values.
const FieldNotFound = "N/A"

// CandidateProfile holds the identity fields recovered from raw resume text.
// It is a pure function of the text: the same input always produces the same
// profile, and it is never mutated after creation.
type CandidateProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProfileLink string `json:"profile_link"`
	Education   string `json:"education"`
}

// NewCandidateProfile returns a profile with every field set to the
// not-found placeholder.
func NewCandidateProfile() CandidateProfile {
	return CandidateProfile{
		Name:        FieldNotFound,
		Email:       FieldNotFound,
		Phone:       FieldNotFound,
		ProfileLink: FieldNotFound,
		Education:   FieldNotFound,
	}
}

// MatchResult is the structured outcome of scoring one resume against the
// job description. Score is always present, even on failure (0), and both
// slices are always non-nil so display code never needs nil checks.
type MatchResult struct {
	Score               int      `json:"score"`
	MatchedSkills       []string `json:"matched_skills"`
	MissingRequirements []string `json:"missing_requirements"`
	Summary             string   `json:"summary"`
}

// FailedMatchResult returns the zero-score result recorded when scoring a
// resume fails for any reason.
func FailedMatchResult(summary string) MatchResult {
	if summary == "" {
		summary = "Analysis failed"
	}
	return MatchResult{
		Score:               0,
		MatchedSkills:       []string{},
		MissingRequirements: []string{},
		Summary:             summary,
	}
}

// CandidateRecord merges the extracted profile, the match result and a short
// resume excerpt into one row of the review session. The displayed identity
// is the candidate name; the ID exists because names are not guaranteed
// unique.
type CandidateRecord struct {
	ID       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
	CandidateProfile
	MatchResult
	ResumeExcerpt string `json:"resume_excerpt"`
}
