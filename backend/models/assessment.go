package models

import "gorm.io/gorm"

// Assessment is the single snapshot of a user's final-assessment inputs, one
// row per user. Raw section inputs only; derived scores are recomputed by the
// grading engine on read. Grade and TotalScore are written once at finalize
// time for analytics.
type Assessment struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	// Academic records
	Semesters        string // JSON array of 8 semester percentages
	Backlogs         int
	AcademicsEntered bool

	// Project evaluation (0-100 each)
	SQLAnalytics       float64
	PythonDataCleaning float64
	DataPipeline       float64
	ProjectsEntered    bool

	// Cover letter
	CoverLetterType string // none, uploaded, written
	CoverLetterFile string
	CoverLetterText string

	// Career questionnaire
	Answers string // JSON object: question ID -> option index

	// Finalized result snapshot
	Grade       string
	TotalScore  float64
	CompletedAt string
}

type UserActivity struct {
	gorm.Model
	UserID     uint
	ActionType string // "section_saved", "assessment_finalized"
	Section    string // "academics", "projects", "cover_letter", "questionnaire"
	Timestamp  string
}
