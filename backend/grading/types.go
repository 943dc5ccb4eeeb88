package grading

import "math"

// Project component weights. Must sum to 1.0.
const (
	ProjectWeightSQL    = 0.30
	ProjectWeightPython = 0.30
	ProjectWeightDE     = 0.40
)

// Final grade composition: academic 25, projects 50, cover letter 25.
const (
	AcademicMaxPoints    = 25.0
	ProjectMaxPoints     = 50.0
	CoverLetterMaxPoints = 25.0
)

// AcademicRecord holds raw semester marks with the derived average and score.
// AveragePercentage and AcademicScore are recomputed from Semesters and
// Backlogs on every change, never set independently.
type AcademicRecord struct {
	Semesters         []float64 `json:"semesters"`
	Backlogs          int       `json:"backlogs"`
	AveragePercentage float64   `json:"averagePercentage"`
	AcademicScore     float64   `json:"academicScore"`
}

// ProjectScores holds the three component ratings and their weighted total.
type ProjectScores struct {
	SQLAnalytics       float64 `json:"sqlAnalytics"`
	PythonDataCleaning float64 `json:"pythonDataCleaning"`
	DataPipeline       float64 `json:"dataPipeline"`
	TotalScore         float64 `json:"totalScore"`
}

type GradeLetter string

const (
	GradeAPlus  GradeLetter = "A+"
	GradeA      GradeLetter = "A"
	GradeAMinus GradeLetter = "A-"
	GradeBPlus  GradeLetter = "B+"
	GradeB      GradeLetter = "B"
	GradeBMinus GradeLetter = "B-"
	GradeCPlus  GradeLetter = "C+"
	GradeC      GradeLetter = "C"
	GradeD      GradeLetter = "D"
)

// GradeBreakdown is the per-component contribution to the total score,
// on fixed maxima academic/25, projects/50, coverLetter/25.
type GradeBreakdown struct {
	Academic    float64 `json:"academic"`
	Projects    float64 `json:"projects"`
	CoverLetter float64 `json:"coverLetter"`
}

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

type ImprovementArea struct {
	Area           string   `json:"area"`
	Priority       Priority `json:"priority"`
	Recommendation string   `json:"recommendation"`
	UnlockedRoles  []string `json:"unlockedRoles"`
}

// StudentGrade is the full grading result.
type StudentGrade struct {
	Grade            GradeLetter       `json:"grade"`
	TotalScore       float64           `json:"totalScore"`
	Breakdown        GradeBreakdown    `json:"breakdown"`
	Strengths        []string          `json:"strengths"`
	ImprovementAreas []ImprovementArea `json:"improvementAreas"`
}

// round1 rounds half away from zero at one-decimal granularity.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
