package grading

// gradeBands is the descending threshold ladder; first band whose minimum the
// total meets wins.
var gradeBands = []struct {
	Min    float64
	Letter GradeLetter
}{
	{90, GradeAPlus},
	{85, GradeA},
	{80, GradeAMinus},
	{75, GradeBPlus},
	{70, GradeB},
	{65, GradeBMinus},
	{60, GradeCPlus},
	{50, GradeC},
	{0, GradeD},
}

// GradeLetterFor maps a total score (0-100) to its letter band.
func GradeLetterFor(totalScore float64) GradeLetter {
	for _, band := range gradeBands {
		if totalScore >= band.Min {
			return band.Letter
		}
	}
	return GradeD
}

// CalculateStudentGrade combines the three normalized component scores into
// the weighted final grade, with strengths and a prioritized improvement
// plan. Academic is on a 0-10 scale, projects 0-100, cover letter 0-25.
func CalculateStudentGrade(record AcademicRecord, projects ProjectScores, coverLetter CoverLetter) StudentGrade {
	academicContribution := record.AcademicScore / 10 * AcademicMaxPoints
	projectContribution := projects.TotalScore / 100 * ProjectMaxPoints
	coverLetterContribution := coverLetter.Score()

	total := round1(academicContribution + projectContribution + coverLetterContribution)

	return StudentGrade{
		Grade:      GradeLetterFor(total),
		TotalScore: total,
		Breakdown: GradeBreakdown{
			Academic:    round1(academicContribution),
			Projects:    round1(projectContribution),
			CoverLetter: coverLetterContribution,
		},
		Strengths:        IdentifyStrengths(record, projects, coverLetter),
		ImprovementAreas: IdentifyImprovementAreas(record, projects, coverLetter),
	}
}
