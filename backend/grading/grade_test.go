package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeLetterFor(t *testing.T) {
	cases := []struct {
		score  float64
		letter GradeLetter
	}{
		{100, GradeAPlus},
		{90, GradeAPlus},
		{89.9, GradeA},
		{85, GradeA},
		{80, GradeAMinus},
		{75, GradeBPlus},
		{70, GradeB},
		{65, GradeBMinus},
		{60, GradeCPlus},
		{50, GradeC},
		{49.9, GradeD},
		{0, GradeD},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.letter, GradeLetterFor(tc.score), "score=%v", tc.score)
	}
}

func gradeRank(letter GradeLetter) int {
	order := []GradeLetter{GradeD, GradeC, GradeCPlus, GradeBMinus, GradeB, GradeBPlus, GradeAMinus, GradeA, GradeAPlus}
	for i, l := range order {
		if l == letter {
			return i
		}
	}
	return -1
}

func TestGradeLetterMonotonic(t *testing.T) {
	previous := gradeRank(GradeLetterFor(0))
	for score := 0.0; score <= 100; score += 0.5 {
		rank := gradeRank(GradeLetterFor(score))
		assert.GreaterOrEqual(t, rank, previous, "score=%v", score)
		previous = rank
	}
}

func TestCalculateStudentGrade(t *testing.T) {
	record := CalculateAcademicScore([]float64{78, 72, 75, 80, 76, 82, 79, 77}, 1)
	projects := CalculateProjectScore(75, 80, 70)
	letter := WrittenCoverLetter(wordsOf(300))

	grade := CalculateStudentGrade(record, projects, letter)

	// 6.7/10*25 + 74.5/100*50 + 20 = 16.75 + 37.25 + 20 = 74.0
	assert.Equal(t, 74.0, grade.TotalScore)
	assert.Equal(t, GradeB, grade.Grade)
	assert.Equal(t, 16.8, grade.Breakdown.Academic)
	assert.Equal(t, 37.3, grade.Breakdown.Projects)
	assert.Equal(t, 20.0, grade.Breakdown.CoverLetter)
}

func TestGradeBreakdownSumsToTotal(t *testing.T) {
	inputs := []struct {
		semesters []float64
		backlogs  int
		sql       float64
		python    float64
		de        float64
		letter    CoverLetter
	}{
		{[]float64{78, 72, 75, 80, 76, 82, 79, 77}, 1, 75, 80, 70, WrittenCoverLetter(wordsOf(300))},
		{[]float64{90, 92, 91, 89, 93, 90, 88, 94}, 0, 95, 90, 92, UploadedCoverLetter("cv.pdf")},
		{[]float64{55, 60, 58, 0, 0, 0, 0, 0}, 2, 45, 55, 40, NoCoverLetter()},
		{[]float64{70, 71, 72, 73, 74, 75, 76, 77}, 0, 60, 65, 70, WrittenCoverLetter(wordsOf(150))},
	}

	for _, in := range inputs {
		record := CalculateAcademicScore(in.semesters, in.backlogs)
		projects := CalculateProjectScore(in.sql, in.python, in.de)
		grade := CalculateStudentGrade(record, projects, in.letter)

		sum := grade.Breakdown.Academic + grade.Breakdown.Projects + grade.Breakdown.CoverLetter
		assert.InDelta(t, grade.TotalScore, sum, 0.1)
		assert.GreaterOrEqual(t, grade.TotalScore, 0.0)
		assert.LessOrEqual(t, grade.TotalScore, 100.0)
		assert.False(t, math.IsNaN(grade.TotalScore))
	}
}
