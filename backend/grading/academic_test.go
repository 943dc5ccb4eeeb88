package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAcademicScore(t *testing.T) {
	record := CalculateAcademicScore([]float64{78, 72, 75, 80, 76, 82, 79, 77}, 1)

	assert.Equal(t, 77.4, record.AveragePercentage)
	assert.Equal(t, 6.7, record.AcademicScore)
	assert.Equal(t, 1, record.Backlogs)
}

func TestCalculateAcademicScoreSkipsUnfilledSemesters(t *testing.T) {
	// Zeros mean "not yet entered" and are excluded from the average.
	record := CalculateAcademicScore([]float64{80, 0, 90, 0, 0, 0, 0, 0}, 0)

	assert.Equal(t, 85.0, record.AveragePercentage)
	assert.Equal(t, 8.5, record.AcademicScore)
}

func TestCalculateAcademicScoreNoSemesters(t *testing.T) {
	record := CalculateAcademicScore([]float64{0, 0, 0, 0, 0, 0, 0, 0}, 0)

	assert.Equal(t, 0.0, record.AveragePercentage)
	assert.Equal(t, 0.0, record.AcademicScore)
}

func TestCalculateAcademicScoreFloorsAtZero(t *testing.T) {
	// Backlogs can never push the score negative.
	record := CalculateAcademicScore([]float64{50, 50, 50, 50, 50, 50, 50, 50}, 10)

	assert.Equal(t, 50.0, record.AveragePercentage)
	assert.Equal(t, 0.0, record.AcademicScore)
}

func TestCalculateAcademicScoreNeverNegative(t *testing.T) {
	for backlogs := 0; backlogs <= 15; backlogs++ {
		record := CalculateAcademicScore([]float64{35, 40, 42, 38, 41, 39, 44, 37}, backlogs)
		assert.GreaterOrEqual(t, record.AcademicScore, 0.0, "backlogs=%d", backlogs)
	}
}
