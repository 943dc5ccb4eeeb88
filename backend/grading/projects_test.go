package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateProjectScore(t *testing.T) {
	// 0.3*75 + 0.3*80 + 0.4*70 = 22.5 + 24 + 28 = 74.5
	projects := CalculateProjectScore(75, 80, 70)

	assert.Equal(t, 74.5, projects.TotalScore)
	assert.Equal(t, 75.0, projects.SQLAnalytics)
	assert.Equal(t, 80.0, projects.PythonDataCleaning)
	assert.Equal(t, 70.0, projects.DataPipeline)
}

func TestCalculateProjectScoreBounds(t *testing.T) {
	assert.Equal(t, 0.0, CalculateProjectScore(0, 0, 0).TotalScore)
	assert.Equal(t, 100.0, CalculateProjectScore(100, 100, 100).TotalScore)

	for sql := 0.0; sql <= 100; sql += 25 {
		for python := 0.0; python <= 100; python += 25 {
			for de := 0.0; de <= 100; de += 25 {
				total := CalculateProjectScore(sql, python, de).TotalScore
				assert.GreaterOrEqual(t, total, 0.0)
				assert.LessOrEqual(t, total, 100.0)
			}
		}
	}
}

func TestProjectWeightsSumToOne(t *testing.T) {
	assert.Equal(t, 1.0, ProjectWeightSQL+ProjectWeightPython+ProjectWeightDE)
}
