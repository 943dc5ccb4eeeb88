package grading

import "math"

// CalculateAcademicScore derives the academic record from raw semester marks
// and a backlog count. Zero entries are treated as "not yet entered" and
// excluded from the average — a genuine 0% mark is indistinguishable from an
// unfilled one. The caller clamps marks to [0,100] and backlogs to >= 0.
//
// Formula: academicScore = max(0, averagePercentage/10 - backlogs).
func CalculateAcademicScore(semesters []float64, backlogs int) AcademicRecord {
	var sum float64
	entered := 0
	for _, mark := range semesters {
		if mark > 0 {
			sum += mark
			entered++
		}
	}

	average := 0.0
	if entered > 0 {
		average = round1(sum / float64(entered))
	}

	score := math.Max(0, average/10-float64(backlogs))

	return AcademicRecord{
		Semesters:         semesters,
		Backlogs:          backlogs,
		AveragePercentage: average,
		AcademicScore:     round1(score),
	}
}
