package grading

// CalculateProjectScore combines the three project ratings into a weighted
// total (SQL 30%, Python 30%, data pipeline 40%). Inputs are expected in
// [0,100]; the function does not re-clamp, so out-of-range inputs pass
// through to the total.
func CalculateProjectScore(sqlScore, pythonScore, deScore float64) ProjectScores {
	total := sqlScore*ProjectWeightSQL +
		pythonScore*ProjectWeightPython +
		deScore*ProjectWeightDE

	return ProjectScores{
		SQLAnalytics:       sqlScore,
		PythonDataCleaning: pythonScore,
		DataPipeline:       deScore,
		TotalScore:         round1(total),
	}
}
