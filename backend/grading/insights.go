package grading

import "project/backend/roles"

// IdentifyStrengths derives qualitative strengths from the normalized scores.
// Each rule fires independently, in a fixed order.
func IdentifyStrengths(record AcademicRecord, projects ProjectScores, coverLetter CoverLetter) []string {
	var strengths []string

	if record.AveragePercentage >= 75 {
		strengths = append(strengths, "Strong academic foundation")
	}
	if record.Backlogs == 0 {
		strengths = append(strengths, "Clean academic record (no backlogs)")
	}

	if projects.TotalScore >= 80 {
		strengths = append(strengths, "Excellent project execution")
	}
	if projects.SQLAnalytics >= 80 {
		strengths = append(strengths, "Strong SQL skills")
	}
	if projects.PythonDataCleaning >= 80 {
		strengths = append(strengths, "Proficient in Python")
	}
	if projects.DataPipeline >= 80 {
		strengths = append(strengths, "Good data engineering fundamentals")
	}

	if coverLetter.Type != CoverLetterNone && coverLetter.WordCount >= 300 {
		strengths = append(strengths, "Professional communication skills")
	}

	return strengths
}

// IdentifyImprovementAreas builds the prioritized improvement plan. Emission
// order is fixed: academic average, backlogs, SQL, Python, DE, cover letter —
// that order drives the plan's display.
func IdentifyImprovementAreas(record AcademicRecord, projects ProjectScores, coverLetter CoverLetter) []ImprovementArea {
	var areas []ImprovementArea

	if record.AveragePercentage < 65 {
		areas = append(areas, ImprovementArea{
			Area:           "Low Academic Average",
			Priority:       PriorityHigh,
			Recommendation: "Focus on strengthening core subjects, consider tutoring or study groups",
			UnlockedRoles:  []string{"Graduate Programs", "Top-tier Company Roles"},
		})
	}

	if record.Backlogs > 3 {
		areas = append(areas, ImprovementArea{
			Area:           "Multiple Backlogs",
			Priority:       PriorityCritical,
			Recommendation: "Clear backlogs immediately, seek faculty help and extra coaching",
			UnlockedRoles:  []string{"Most corporate roles require clear academic record"},
		})
	} else if record.Backlogs > 0 {
		areas = append(areas, ImprovementArea{
			Area:           "Pending Backlogs",
			Priority:       PriorityHigh,
			Recommendation: "Clear remaining backlogs to improve eligibility",
			UnlockedRoles:  []string{"Premium roles at top companies"},
		})
	}

	if projects.SQLAnalytics < 70 {
		areas = append(areas, ImprovementArea{
			Area:           "SQL Skills Need Improvement",
			Priority:       severity(projects.SQLAnalytics, PriorityHigh),
			Recommendation: "Practice on LeetCode, HackerRank, SQLZoo. Focus on JOINs, window functions, and optimization",
			UnlockedRoles:  rolesUnlockedBySkill(func(t roles.Thresholds) float64 { return t.SQL }, 70),
		})
	}

	if projects.PythonDataCleaning < 70 {
		areas = append(areas, ImprovementArea{
			Area:           "Python Skills Need Improvement",
			Priority:       severity(projects.PythonDataCleaning, PriorityHigh),
			Recommendation: "Work through Pandas, NumPy tutorials. Build personal data analysis projects",
			UnlockedRoles:  rolesUnlockedBySkill(func(t roles.Thresholds) float64 { return t.Python }, 70),
		})
	}

	// The DE branch deliberately falls back to medium where SQL/Python use
	// high; product calibration, keep as-is.
	if projects.DataPipeline < 70 {
		areas = append(areas, ImprovementArea{
			Area:           "Data Engineering Fundamentals",
			Priority:       severity(projects.DataPipeline, PriorityMedium),
			Recommendation: "Study ETL/ELT concepts, build data pipelines with Apache Airflow or similar tools",
			UnlockedRoles:  rolesUnlockedBySkill(func(t roles.Thresholds) float64 { return t.DE }, 65),
		})
	}

	if coverLetter.Type == CoverLetterNone {
		areas = append(areas, ImprovementArea{
			Area:           "Missing Cover Letter",
			Priority:       PriorityMedium,
			Recommendation: "Write a compelling 300-500 word cover letter highlighting your goals and motivation",
			UnlockedRoles:  []string{},
		})
	} else if coverLetter.WordCount < 200 {
		areas = append(areas, ImprovementArea{
			Area:           "Brief Cover Letter",
			Priority:       PriorityMedium,
			Recommendation: "Expand your cover letter to 300-500 words with specific examples and goals",
			UnlockedRoles:  []string{},
		})
	}

	return areas
}

func severity(score float64, fallback Priority) Priority {
	if score < 50 {
		return PriorityCritical
	}
	return fallback
}

// rolesUnlockedBySkill collects catalog role titles whose threshold on the
// given skill is at or above the bar — the roles improving that skill opens.
func rolesUnlockedBySkill(threshold func(roles.Thresholds) float64, bar float64) []string {
	var titles []string
	for _, role := range roles.Catalog {
		if threshold(role.Thresholds) >= bar {
			titles = append(titles, role.Title)
		}
	}
	return titles
}
