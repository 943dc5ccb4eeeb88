package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyStrengthsAllFire(t *testing.T) {
	record := CalculateAcademicScore([]float64{85, 86, 84, 88, 87, 85, 86, 84}, 0)
	projects := CalculateProjectScore(85, 90, 88)
	letter := WrittenCoverLetter(wordsOf(350))

	strengths := IdentifyStrengths(record, projects, letter)

	assert.Equal(t, []string{
		"Strong academic foundation",
		"Clean academic record (no backlogs)",
		"Excellent project execution",
		"Strong SQL skills",
		"Proficient in Python",
		"Good data engineering fundamentals",
		"Professional communication skills",
	}, strengths)
}

func TestIdentifyStrengthsNoneFire(t *testing.T) {
	record := CalculateAcademicScore([]float64{60, 62, 61, 63, 60, 62, 61, 63}, 2)
	projects := CalculateProjectScore(50, 55, 60)
	letter := NoCoverLetter()

	assert.Empty(t, IdentifyStrengths(record, projects, letter))
}

func TestImprovementAreasOrder(t *testing.T) {
	// Everything weak: every rule fires in the fixed emission order.
	record := CalculateAcademicScore([]float64{50, 52, 51, 53, 50, 52, 51, 53}, 5)
	projects := CalculateProjectScore(40, 45, 48)
	letter := NoCoverLetter()

	areas := IdentifyImprovementAreas(record, projects, letter)

	var names []string
	for _, area := range areas {
		names = append(names, area.Area)
	}
	assert.Equal(t, []string{
		"Low Academic Average",
		"Multiple Backlogs",
		"SQL Skills Need Improvement",
		"Python Skills Need Improvement",
		"Data Engineering Fundamentals",
		"Missing Cover Letter",
	}, names)
}

func TestBacklogPrioritiesMutuallyExclusive(t *testing.T) {
	semesters := []float64{80, 80, 80, 80, 80, 80, 80, 80}
	projects := CalculateProjectScore(90, 90, 90)
	letter := WrittenCoverLetter(wordsOf(400))

	heavy := IdentifyImprovementAreas(CalculateAcademicScore(semesters, 4), projects, letter)
	assert.Len(t, heavy, 1)
	assert.Equal(t, "Multiple Backlogs", heavy[0].Area)
	assert.Equal(t, PriorityCritical, heavy[0].Priority)

	light := IdentifyImprovementAreas(CalculateAcademicScore(semesters, 2), projects, letter)
	assert.Len(t, light, 1)
	assert.Equal(t, "Pending Backlogs", light[0].Area)
	assert.Equal(t, PriorityHigh, light[0].Priority)

	clean := IdentifyImprovementAreas(CalculateAcademicScore(semesters, 0), projects, letter)
	assert.Empty(t, clean)
}

func TestProjectSeverityBands(t *testing.T) {
	record := CalculateAcademicScore([]float64{80, 80, 80, 80, 80, 80, 80, 80}, 0)
	letter := WrittenCoverLetter(wordsOf(400))

	// Below 50 every weak component is critical.
	critical := IdentifyImprovementAreas(record, CalculateProjectScore(45, 45, 45), letter)
	for _, area := range critical {
		assert.Equal(t, PriorityCritical, area.Priority, area.Area)
	}

	// In [50,70) SQL and Python fall back to high, DE to medium.
	moderate := IdentifyImprovementAreas(record, CalculateProjectScore(60, 60, 60), letter)
	byArea := map[string]Priority{}
	for _, area := range moderate {
		byArea[area.Area] = area.Priority
	}
	assert.Equal(t, PriorityHigh, byArea["SQL Skills Need Improvement"])
	assert.Equal(t, PriorityHigh, byArea["Python Skills Need Improvement"])
	assert.Equal(t, PriorityMedium, byArea["Data Engineering Fundamentals"])
}

func TestUnlockedRolesComeFromCatalog(t *testing.T) {
	record := CalculateAcademicScore([]float64{80, 80, 80, 80, 80, 80, 80, 80}, 0)
	letter := WrittenCoverLetter(wordsOf(400))

	areas := IdentifyImprovementAreas(record, CalculateProjectScore(60, 90, 90), letter)
	assert.Len(t, areas, 1)

	sqlArea := areas[0]
	assert.Equal(t, "SQL Skills Need Improvement", sqlArea.Area)
	// Roles requiring SQL >= 70 open up once SQL improves.
	assert.Contains(t, sqlArea.UnlockedRoles, "SQL Developer")
	assert.Contains(t, sqlArea.UnlockedRoles, "Business Intelligence Analyst")
	assert.NotContains(t, sqlArea.UnlockedRoles, "MIS / Reporting Analyst") // needs only 65
}

func TestBriefCoverLetterArea(t *testing.T) {
	record := CalculateAcademicScore([]float64{80, 80, 80, 80, 80, 80, 80, 80}, 0)
	projects := CalculateProjectScore(90, 90, 90)

	areas := IdentifyImprovementAreas(record, projects, WrittenCoverLetter(wordsOf(150)))
	assert.Len(t, areas, 1)
	assert.Equal(t, "Brief Cover Letter", areas[0].Area)
	assert.Equal(t, PriorityMedium, areas[0].Priority)
	assert.Empty(t, areas[0].UnlockedRoles)

	// Missing and brief are mutually exclusive.
	missing := IdentifyImprovementAreas(record, projects, NoCoverLetter())
	assert.Len(t, missing, 1)
	assert.Equal(t, "Missing Cover Letter", missing[0].Area)
}
