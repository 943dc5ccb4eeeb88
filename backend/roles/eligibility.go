package roles

import (
	"fmt"
	"math"
	"sort"
)

// CandidateScores are the per-skill scores the matcher evaluates thresholds
// against. SQL, Python and DE come from project evaluation (0-100), Academic
// from the academic record (0-10). Range checking is the caller's job.
type CandidateScores struct {
	SQL      float64 `json:"sql"`
	Python   float64 `json:"python"`
	DE       float64 `json:"de"`
	Academic float64 `json:"academic"`
}

// Eligibility is the matcher's verdict for a single role.
type Eligibility struct {
	Role                RoleDefinition `json:"role"`
	IsEligible          bool           `json:"isEligible"`
	MatchScore          int            `json:"matchScore"`
	MissingRequirements []string       `json:"missingRequirements"`
}

// PotentialMatchFloor is the minimum match score for an ineligible role to
// still be reported as a potential match.
const PotentialMatchFloor = 50

// CheckEligibility evaluates every threshold the role declares. A role is
// eligible when all declared thresholds are met; the match score is the
// percentage of declared thresholds met (100 when fully eligible, including
// the vacuous zero-threshold case).
func CheckEligibility(role RoleDefinition, scores CandidateScores) Eligibility {
	checks := []struct {
		label    string
		required float64
		actual   float64
	}{
		{"SQL score", role.Thresholds.SQL, scores.SQL},
		{"Python score", role.Thresholds.Python, scores.Python},
		{"Data Engineering score", role.Thresholds.DE, scores.DE},
		{"Academic score", role.Thresholds.Academic, scores.Academic},
	}

	declared := 0
	var missing []string
	for _, check := range checks {
		if check.required <= 0 {
			continue
		}
		declared++
		if check.actual < check.required {
			missing = append(missing,
				fmt.Sprintf("%s needs %g%% (current: %g%%)", check.label, check.required, check.actual))
		}
	}

	matchScore := 100
	if len(missing) > 0 {
		met := declared - len(missing)
		matchScore = int(math.Round(float64(met) / float64(declared) * 100))
	}

	return Eligibility{
		Role:                role,
		IsEligible:          len(missing) == 0,
		MatchScore:          matchScore,
		MissingRequirements: missing,
	}
}

// EligibleRoles returns every catalog role the candidate fully qualifies for,
// sorted by match score descending, catalog order on ties.
func EligibleRoles(scores CandidateScores) []Eligibility {
	return matchCatalog(scores, func(e Eligibility) bool {
		return e.IsEligible
	})
}

// PotentialRoles returns catalog roles the candidate is close to qualifying
// for: not eligible, but at least half the declared thresholds met. Roles
// below the floor are dropped entirely.
func PotentialRoles(scores CandidateScores) []Eligibility {
	return matchCatalog(scores, func(e Eligibility) bool {
		return !e.IsEligible && e.MatchScore >= PotentialMatchFloor
	})
}

func matchCatalog(scores CandidateScores, keep func(Eligibility) bool) []Eligibility {
	var result []Eligibility
	for _, role := range Catalog {
		if e := CheckEligibility(role, scores); keep(e) {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MatchScore > result[j].MatchScore
	})
	return result
}
