package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/grading"
	"project/backend/models"
	"project/backend/questionnaire"
	"project/backend/roles"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ResultsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewResultsController(db *gorm.DB, cfg *config.Config) *ResultsController {
	return &ResultsController{DB: db, Cfg: cfg}
}

// loadComplete fetches the user's assessment and checks the engine's input
// contract (academics + projects present). Results always recompute from the
// raw inputs so catalog or formula changes apply without re-finalizing.
func (rc *ResultsController) loadComplete(userID uint) (models.Assessment, error) {
	var assessment models.Assessment
	if err := rc.DB.Where("user_id = ?", userID).First(&assessment).Error; err != nil {
		return assessment, err
	}
	if !assessment.AcademicsEntered || !assessment.ProjectsEntered {
		return assessment, gorm.ErrRecordNotFound
	}
	return assessment, nil
}

// GetGrade godoc
// @Summary Get the final grade
// @Description Returns the weighted grade with breakdown, strengths and improvement plan
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /results/grade [get]
func (rc *ResultsController) GetGrade(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	assessment, err := rc.loadComplete(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Assessment not complete")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	record := grading.CalculateAcademicScore(decodeSemesters(assessment.Semesters), assessment.Backlogs)
	projects := grading.CalculateProjectScore(
		assessment.SQLAnalytics,
		assessment.PythonDataCleaning,
		assessment.DataPipeline,
	)
	grade := grading.CalculateStudentGrade(record, projects, coverLetterOf(assessment))

	return c.JSON(fiber.Map{
		"grade":    grade,
		"academic": record,
		"projects": projects,
	})
}

// GetRoles godoc
// @Summary Get role eligibility
// @Description Returns eligible and potential roles with match scores and missing requirements
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /results/roles [get]
func (rc *ResultsController) GetRoles(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	assessment, err := rc.loadComplete(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Assessment not complete")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	record := grading.CalculateAcademicScore(decodeSemesters(assessment.Semesters), assessment.Backlogs)
	scores := roles.CandidateScores{
		SQL:      assessment.SQLAnalytics,
		Python:   assessment.PythonDataCleaning,
		DE:       assessment.DataPipeline,
		Academic: record.AcademicScore,
	}

	return c.JSON(fiber.Map{
		"scores":          scores,
		"eligible_roles":  rolesWithSalary(roles.EligibleRoles(scores)),
		"potential_roles": rolesWithSalary(roles.PotentialRoles(scores)),
	})
}

// rolesWithSalary decorates matcher output with the formatted salary string
// the results page shows.
func rolesWithSalary(matches []roles.Eligibility) []fiber.Map {
	result := make([]fiber.Map, 0, len(matches))
	for _, match := range matches {
		result = append(result, fiber.Map{
			"role":                 match.Role,
			"is_eligible":          match.IsEligible,
			"match_score":          match.MatchScore,
			"missing_requirements": match.MissingRequirements,
			"salary":               match.Role.Salary.String(),
			"stream_name":          roles.StreamNames[match.Role.Stream],
		})
	}
	return result
}

// GetStream godoc
// @Summary Get the recommended career stream
// @Description Returns questionnaire stream scores and the top stream
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /results/stream [get]
func (rc *ResultsController) GetStream(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var assessment models.Assessment
	if err := rc.DB.Where("user_id = ?", userID).First(&assessment).Error; err != nil {
		return utils.NotFound(c, "Assessment not found")
	}

	response := questionnaire.NewResponse(decodeAnswers(assessment.Answers))
	if !response.Complete() {
		return utils.NotFound(c, "Questionnaire not complete")
	}

	top := questionnaire.TopStream(response.StreamScores)
	return c.JSON(fiber.Map{
		"stream_scores": response.StreamScores,
		"top_stream":    top,
		"stream_name":   roles.StreamNames[top],
	})
}
