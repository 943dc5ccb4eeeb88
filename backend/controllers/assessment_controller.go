package controllers

import (
	"encoding/json"
	"errors"
	"project/backend/config"
	"project/backend/grading"
	"project/backend/models"
	"project/backend/questionnaire"
	"project/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SemesterCount is the number of semester marks the academic form collects.
const SemesterCount = 8

type AssessmentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAssessmentController(db *gorm.DB, cfg *config.Config) *AssessmentController {
	return &AssessmentController{DB: db, Cfg: cfg}
}

// loadOrCreate returns the user's assessment row, creating an empty one on
// first access. One row per user.
func (ac *AssessmentController) loadOrCreate(userID uint) (models.Assessment, error) {
	var assessment models.Assessment
	err := ac.DB.Where("user_id = ?", userID).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		assessment = models.Assessment{
			UserID:          userID,
			Semesters:       "[]",
			CoverLetterType: string(grading.CoverLetterNone),
			Answers:         "{}",
		}
		err = ac.DB.Create(&assessment).Error
	}
	return assessment, err
}

func (ac *AssessmentController) logActivity(userID uint, action, section string) {
	ac.DB.Create(&models.UserActivity{
		UserID:     userID,
		ActionType: action,
		Section:    section,
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

func decodeSemesters(raw string) []float64 {
	var semesters []float64
	json.Unmarshal([]byte(raw), &semesters)
	for len(semesters) < SemesterCount {
		semesters = append(semesters, 0)
	}
	return semesters[:SemesterCount]
}

func decodeAnswers(raw string) map[int]int {
	answers := map[int]int{}
	json.Unmarshal([]byte(raw), &answers)
	return answers
}

// coverLetterOf rebuilds the tagged variant from the stored columns.
func coverLetterOf(assessment models.Assessment) grading.CoverLetter {
	switch grading.CoverLetterType(assessment.CoverLetterType) {
	case grading.CoverLetterUploaded:
		return grading.UploadedCoverLetter(assessment.CoverLetterFile)
	case grading.CoverLetterWritten:
		return grading.WrittenCoverLetter(assessment.CoverLetterText)
	}
	return grading.NoCoverLetter()
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// SaveAcademics godoc
// @Summary Save academic records
// @Description Stores semester marks and backlog count, returns the derived academic score
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment/academics [put]
func (ac *AssessmentController) SaveAcademics(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Semesters []float64 `json:"semesters"`
		Backlogs  int       `json:"backlogs"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if len(input.Semesters) > SemesterCount {
		return utils.BadRequest(c, "At most 8 semester marks are allowed")
	}

	// The engine does not re-validate: clamp marks to [0,100] and backlogs
	// to >= 0 here. Zero still means "not entered".
	semesters := make([]float64, SemesterCount)
	for i, mark := range input.Semesters {
		semesters[i] = clampScore(mark)
	}
	backlogs := input.Backlogs
	if backlogs < 0 {
		backlogs = 0
	}

	assessment, err := ac.loadOrCreate(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load assessment")
	}

	encoded, _ := json.Marshal(semesters)
	assessment.Semesters = string(encoded)
	assessment.Backlogs = backlogs
	assessment.AcademicsEntered = true

	if err := ac.DB.Save(&assessment).Error; err != nil {
		return utils.InternalServerError(c, "Could not save academic records")
	}
	ac.logActivity(userID, "section_saved", "academics")

	return c.JSON(fiber.Map{
		"message":  "Academic records saved",
		"academic": grading.CalculateAcademicScore(semesters, backlogs),
	})
}

// SaveProjects godoc
// @Summary Save project evaluation scores
// @Description Stores the three project ratings, returns the weighted total
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment/projects [put]
func (ac *AssessmentController) SaveProjects(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		SQLAnalytics       float64 `json:"sql_analytics"`
		PythonDataCleaning float64 `json:"python_data_cleaning"`
		DataPipeline       float64 `json:"data_pipeline"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	assessment, err := ac.loadOrCreate(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load assessment")
	}

	assessment.SQLAnalytics = clampScore(input.SQLAnalytics)
	assessment.PythonDataCleaning = clampScore(input.PythonDataCleaning)
	assessment.DataPipeline = clampScore(input.DataPipeline)
	assessment.ProjectsEntered = true

	if err := ac.DB.Save(&assessment).Error; err != nil {
		return utils.InternalServerError(c, "Could not save project scores")
	}
	ac.logActivity(userID, "section_saved", "projects")

	return c.JSON(fiber.Map{
		"message": "Project scores saved",
		"projects": grading.CalculateProjectScore(
			assessment.SQLAnalytics,
			assessment.PythonDataCleaning,
			assessment.DataPipeline,
		),
	})
}

// SaveCoverLetter godoc
// @Summary Save cover letter
// @Description Stores the cover letter variant (none, uploaded file name, or written content)
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment/cover-letter [put]
func (ac *AssessmentController) SaveCoverLetter(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Type     string `json:"type"`
		FileName string `json:"file_name"`
		Content  string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var letter grading.CoverLetter
	switch grading.CoverLetterType(input.Type) {
	case grading.CoverLetterNone:
		letter = grading.NoCoverLetter()
	case grading.CoverLetterUploaded:
		if input.FileName == "" {
			return utils.BadRequest(c, "file_name is required for uploaded cover letters")
		}
		letter = grading.UploadedCoverLetter(input.FileName)
	case grading.CoverLetterWritten:
		letter = grading.WrittenCoverLetter(input.Content)
	default:
		return utils.BadRequest(c, "type must be one of: none, uploaded, written")
	}

	assessment, err := ac.loadOrCreate(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load assessment")
	}

	// Only the active variant's fields are stored; switching type drops the
	// other variant's leftovers.
	assessment.CoverLetterType = string(letter.Type)
	assessment.CoverLetterFile = letter.FileName
	assessment.CoverLetterText = letter.Content

	if err := ac.DB.Save(&assessment).Error; err != nil {
		return utils.InternalServerError(c, "Could not save cover letter")
	}
	ac.logActivity(userID, "section_saved", "cover_letter")

	return c.JSON(fiber.Map{
		"message":      "Cover letter saved",
		"cover_letter": letter,
		"score":        letter.Score(),
	})
}

// SaveQuestionnaire godoc
// @Summary Save career questionnaire answers
// @Description Stores questionID -> optionIndex answers, returns stream scores
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment/questionnaire [put]
func (ac *AssessmentController) SaveQuestionnaire(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Answers map[int]int `json:"answers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	for questionID, optionIndex := range input.Answers {
		question, ok := questionnaire.QuestionByID(questionID)
		if !ok {
			return utils.BadRequest(c, "Unknown question ID")
		}
		if optionIndex < 0 || optionIndex >= len(question.Options) {
			return utils.BadRequest(c, "Option index out of range")
		}
	}

	assessment, err := ac.loadOrCreate(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load assessment")
	}

	encoded, _ := json.Marshal(input.Answers)
	assessment.Answers = string(encoded)

	if err := ac.DB.Save(&assessment).Error; err != nil {
		return utils.InternalServerError(c, "Could not save questionnaire")
	}
	ac.logActivity(userID, "section_saved", "questionnaire")

	response := questionnaire.NewResponse(input.Answers)
	return c.JSON(fiber.Map{
		"message":       "Questionnaire saved",
		"stream_scores": response.StreamScores,
		"complete":      response.Complete(),
	})
}

// GetQuestionnaireBank godoc
// @Summary Get the questionnaire
// @Description Returns the 8-question career questionnaire with options
// @Tags assessment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /assessment/questionnaire [get]
func (ac *AssessmentController) GetQuestionnaireBank(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": questionnaire.Bank,
	})
}

// GetAssessment godoc
// @Summary Get current assessment state
// @Description Returns all saved sections with derived scores recomputed
// @Tags assessment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment [get]
func (ac *AssessmentController) GetAssessment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	assessment, err := ac.loadOrCreate(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load assessment")
	}

	semesters := decodeSemesters(assessment.Semesters)
	answers := decodeAnswers(assessment.Answers)
	letter := coverLetterOf(assessment)
	response := questionnaire.NewResponse(answers)

	return c.JSON(fiber.Map{
		"academic": grading.CalculateAcademicScore(semesters, assessment.Backlogs),
		"projects": grading.CalculateProjectScore(
			assessment.SQLAnalytics,
			assessment.PythonDataCleaning,
			assessment.DataPipeline,
		),
		"cover_letter":       letter,
		"cover_letter_score": letter.Score(),
		"questionnaire":      response,
		"sections": fiber.Map{
			"academics":     assessment.AcademicsEntered,
			"projects":      assessment.ProjectsEntered,
			"cover_letter":  assessment.CoverLetterType != string(grading.CoverLetterNone),
			"questionnaire": response.Complete(),
		},
		"finalized":    assessment.CompletedAt != "",
		"completed_at": assessment.CompletedAt,
	})
}

// Finalize godoc
// @Summary Finalize the assessment
// @Description Computes and stores the final grade snapshot once all required sections are in
// @Tags assessment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment/finalize [post]
func (ac *AssessmentController) Finalize(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	assessment, err := ac.loadOrCreate(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load assessment")
	}

	missing := map[string]string{}
	if !assessment.AcademicsEntered {
		missing["academics"] = "Academic records not submitted"
	}
	if !assessment.ProjectsEntered {
		missing["projects"] = "Project scores not submitted"
	}
	response := questionnaire.NewResponse(decodeAnswers(assessment.Answers))
	if !response.Complete() {
		missing["questionnaire"] = "All 8 questions must be answered"
	}
	if len(missing) > 0 {
		return utils.ValidationError(c, missing)
	}

	record := grading.CalculateAcademicScore(decodeSemesters(assessment.Semesters), assessment.Backlogs)
	projects := grading.CalculateProjectScore(
		assessment.SQLAnalytics,
		assessment.PythonDataCleaning,
		assessment.DataPipeline,
	)
	grade := grading.CalculateStudentGrade(record, projects, coverLetterOf(assessment))

	assessment.Grade = string(grade.Grade)
	assessment.TotalScore = grade.TotalScore
	assessment.CompletedAt = time.Now().Format(time.RFC3339)

	if err := ac.DB.Save(&assessment).Error; err != nil {
		return utils.InternalServerError(c, "Could not save assessment")
	}
	ac.logActivity(userID, "assessment_finalized", "")

	return c.JSON(fiber.Map{
		"message": "Assessment finalized",
		"grade":   grade,
	})
}
