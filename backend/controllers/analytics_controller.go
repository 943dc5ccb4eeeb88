package controllers

import (
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg}
}

// GetAssessmentAnalytics godoc
// @Summary Assessment analytics
// @Description Returns finalized assessments with grade distribution and averages
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/analytics/assessments [get]
func (anc *AnalyticsController) GetAssessmentAnalytics(c *fiber.Ctx) error {
	var assessments []models.Assessment
	if err := anc.DB.Where("completed_at <> ''").Find(&assessments).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	gradeDistribution := map[string]int{}
	totalScore := 0.0
	var students []fiber.Map

	for _, assessment := range assessments {
		var user models.User
		if err := anc.DB.First(&user, assessment.UserID).Error; err != nil {
			continue
		}

		gradeDistribution[assessment.Grade]++
		totalScore += assessment.TotalScore

		students = append(students, fiber.Map{
			"user_id":      user.ID,
			"username":     user.Username,
			"batch":        user.Batch,
			"college":      user.College,
			"grade":        assessment.Grade,
			"total_score":  assessment.TotalScore,
			"completed_at": assessment.CompletedAt,
		})
	}

	averageScore := 0.0
	if len(assessments) > 0 {
		averageScore = totalScore / float64(len(assessments))
	}

	return c.JSON(fiber.Map{
		"finalized":          len(assessments),
		"average_score":      averageScore,
		"grade_distribution": gradeDistribution,
		"students":           students,
	})
}

// GetUserActivity godoc
// @Summary Per-user activity log
// @Description Returns a user's assessment activity rows, newest first
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/analytics/users/{id}/activity [get]
func (anc *AnalyticsController) GetUserActivity(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var activity []models.UserActivity
	if err := anc.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&activity).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"user_id":  userID,
		"activity": activity,
	})
}
