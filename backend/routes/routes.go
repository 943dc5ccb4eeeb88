package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	app.Get("/api/user/profile", authMiddleware, authController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, authController.UpdateProfile)

	// Assessment routes
	assessmentController := controllers.NewAssessmentController(db, cfg)
	assessment := app.Group("/api/assessment", authMiddleware)
	assessment.Get("/", assessmentController.GetAssessment)
	assessment.Put("/academics", assessmentController.SaveAcademics)
	assessment.Put("/projects", assessmentController.SaveProjects)
	assessment.Put("/cover-letter", assessmentController.SaveCoverLetter)
	assessment.Get("/questionnaire", assessmentController.GetQuestionnaireBank)
	assessment.Put("/questionnaire", assessmentController.SaveQuestionnaire)
	assessment.Post("/finalize", assessmentController.Finalize)

	// Results routes
	resultsController := controllers.NewResultsController(db, cfg)
	results := app.Group("/api/results", authMiddleware)
	results.Get("/grade", resultsController.GetGrade)
	results.Get("/roles", resultsController.GetRoles)
	results.Get("/stream", resultsController.GetStream)

	// Role catalog routes
	rolesController := controllers.NewRolesController(db, cfg)
	catalog := app.Group("/api/roles", authMiddleware)
	catalog.Get("/", rolesController.GetRoles)
	catalog.Get("/streams", rolesController.GetStreams)
	catalog.Get("/:id", rolesController.GetRole)

	// Admin analytics routes
	analyticsController := controllers.NewAnalyticsController(db, cfg)
	analytics := app.Group("/api/admin/analytics", authMiddleware, adminMiddleware)
	analytics.Get("/assessments", analyticsController.GetAssessmentAnalytics)
	analytics.Get("/users/:id/activity", analyticsController.GetUserActivity)
}
