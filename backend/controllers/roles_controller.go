package controllers

import (
	"project/backend/config"
	"project/backend/roles"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RolesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRolesController(db *gorm.DB, cfg *config.Config) *RolesController {
	return &RolesController{DB: db, Cfg: cfg}
}

// GetRoles godoc
// @Summary Browse the role catalog
// @Description Returns approved roles, optionally filtered by stream
// @Tags roles
// @Produce json
// @Param stream query string false "Filter by stream ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /roles [get]
func (rc *RolesController) GetRoles(c *fiber.Ctx) error {
	stream := c.Query("stream")
	if stream == "" {
		return c.JSON(fiber.Map{
			"roles": roles.Catalog,
			"total": len(roles.Catalog),
		})
	}

	if _, ok := roles.StreamNames[roles.Stream(stream)]; !ok {
		return utils.BadRequest(c, "Unknown stream")
	}

	filtered := roles.ByStream(roles.Stream(stream))
	return c.JSON(fiber.Map{
		"roles":       filtered,
		"total":       len(filtered),
		"stream":      stream,
		"stream_name": roles.StreamNames[roles.Stream(stream)],
	})
}

// GetRole godoc
// @Summary Get a single role
// @Description Returns one catalog role by ID
// @Tags roles
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /roles/{id} [get]
func (rc *RolesController) GetRole(c *fiber.Ctx) error {
	role, ok := roles.ByID(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Role not found")
	}

	return c.JSON(fiber.Map{
		"role":        role,
		"salary":      role.Salary.String(),
		"stream_name": roles.StreamNames[role.Stream],
	})
}

// GetStreams godoc
// @Summary List career streams
// @Description Returns the four streams in canonical order with role counts
// @Tags roles
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /roles/streams [get]
func (rc *RolesController) GetStreams(c *fiber.Ctx) error {
	var result []fiber.Map
	for _, stream := range roles.StreamOrder {
		result = append(result, fiber.Map{
			"id":    stream,
			"name":  roles.StreamNames[stream],
			"roles": len(roles.ByStream(stream)),
		})
	}
	return c.JSON(fiber.Map{
		"streams": result,
	})
}
