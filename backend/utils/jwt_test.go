package utils

import (
	"net/http/httptest"
	"testing"

	"project/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	token, err := GenerateJWTToken(42, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		userID, err := ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.JSON(fiber.Map{"user_id": userID})
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExtractUserIDFromTokenRejectsBadToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		_, err := ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	// Missing header
	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Token signed with another secret
	otherToken, err := GenerateJWTToken(1, &config.Config{JWTSecret: "othersecret"})
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", otherToken)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
