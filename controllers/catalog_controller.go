package controller

import (
	"ekrishi/models"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardData(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Dashboard connected!",
		"schemes": models.DashboardSections(),
	})
}

func GetDiseaseData(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"symptoms": models.DiseaseSymptoms(),
		"experts":  models.DiseaseExperts(),
	})
}

func GetGovtSchemes(c *fiber.Ctx) error {
	return c.JSON(models.GovtSchemes())
}
