package controller

import (
	"math"

	"ekrishi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdvisoryController serves crop and disease guidance plus expert questions.
type AdvisoryController struct {
	Weather     utils.WeatherProvider
	DefaultCity string
	Logger      *logrus.Entry
}

func NewAdvisoryController(weather utils.WeatherProvider, defaultCity string, logger *logrus.Entry) *AdvisoryController {
	return &AdvisoryController{
		Weather:     weather,
		DefaultCity: defaultCity,
		Logger:      logger,
	}
}

type QuestionRequest struct {
	Query string `json:"query" validate:"notblank"`
}

type SpeakRequest struct {
	Text string `json:"text"`
}

func (ac *AdvisoryController) RecommendCrop(c *fiber.Ctx) error {
	var req utils.CropConditions
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	crop := utils.RecommendCrop(req)
	ac.Logger.WithFields(logrus.Fields{
		"soil":        req.Soil,
		"water":       req.Water,
		"last_crop":   req.LastCrop,
		"rainfall":    req.Rainfall,
		"temperature": req.Temperature,
		"crop":        crop,
	}).Debug("Crop recommended")

	return c.JSON(fiber.Map{"manualRecommendation": crop})
}

// PredictDisease looks up the current weather for ?city= and classifies fungal disease risk.
func (ac *AdvisoryController) PredictDisease(c *fiber.Ctx) error {
	city := c.Query("city", ac.DefaultCity)
	if city == "" {
		city = ac.DefaultCity
	}

	weather, err := ac.Weather.CurrentWeather(c.UserContext(), city)
	if err != nil {
		utils.LogError("weather_fetch_failed", err, map[string]interface{}{"city": city})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch weather data", err)
	}

	celsius := utils.KelvinToCelsius(weather.TemperatureKelvin)
	risk := utils.ClassifyDiseaseRisk(weather.Humidity, celsius)

	return c.JSON(fiber.Map{
		"diseaseRisk":        risk.Message(),
		"riskLevel":          risk,
		"city":               weather.City,
		"temperatureCelsius": math.Round(celsius*10) / 10,
		"humidity":           weather.Humidity,
	})
}

func (ac *AdvisoryController) SubmitQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please enter a question.", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please enter a question.", nil)
	}

	utils.LogEvent("question_submitted", map[string]interface{}{
		"length": len(req.Query),
		"ip":     c.IP(),
	})
	return c.JSON(fiber.Map{"message": "✅ Question sent to experts! You'll get a reply soon."})
}

// SpeakText acknowledges text for the client's speech synthesis widget.
func (ac *AdvisoryController) SpeakText(c *fiber.Ctx) error {
	var req SpeakRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	return c.JSON(fiber.Map{"message": "Speaking: " + req.Text})
}
