package routes

import (
	controller "ekrishi/controllers"
	"ekrishi/middleware"
	"ekrishi/models"
	"ekrishi/store"
	"ekrishi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Dependencies are the stores and collaborators shared by all routes.
// They are built once in main.
type Dependencies struct {
	Teams   controller.TeamRepository
	Users   *store.UserStore
	Doctors *store.List[models.Doctor]
	Rentals *store.List[models.DroneRental]
	Orders  *store.List[models.Order]
	Weather utils.WeatherProvider

	DefaultCity string
	BcryptCost  int

	// AuthRateLimit is the per-IP limit on /login and /signup per minute; 0 disables it.
	AuthRateLimit int
	// RateLimitStorage backs the limiter; nil keeps counters in memory.
	RateLimitStorage fiber.Storage
}

func SetupAuthRoutes(app fiber.Router, deps Dependencies) {
	authController := controller.NewAuthController(deps.Users, deps.BcryptCost, utils.ComponentLogger("auth"))

	limit := middleware.AuthRateLimiter(deps.AuthRateLimit, deps.RateLimitStorage)
	app.Post("/signup", limit, authController.Signup)
	app.Post("/login", limit, authController.Login)
}

func SetupAPIRoutes(app fiber.Router, deps Dependencies) {
	teamController := controller.NewTeamController(deps.Teams, utils.ComponentLogger("team"))
	advisoryController := controller.NewAdvisoryController(deps.Weather, deps.DefaultCity, utils.ComponentLogger("advisory"))
	registryController := controller.NewRegistryController(deps.Doctors, deps.Rentals, deps.Orders, utils.ComponentLogger("registry"))

	// Teams
	app.Get("/init-db", teamController.InitDB)
	app.Get("/teams", teamController.GetTeams)
	app.Post("/teams", teamController.CreateTeam)

	// Advisory
	app.Post("/crop-recommendation", advisoryController.RecommendCrop)
	app.Get("/predict-disease", advisoryController.PredictDisease)
	app.Post("/submit-question", advisoryController.SubmitQuestion)
	app.Post("/speak-text", advisoryController.SpeakText)

	// Static catalog
	app.Get("/dashboard-data", controller.GetDashboardData)
	app.Get("/disease-data", controller.GetDiseaseData)
	app.Get("/govt-schemes", controller.GetGovtSchemes)

	// Registries
	app.Post("/register-doctor", registryController.RegisterDoctor)
	app.Get("/doctors-list", registryController.GetDoctors)
	app.Post("/rent-drone", registryController.RentDrone)
	app.Get("/drone-rentals", registryController.GetDroneRentals)
	app.Post("/place-order", registryController.PlaceOrder)
	app.Get("/orders", registryController.GetOrders)
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("🌾 Welcome to the eKrishi Server!")
	})

	api := app.Group("", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	SetupAuthRoutes(api, deps)
	SetupAPIRoutes(api, deps)

	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "The requested resource was not found", nil)
	})

	utils.ComponentLogger("routes").Info("Routes initialized successfully")
}
