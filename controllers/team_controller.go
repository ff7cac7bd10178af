package controller

import (
	"context"

	"ekrishi/models"
	"ekrishi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TeamRepository is the persistence the team endpoints need.
type TeamRepository interface {
	InitSchema(ctx context.Context) error
	Insert(ctx context.Context, name, captain string) (uint, error)
	ListAll(ctx context.Context) ([]models.Team, error)
}

type TeamController struct {
	Teams  TeamRepository
	Logger *logrus.Entry
}

func NewTeamController(teams TeamRepository, logger *logrus.Entry) *TeamController {
	return &TeamController{
		Teams:  teams,
		Logger: logger,
	}
}

type CreateTeamRequest struct {
	Name    string `json:"name"`
	Captain string `json:"captain"`
}

// InitDB creates the team table on demand.
func (tc *TeamController) InitDB(c *fiber.Ctx) error {
	if err := tc.Teams.InitSchema(c.UserContext()); err != nil {
		utils.LogError("init_db_failed", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Database initialization failed")
	}
	return c.SendString("Database initialized")
}

func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	id, err := tc.Teams.Insert(c.UserContext(), req.Name, req.Captain)
	if err != nil {
		utils.LogError("team_insert_failed", err, map[string]interface{}{"name": req.Name})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add team", nil)
	}

	tc.Logger.WithField("team_id", id).Info("Team created")
	return c.JSON(fiber.Map{"id": id})
}

func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	teams, err := tc.Teams.ListAll(c.UserContext())
	if err != nil {
		utils.LogError("team_list_failed", err, nil)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve teams", nil)
	}
	return c.JSON(teams)
}
