package controller

import (
	"errors"
	"fmt"
	"strings"

	"ekrishi/models"
	"ekrishi/store"
	"ekrishi/utils"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// LoginRedirect is where the web client goes after a successful login.
const LoginRedirect = "dashboard.html"

type SignupRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthController checks credentials against the in-memory user registry.
// It does not issue sessions or tokens.
type AuthController struct {
	Users      *store.UserStore
	BcryptCost int
	Logger     *logrus.Entry
}

func NewAuthController(users *store.UserStore, bcryptCost int, logger *logrus.Entry) *AuthController {
	return &AuthController{
		Users:      users,
		BcryptCost: bcryptCost,
		Logger:     logger,
	}
}

// RegisterUser hashes password and stores the account.
// Returns store.ErrEmailTaken for a known email.
func (ac *AuthController) RegisterUser(name, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), ac.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return ac.Users.Create(models.User{
		Name:         name,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hashedPassword),
	})
}

func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := checkmail.ValidateFormat(strings.TrimSpace(req.Email)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please enter a valid email address.", nil)
	}

	// Cheap check before paying for bcrypt; Create re-checks under its lock.
	if _, exists := ac.Users.FindByEmail(strings.TrimSpace(req.Email)); exists {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered!", nil)
	}

	err := ac.RegisterUser(req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered!", nil)
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at most 72 bytes.", nil)
	case err != nil:
		utils.LogError("signup_failed", err, map[string]interface{}{"ip": c.IP()})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user", nil)
	}

	ac.Logger.WithField("ip", c.IP()).Info("User signed up")
	return c.JSON(fiber.Map{"message": "Signup successful! Please log in."})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	user, ok := ac.Users.FindByEmail(strings.TrimSpace(req.Email))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ac.Logger.WithField("ip", c.IP()).Warn("Failed login attempt")
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password.", nil)
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful!",
		"redirect": LoginRedirect,
	})
}
