package controller

import (
	"strings"
	"testing"

	"ekrishi/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthApp() (*fiber.App, *AuthController) {
	ac := NewAuthController(store.NewUserStore(), bcrypt.MinCost, testLogger())
	app := fiber.New()
	app.Post("/signup", ac.Signup)
	app.Post("/login", ac.Login)
	return app, ac
}

func TestSignupThenLogin(t *testing.T) {
	app, ac := newAuthApp()

	status, body := doJSON(t, app, "POST", "/signup", map[string]string{
		"name": "Kiran", "email": "kiran@example.com", "password": "s3cret-pass",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Signup successful! Please log in.", body["message"])

	user, ok := ac.Users.FindByEmail("kiran@example.com")
	require.True(t, ok)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	status, body = doJSON(t, app, "POST", "/login", map[string]string{
		"email": "kiran@example.com", "password": "s3cret-pass",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Login successful!", body["message"])
	assert.Equal(t, LoginRedirect, body["redirect"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, ac := newAuthApp()
	require.NoError(t, ac.RegisterUser("Kiran", "kiran@example.com", "first"))

	status, body := doJSON(t, app, "POST", "/signup", map[string]string{
		"name": "Other", "email": "kiran@example.com", "password": "second",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Email already registered!", body["message"])
	user, ok := ac.Users.FindByEmail("kiran@example.com")
	require.True(t, ok)
	assert.Equal(t, "Kiran", user.Name)

	// The original password still works.
	status, _ = doJSON(t, app, "POST", "/login", map[string]string{"email": "kiran@example.com", "password": "first"})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestSignupValidation(t *testing.T) {
	app, ac := newAuthApp()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"name": "A", "password": "x"}},
		{"missing password", map[string]string{"name": "A", "email": "a@example.com"}},
		{"malformed email", map[string]string{"name": "A", "email": "a-at-example", "password": "x"}},
		{"password too long", map[string]string{"name": "A", "email": "b@example.com", "password": strings.Repeat("p", 80)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doJSON(t, app, "POST", "/signup", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			if email := tt.body["email"]; email != "" {
				_, stored := ac.Users.FindByEmail(email)
				assert.False(t, stored)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, ac := newAuthApp()
	require.NoError(t, ac.RegisterUser("Kiran", "kiran@example.com", "right"))

	status, body := doJSON(t, app, "POST", "/login", map[string]string{"email": "kiran@example.com", "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password.", body["message"])
	assert.Nil(t, body["redirect"])

	status, body = doJSON(t, app, "POST", "/login", map[string]string{"email": "ghost@example.com", "password": "right"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password.", body["message"])
}
