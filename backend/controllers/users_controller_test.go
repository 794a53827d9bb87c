package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnterAllowedDomain(t *testing.T) {
	env := newTestEnv(t)

	resp, result := doRequest(t, env.App, "POST", "/api/users", "", map[string]string{
		"email":        "Ada@FiniteState.io",
		"display_name": "Ada",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := responseData(t, result)
	assert.Equal(t, "ada@finitestate.io", data["email"])
	assert.NotEmpty(t, data["token"])

	user, err := env.Store.GetUser("ada@finitestate.io")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ada@finitestate.io", user.Email)
	assert.Equal(t, "Ada", user.DisplayName)
}

func TestEnterDeniedDomain(t *testing.T) {
	env := newTestEnv(t)

	resp, result := doRequest(t, env.App, "POST", "/api/users", "", map[string]string{
		"email": "eve@example.com",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", result["message"])

	user, _ := env.Store.GetUser("eve@example.com")
	assert.Nil(t, user)
}

func TestEnterInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	for _, email := range []string{"", "   ", "no-at-sign"} {
		resp, _ := doRequest(t, env.App, "POST", "/api/users", "", map[string]string{"email": email})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "email %q", email)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := doRequest(t, env.App, "GET", "/api/progress", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, env.App, "GET", "/api/progress", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequiresAdminEmail(t *testing.T) {
	env := newTestEnv(t)
	userToken := env.token(t, "ada@finitestate.io")

	resp, _ := doRequest(t, env.App, "POST", "/api/admin/clear-user", userToken, map[string]string{
		"email": "ada@finitestate.io",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, env.App, "POST", "/api/admin/clear-user", "", map[string]string{
		"email": "ada@finitestate.io",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
