package controllers_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/backend/models"
)

func TestAdminRecalculateStreaks(t *testing.T) {
	env := newTestEnv(t)
	email := "ada@finitestate.io"
	now := time.Now().UTC()

	require.NoError(t, env.Store.UpsertUser(email, ""))
	for i, taskID := range []string{"onboard-1", "onboard-2", "onboard-3"} {
		completedAt := now.AddDate(0, 0, i-2) // three consecutive days ending today
		require.NoError(t, env.Store.RecordCompletion(email, taskID, completedAt, "manual"))
	}

	// stored row drifted away from history
	require.NoError(t, env.Store.UpsertGamification(email, models.UserGamification{
		UserEmail:     email,
		CurrentStreak: 99,
		LongestStreak: 99,
	}))

	adminToken := env.token(t, "admin@finitestate.io")
	resp, result := doRequest(t, env.App, "POST", "/api/admin/recalculate-streaks", adminToken, map[string]string{
		"email": email,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := responseData(t, result)
	assert.Equal(t, float64(3), data["current_streak"])
	assert.Equal(t, float64(3), data["longest_streak"])

	stored, err := env.Store.GetGamification(email)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 3, stored.CurrentStreak)
	assert.Equal(t, 3, stored.LongestStreak)
	assert.Equal(t, []string{"first-steps", "streak-3"}, stored.BadgeList())
}

func TestAdminRecalculateStreaksNoCompletions(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.token(t, "admin@finitestate.io")

	resp, result := doRequest(t, env.App, "POST", "/api/admin/recalculate-streaks", adminToken, map[string]string{
		"email": "nobody@finitestate.io",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := responseData(t, result)
	assert.Equal(t, "No completions found", data["message"])
	assert.Equal(t, float64(0), data["current_streak"])
}

func TestAdminRecalculateStreaksRequiresEmail(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.token(t, "admin@finitestate.io")

	resp, _ := doRequest(t, env.App, "POST", "/api/admin/recalculate-streaks", adminToken, map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminClearUser(t *testing.T) {
	env := newTestEnv(t)
	email := "ada@finitestate.io"
	now := time.Now().UTC()

	require.NoError(t, env.Store.UpsertUser(email, ""))
	require.NoError(t, env.Store.RecordCompletion(email, "onboard-1", now, "manual"))
	require.NoError(t, env.Store.UpsertModuleProgress(email, "initial-onboarding", models.ProgressInProgress, now))
	require.NoError(t, env.Store.UpsertGamification(email, models.UserGamification{
		UserEmail:     email,
		CurrentStreak: 1,
		LongestStreak: 1,
	}))

	adminToken := env.token(t, "admin@finitestate.io")
	resp, _ := doRequest(t, env.App, "POST", "/api/admin/clear-user", adminToken, map[string]string{
		"email": email,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	user, err := env.Store.GetUser(email)
	require.NoError(t, err)
	assert.Nil(t, user)

	completions, err := env.Store.GetCompletions(email)
	require.NoError(t, err)
	assert.Empty(t, completions)

	progress, err := env.Store.GetModuleProgress(email)
	require.NoError(t, err)
	assert.Empty(t, progress)

	gamification, err := env.Store.GetGamification(email)
	require.NoError(t, err)
	assert.Nil(t, gamification)
}
