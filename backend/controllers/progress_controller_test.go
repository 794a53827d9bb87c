package controllers_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/backend/controllers"
	"portal/backend/middleware"
	"portal/backend/models"
)

func TestCompleteTaskFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "ada@finitestate.io")

	// first task starts the module
	resp, result := doRequest(t, env.App, "POST", "/api/progress/complete", token, map[string]string{
		"task_id": "onboard-1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := responseData(t, result)
	assert.Equal(t, "onboard-1", data["task_id"])
	assert.Equal(t, false, data["module_completed"])
	gamification := data["gamification"].(map[string]interface{})
	assert.Equal(t, float64(1), gamification["CurrentStreak"])
	assert.Equal(t, "first-steps", gamification["BadgesEarned"])
	assert.Empty(t, gamification["ShieldSegments"])

	// finishing the remaining tasks completes the module
	for _, id := range []string{"onboard-2", "onboard-3", "onboard-4"} {
		resp, result = doRequest(t, env.App, "POST", "/api/progress/complete", token, map[string]string{
			"task_id": id,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "task %s", id)
	}
	data = responseData(t, result)
	assert.Equal(t, true, data["module_completed"])
	gamification = data["gamification"].(map[string]interface{})
	assert.Equal(t, "orientation", gamification["ShieldSegments"])

	// the module reads completed, its successor unlocks
	resp, result = doRequest(t, env.App, "GET", "/api/catalog/modules", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	statuses := map[string]string{}
	for _, raw := range responseData(t, result)["modules"].([]interface{}) {
		m := raw.(map[string]interface{})
		statuses[m["id"].(string)] = m["status"].(string)
	}
	assert.Equal(t, "completed", statuses["initial-onboarding"])
	assert.Equal(t, "available", statuses["project-setup"])
	assert.Equal(t, "locked", statuses["document-management"])

	resp, result = doRequest(t, env.App, "GET", "/api/progress/summary", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := responseData(t, result)["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["modules_completed"])
	assert.Equal(t, float64(13), summary["total_modules"])
	assert.Equal(t, float64(4), summary["tasks_completed"])
	assert.Equal(t, float64(1), summary["current_streak"])
}

func TestCompleteTaskIdempotent(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "ada@finitestate.io")

	for i := 0; i < 3; i++ {
		resp, _ := doRequest(t, env.App, "POST", "/api/progress/complete", token, map[string]string{
			"task_id": "onboard-1",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	completions, err := env.Store.GetCompletions("ada@finitestate.io")
	require.NoError(t, err)
	assert.Len(t, completions, 1)

	gamification, err := env.Store.GetGamification("ada@finitestate.io")
	require.NoError(t, err)
	require.NotNil(t, gamification)
	assert.Equal(t, 1, gamification.CurrentStreak)
}

func TestCompleteTaskUnknownTask(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "ada@finitestate.io")

	resp, _ := doRequest(t, env.App, "POST", "/api/progress/complete", token, map[string]string{
		"task_id": "no-such-task",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCompleteTaskWrongModule(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "ada@finitestate.io")

	resp, _ := doRequest(t, env.App, "POST", "/api/progress/complete", token, map[string]string{
		"module_id": "project-setup",
		"task_id":   "onboard-1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Streak progression across day boundaries, with the clock under test control.
func TestCompleteTaskStreakAcrossDays(t *testing.T) {
	env := newTestEnv(t)

	pc := controllers.NewProgressController(env.Store, env.Catalog, env.Cfg)
	current := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	pc.Now = func() time.Time { return current }

	app := fiber.New()
	app.Post("/complete", func(c *fiber.Ctx) error {
		c.Locals(middleware.EmailLocal, "ada@finitestate.io")
		return pc.CompleteTask(c)
	})

	complete := func(taskID string) map[string]interface{} {
		t.Helper()
		resp, result := doRequest(t, app, "POST", "/complete", "", map[string]string{"task_id": taskID})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		return responseData(t, result)["gamification"].(map[string]interface{})
	}

	gamification := complete("onboard-1")
	assert.Equal(t, float64(1), gamification["CurrentStreak"])

	// next day extends the streak
	current = current.AddDate(0, 0, 1)
	gamification = complete("onboard-2")
	assert.Equal(t, float64(2), gamification["CurrentStreak"])

	// a second completion the same day changes nothing
	gamification = complete("onboard-3")
	assert.Equal(t, float64(2), gamification["CurrentStreak"])
	assert.Equal(t, float64(2), gamification["LongestStreak"])

	// a gap resets the current streak but keeps the longest
	current = current.AddDate(0, 0, 3)
	gamification = complete("onboard-4")
	assert.Equal(t, float64(1), gamification["CurrentStreak"])
	assert.Equal(t, float64(2), gamification["LongestStreak"])
}

func TestGetProgressEmpty(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "new@finitestate.io")

	resp, result := doRequest(t, env.App, "GET", "/api/progress", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := responseData(t, result)
	assert.Empty(t, data["progress"])
	assert.Empty(t, data["completions"])
	assert.Nil(t, data["gamification"])
}

func TestGetModuleDetails(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "ada@finitestate.io")
	require.NoError(t, env.Store.UpsertUser("ada@finitestate.io", ""))
	require.NoError(t, env.Store.RecordCompletion("ada@finitestate.io", "onboard-1", time.Now().UTC(), string(models.VerificationManual)))

	resp, result := doRequest(t, env.App, "GET", "/api/catalog/modules/initial-onboarding", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := responseData(t, result)
	assert.Equal(t, []interface{}{"onboard-1"}, data["completed_tasks"])
	assert.Len(t, data["tasks"], 4)

	resp, _ = doRequest(t, env.App, "GET", "/api/catalog/modules/no-such-module", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
