package controllers

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"portal/backend/config"
	"portal/backend/content"
	"portal/backend/middleware"
	"portal/backend/models"
	"portal/backend/store"
	"portal/backend/training"
	"portal/backend/utils"
)

const defaultQuestionCount = 12

type AssessmentController struct {
	Store   store.Store
	Catalog *content.Catalog
	Cfg     *config.Config
	Rng     *rand.Rand
}

func NewAssessmentController(s store.Store, catalog *content.Catalog, cfg *config.Config) *AssessmentController {
	return &AssessmentController{
		Store:   s,
		Catalog: catalog,
		Cfg:     cfg,
		Rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetQuestions godoc
// @Summary Get a balanced random subset of assessment questions
// @Tags assessment
// @Produce json
// @Param count query int false "number of questions" default(12)
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /assessment/questions [get]
func (ac *AssessmentController) GetQuestions(c *fiber.Ctx) error {
	count := c.QueryInt("count", defaultQuestionCount)
	if count <= 0 {
		return utils.BadRequest(c, "count must be positive")
	}
	questions := training.SelectQuestions(ac.Catalog.Questions, count, ac.Rng)
	return utils.Success(c, fiber.StatusOK, fiber.Map{"questions": questions})
}

type submitResultRequest struct {
	Type             models.AssessmentType `json:"type"`
	Score            int                   `json:"score"`
	TotalQuestions   int                   `json:"total_questions"`
	Answers          map[string]string     `json:"answers"`
	TimeTakenSeconds int                   `json:"time_taken_seconds"`
}

// SubmitResult godoc
// @Summary Save a pre or post assessment result
// @Tags assessment
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment [post]
func (ac *AssessmentController) SubmitResult(c *fiber.Ctx) error {
	email := c.Locals(middleware.EmailLocal).(string)

	var req submitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if req.Type != models.AssessmentPre && req.Type != models.AssessmentPost {
		return utils.BadRequest(c, "type must be pre or post")
	}
	if req.TotalQuestions <= 0 || req.Score < 0 || req.Score > req.TotalQuestions {
		return utils.BadRequest(c, "invalid score")
	}

	if err := ac.Store.UpsertUser(email, ""); err != nil {
		return utils.InternalServerError(c, "Failed to save user")
	}

	result := models.AssessmentResult{
		UserEmail:        email,
		AssessmentType:   req.Type,
		Score:            req.Score,
		TotalQuestions:   req.TotalQuestions,
		TimeTakenSeconds: req.TimeTakenSeconds,
	}
	if err := result.EncodeAnswers(req.Answers); err != nil {
		return utils.BadRequest(c, "Invalid answers")
	}
	if err := ac.Store.InsertAssessmentResult(&result); err != nil {
		return utils.InternalServerError(c, "Failed to save assessment result")
	}

	return utils.Created(c, fiber.Map{"result": result})
}

// GetResults godoc
// @Summary Get the latest pre/post results with the improvement comparison
// @Description Returns the most recent result of each type, the improvement view, and the weak areas, knowledge gap topics, module recommendations and per-question review derived from the post result.
// @Tags assessment
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment [get]
func (ac *AssessmentController) GetResults(c *fiber.Ctx) error {
	email := c.Locals(middleware.EmailLocal).(string)

	results, err := ac.Store.GetAssessmentResults(email)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch assessment results")
	}

	// results are newest first; keep the most recent of each type
	var pre, post *models.AssessmentResult
	for i := range results {
		switch {
		case results[i].AssessmentType == models.AssessmentPre && pre == nil:
			pre = &results[i]
		case results[i].AssessmentType == models.AssessmentPost && post == nil:
			post = &results[i]
		}
	}

	response := fiber.Map{"pre": pre, "post": post}
	if post != nil {
		response["comparison"] = training.CompareAssessments(pre, post)

		answers, err := post.DecodeAnswers()
		if err != nil {
			return utils.InternalServerError(c, "Failed to decode answers")
		}
		administered := ac.administeredQuestions(answers)
		score := training.CalculateResults(administered, answers)
		weak := training.WeakAreas(score)
		response["category_scores"] = score.CategoryScores
		response["weak_areas"] = weak
		response["knowledge_gaps"] = training.KnowledgeGaps(administered, answers)
		response["recommended_modules"] = training.RecommendedModules(weak)
		response["review"] = training.ReviewItems(administered, answers)
	}

	return utils.Success(c, fiber.StatusOK, response)
}

// administeredQuestions reconstructs the administered subset from the stored
// answer map: questions the user never saw have no key in it.
func (ac *AssessmentController) administeredQuestions(answers map[string]string) []models.AssessmentQuestion {
	administered := make([]models.AssessmentQuestion, 0, len(answers))
	for _, q := range ac.Catalog.Questions {
		if _, ok := answers[q.ID]; ok {
			administered = append(administered, q)
		}
	}
	return administered
}
