package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portal/backend/config"
	"portal/backend/store"
	"portal/backend/utils"
)

type UsersController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewUsersController(s store.Store, cfg *config.Config) *UsersController {
	return &UsersController{Store: s, Cfg: cfg}
}

type enterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Enter godoc
// @Summary Enter the portal by email
// @Description Registers or touches the user and returns an access token. Only allowlisted email domains are accepted.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /users [post]
func (uc *UsersController) Enter(c *fiber.Ctx) error {
	var req enterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return utils.BadRequest(c, "Email required")
	}
	if !uc.domainAllowed(email) {
		return utils.Forbidden(c, "Access denied")
	}

	if err := uc.Store.UpsertUser(email, strings.TrimSpace(req.DisplayName)); err != nil {
		return utils.InternalServerError(c, "Failed to save user")
	}

	token, err := utils.GenerateToken(email, uc.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Failed to issue token")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"email": email,
		"token": token,
	})
}

func (uc *UsersController) domainAllowed(email string) bool {
	if len(uc.Cfg.AllowedEmailDomains) == 0 {
		return true
	}
	for _, domain := range uc.Cfg.AllowedEmailDomains {
		if strings.HasSuffix(email, "@"+domain) {
			return true
		}
	}
	return false
}
