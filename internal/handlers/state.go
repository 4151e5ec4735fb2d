package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/templates"
	"github.com/plantops/roundsdb/internal/validation"
	"gorm.io/gorm"
)

// StateHandler handles projection and template routes
type StateHandler struct {
	DB         *gorm.DB
	RoundTypes []templates.RoundType
}

// GetState handles GET /api/state
// @Summary Get the current view
// @Description Get the most recent value of every item across all historical rounds
// @Tags State
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /state [get]
func (h *StateHandler) GetState(c *fiber.Ctx) error {
	state, err := services.LoadCurrentState(h.DB, h.RoundTypes)
	if err != nil {
		return serviceErrorResponse(c, err, "getState")
	}
	return c.Status(fiber.StatusOK).JSON(state)
}

// GetTemplates handles GET /api/templates
// @Summary Get round-type templates
// @Description Get the predeclared round types, their units, and the control mode set
// @Tags State
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /templates [get]
func (h *StateHandler) GetTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"roundTypes": h.RoundTypes,
		"modes":      validation.Modes(),
	})
}
