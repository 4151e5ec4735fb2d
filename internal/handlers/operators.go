package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/utils"
	"github.com/plantops/roundsdb/internal/validation"
	"gorm.io/gorm"
)

// OperatorHandler handles operator and reporting routes
type OperatorHandler struct {
	DB *gorm.DB
}

// ListOperators handles GET /api/operators
// @Summary List operators
// @Description List every registered operator
// @Tags Operators
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /operators [get]
func (h *OperatorHandler) ListOperators(c *fiber.Ctx) error {
	operators, err := services.GetAllOperators(h.DB)
	if err != nil {
		return serviceErrorResponse(c, err, "listOperators")
	}
	return c.Status(fiber.StatusOK).JSON(operators)
}

// OperatorRounds handles GET /api/operators/:name/rounds
// @Summary Get an operator's round history
// @Description Get round summaries for one operator, newest first
// @Tags Operators
// @Produce json
// @Param name path string true "Operator name"
// @Success 200 {array} services.RoundSummary
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /operators/{name}/rounds [get]
func (h *OperatorHandler) OperatorRounds(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := validation.Required("Operator name", name); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "operatorRounds")
	}

	summaries, err := services.GetOperatorRounds(h.DB, name)
	if err != nil {
		return serviceErrorResponse(c, err, "operatorRounds")
	}
	return c.Status(fiber.StatusOK).JSON(summaries)
}

// PeriodSummary handles GET /api/summary
// @Summary Get a period summary
// @Description Get per-operator, per-round-type counts for rounds between two dates
// @Tags Operators
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} services.PeriodSummary
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /summary [get]
func (h *OperatorHandler) PeriodSummary(c *fiber.Ctx) error {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		return utils.ErrorResponse(c, "start and end query parameters are required", fiber.StatusBadRequest, "periodSummary")
	}

	summaries, err := services.GetRoundSummaryForPeriod(h.DB, start, end)
	if err != nil {
		return serviceErrorResponse(c, err, "periodSummary")
	}
	return c.Status(fiber.StatusOK).JSON(summaries)
}
