package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/session"
	"github.com/plantops/roundsdb/internal/utils"
	"gorm.io/gorm"
)

// RoundHandler handles round lifecycle routes
type RoundHandler struct {
	DB       *gorm.DB
	Sessions *session.Registry
}

// StartRoundRequest is the body of POST /api/rounds.
type StartRoundRequest struct {
	Operator  string `json:"operator"`
	RoundType string `json:"roundType"`
	Shift     string `json:"shift"`
}

// StartRound handles POST /api/rounds
// @Summary Start a new round
// @Description Create a round for an operator, registering the operator on first use
// @Tags Rounds
// @Accept json
// @Produce json
// @Param round body StartRoundRequest true "Round details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rounds [post]
func (h *RoundHandler) StartRound(c *fiber.Ctx) error {
	var req StartRoundRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "startRound")
	}

	// Fall back to the authenticated operator identity when the body omits it.
	if req.Operator == "" {
		if name, ok := c.Locals("operatorName").(string); ok {
			req.Operator = name
		}
	}

	ctx, err := session.StartRound(h.DB, req.Operator, req.Shift, req.RoundType)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "startRound")
	}

	h.Sessions.Put(ctx)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"roundId":   ctx.RoundID,
		"operator":  ctx.OperatorName,
		"roundType": ctx.RoundType,
		"shift":     ctx.Shift,
		"ok":        true,
	})
}

// GetRound handles GET /api/rounds/:id
// @Summary Get a round
// @Description Get a complete round with its sections and items
// @Tags Rounds
// @Produce json
// @Param id path int true "Round ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rounds/{id} [get]
func (h *RoundHandler) GetRound(c *fiber.Ctx) error {
	roundID, err := parseRoundID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "getRound")
	}

	round, err := services.GetRoundByID(h.DB, roundID)
	if err != nil {
		return serviceErrorResponse(c, err, "getRound")
	}

	return c.Status(fiber.StatusOK).JSON(round)
}

// DeleteRound handles DELETE /api/rounds/:id
// @Summary Delete a round
// @Description Delete a round and everything recorded under it
// @Tags Rounds
// @Produce json
// @Param id path int true "Round ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rounds/{id} [delete]
func (h *RoundHandler) DeleteRound(c *fiber.Ctx) error {
	roundID, err := parseRoundID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "deleteRound")
	}

	if err := services.DeleteRound(h.DB, roundID); err != nil {
		return serviceErrorResponse(c, err, "deleteRound")
	}

	h.Sessions.Remove(roundID)

	return utils.MutationSuccessResponse(c, 1)
}

// ExportRound handles GET /api/rounds/:id/export
// @Summary Export a round
// @Description Export a round as CSV or XLSX
// @Tags Rounds
// @Produce octet-stream
// @Param id path int true "Round ID"
// @Param format query string false "Export format: csv or xlsx" default(csv)
// @Success 200 {string} string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rounds/{id}/export [get]
func (h *RoundHandler) ExportRound(c *fiber.Ctx) error {
	roundID, err := parseRoundID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "exportRound")
	}

	format := c.Query("format", "csv")
	switch format {
	case "csv":
		content, filename, err := services.ExportRoundCSV(h.DB, roundID)
		if err != nil {
			return serviceErrorResponse(c, err, "exportRound")
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.SendString(content)
	case "xlsx":
		content, filename, err := services.ExportRoundXLSX(h.DB, roundID)
		if err != nil {
			return serviceErrorResponse(c, err, "exportRound")
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Send(content)
	default:
		return utils.ErrorResponse(c, fmt.Sprintf("unsupported export format %q", format), fiber.StatusBadRequest, "exportRound")
	}
}
