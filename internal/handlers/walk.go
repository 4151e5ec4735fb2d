package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plantops/roundsdb/internal/utils"
	"github.com/plantops/roundsdb/internal/validation"
)

// BeginWalkRequest is the body of POST /api/rounds/:id/walk. Sections lists
// the unit's checklist in visiting order.
type BeginWalkRequest struct {
	Unit     string   `json:"unit"`
	Sections []string `json:"sections"`
}

// BeginWalk handles POST /api/rounds/:id/walk
// @Summary Begin a unit walk
// @Description Start (or restart) the section walk for a unit of an active round
// @Tags Walk
// @Accept json
// @Produce json
// @Param id path int true "Round ID"
// @Param walk body BeginWalkRequest true "Unit and its section list"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /rounds/{id}/walk [post]
func (h *RoundHandler) BeginWalk(c *fiber.Ctx) error {
	roundID, err := parseRoundID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "beginWalk")
	}

	ctx := h.Sessions.Get(roundID)
	if ctx == nil {
		return utils.NotFoundResponse(c, "No active session for this round")
	}

	var req BeginWalkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "beginWalk")
	}

	if err := validation.Required("Unit", req.Unit); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "beginWalk")
	}
	if len(req.Sections) == 0 {
		return utils.ErrorResponse(c, "At least one section is required", fiber.StatusBadRequest, "beginWalk")
	}
	for _, name := range req.Sections {
		if err := validation.Required("Section name", name); err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "beginWalk")
		}
	}

	ctx.BeginWalk(req.Unit, req.Sections)
	current, _ := ctx.CurrentSection(req.Unit)
	completed, total := ctx.Progress(req.Unit)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"unit":           req.Unit,
		"currentSection": current,
		"completed":      completed,
		"total":          total,
		"ok":             true,
	})
}

// GetWalk handles GET /api/rounds/:id/walk
// @Summary Get walk progress
// @Description Report the section currently pointed at and the completed/total counts for a unit's walk
// @Tags Walk
// @Produce json
// @Param id path int true "Round ID"
// @Param unit query string true "Unit name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /rounds/{id}/walk [get]
func (h *RoundHandler) GetWalk(c *fiber.Ctx) error {
	roundID, err := parseRoundID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "getWalk")
	}

	unit := c.Query("unit")
	if err := validation.Required("Unit", unit); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "getWalk")
	}

	ctx := h.Sessions.Get(roundID)
	if ctx == nil {
		return utils.NotFoundResponse(c, "No active session for this round")
	}

	current, ok := ctx.CurrentSection(unit)
	if !ok {
		return utils.NotFoundResponse(c, "No walk in progress for this unit")
	}
	completed, total := ctx.Progress(unit)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"unit":           unit,
		"currentSection": current,
		"completed":      completed,
		"total":          total,
		"ok":             true,
	})
}

// RemoveWalkSection handles DELETE /api/rounds/:id/walk
// @Summary Remove a section from a walk
// @Description Drop a section from a unit's walk after its items were removed
// @Tags Walk
// @Produce json
// @Param id path int true "Round ID"
// @Param unit query string true "Unit name"
// @Param section query string true "Section name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /rounds/{id}/walk [delete]
func (h *RoundHandler) RemoveWalkSection(c *fiber.Ctx) error {
	roundID, err := parseRoundID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "removeWalkSection")
	}

	unit := c.Query("unit")
	section := c.Query("section")
	if err := validation.Required("Unit", unit); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "removeWalkSection")
	}
	if err := validation.Required("Section name", section); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "removeWalkSection")
	}

	ctx := h.Sessions.Get(roundID)
	if ctx == nil {
		return utils.NotFoundResponse(c, "No active session for this round")
	}
	if _, total := ctx.Progress(unit); total == 0 {
		return utils.NotFoundResponse(c, "No walk in progress for this unit")
	}

	ctx.RemoveSection(unit, section)

	return utils.MutationSuccessResponse(c, 1)
}
