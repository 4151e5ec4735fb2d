package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/session"
	"github.com/plantops/roundsdb/internal/types"
	"github.com/plantops/roundsdb/internal/utils"
	"github.com/plantops/roundsdb/internal/validation"
	"gorm.io/gorm"
)

// ItemHandler handles item persistence routes
type ItemHandler struct {
	DB       *gorm.DB
	Sessions *session.Registry
}

// SaveSectionRequest is the body of POST /api/rounds/:id/sections. Items
// accepts either a single item object or an array.
type SaveSectionRequest struct {
	Unit        string                             `json:"unit"`
	SectionName string                             `json:"sectionName"`
	Items       types.FlexList[services.ItemInput] `json:"items"`
}

// ItemTargetRequest identifies an item across rounds for PUT/DELETE
// /api/items. Item carries the replacement values on update.
type ItemTargetRequest struct {
	Unit        string             `json:"unit"`
	SectionName string             `json:"sectionName"`
	Description string             `json:"description"`
	Item        services.ItemInput `json:"item"`
}

// validateItemInputs checks submitted items before they reach persistence.
// requireValue is set on the reading-submission paths, where every item must
// carry a recorded value; the cross-round editor only fixes identity fields.
func validateItemInputs(items []services.ItemInput, requireValue bool) error {
	for _, item := range items {
		if err := validation.Required("Item description", item.Description); err != nil {
			return err
		}
		if requireValue {
			if err := validation.Required("Item value", item.Value); err != nil {
				return err
			}
		}
		if err := validation.Mode(item.Mode); err != nil {
			return err
		}
	}
	return nil
}

// SaveSectionItems handles POST /api/rounds/:id/sections
// @Summary Save section readings
// @Description Reconcile a section's submitted items against a round
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "Round ID"
// @Param section body SaveSectionRequest true "Section readings"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rounds/{id}/sections [post]
func (h *ItemHandler) SaveSectionItems(c *fiber.Ctx) error {
	roundID, err := parseRoundID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "saveSectionItems")
	}

	var req SaveSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "saveSectionItems")
	}

	if err := validation.Required("Unit", req.Unit); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "saveSectionItems")
	}
	if err := validation.Required("Section name", req.SectionName); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "saveSectionItems")
	}
	items := req.Items.Slice()
	if err := validateItemInputs(items, true); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "saveSectionItems")
	}

	if err := services.SaveSectionItems(h.DB, roundID, req.Unit, req.SectionName, items); err != nil {
		return serviceErrorResponse(c, err, "saveSectionItems")
	}

	// When a walk is in progress for this unit, a saved section counts as
	// completed and the response carries where to go next.
	if h.Sessions != nil {
		if ctx := h.Sessions.Get(roundID); ctx != nil {
			if next, done := ctx.CompleteSection(req.Unit, req.SectionName); next != "" {
				completed, total := ctx.Progress(req.Unit)
				return c.Status(fiber.StatusOK).JSON(fiber.Map{
					"message":      "Success",
					"ok":           true,
					"timestamp":    time.Now().UTC().Format(time.RFC3339),
					"affectedRows": int64(len(items)),
					"nextSection":  next,
					"walkComplete": done,
					"completed":    completed,
					"total":        total,
				})
			}
		}
	}

	return utils.MutationSuccessResponse(c, int64(len(items)))
}

// AddItemRequest is the body of POST /api/items.
type AddItemRequest struct {
	RoundID     uint64             `json:"roundId"`
	Unit        string             `json:"unit"`
	SectionName string             `json:"sectionName"`
	Item        services.ItemInput `json:"item"`
}

// AddItem handles POST /api/items
// @Summary Add a single item
// @Description Add one item to a round, creating the section lazily if needed
// @Tags Items
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Item and its location"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [post]
func (h *ItemHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "addItem")
	}

	if req.RoundID == 0 {
		return utils.ErrorResponse(c, "roundId is required", fiber.StatusBadRequest, "addItem")
	}
	if err := validation.Required("Unit", req.Unit); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "addItem")
	}
	if err := validation.Required("Section name", req.SectionName); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "addItem")
	}
	if err := validateItemInputs([]services.ItemInput{req.Item}, true); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "addItem")
	}

	itemID, err := services.AddSectionItem(h.DB, req.RoundID, req.Unit, req.SectionName, req.Item)
	if err != nil {
		return serviceErrorResponse(c, err, "addItem")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"itemId": itemID,
		"ok":     true,
	})
}

// UpdateItem handles PUT /api/items
// @Summary Update an item across rounds
// @Description Update every historical occurrence of an item identified by unit, section, and description
// @Tags Items
// @Accept json
// @Produce json
// @Param target body ItemTargetRequest true "Item identity and replacement values"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [put]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var req ItemTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "updateItem")
	}

	if err := validation.Required("Unit", req.Unit); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateItem")
	}
	if err := validation.Required("Section name", req.SectionName); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateItem")
	}
	if err := validation.Required("Item description", req.Description); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateItem")
	}
	if err := validateItemInputs([]services.ItemInput{req.Item}, false); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateItem")
	}

	affected, err := services.UpdateItemEverywhere(h.DB, req.Unit, req.SectionName, req.Description, req.Item)
	if err != nil {
		return serviceErrorResponse(c, err, "updateItem")
	}

	return utils.MutationSuccessResponse(c, affected)
}

// DeleteItem handles DELETE /api/items
// @Summary Delete an item across rounds
// @Description Delete every historical occurrence of an item identified by unit, section, and description
// @Tags Items
// @Accept json
// @Produce json
// @Param target body ItemTargetRequest true "Item identity"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	var req ItemTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "deleteItem")
	}

	if err := validation.Required("Unit", req.Unit); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "deleteItem")
	}
	if err := validation.Required("Section name", req.SectionName); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "deleteItem")
	}
	if err := validation.Required("Item description", req.Description); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "deleteItem")
	}

	affected, err := services.DeleteItemEverywhere(h.DB, req.Unit, req.SectionName, req.Description)
	if err != nil {
		return serviceErrorResponse(c, err, "deleteItem")
	}

	return utils.MutationSuccessResponse(c, affected)
}
