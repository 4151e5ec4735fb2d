package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/plantops/roundsdb/internal/services"
	"github.com/plantops/roundsdb/internal/types"
	"github.com/plantops/roundsdb/internal/utils"
)

// parseRoundID extracts and validates the :id path parameter.
func parseRoundID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid round id")
	}
	return id, nil
}

// ErrorHandler handles errors globally. Wired as the fiber app's
// ErrorHandler so middleware can surface typed errors with their own status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// serviceErrorResponse maps service sentinel errors onto HTTP responses.
func serviceErrorResponse(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrNoActiveRound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrDuplicateItem):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}
