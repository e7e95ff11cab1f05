package server

import (
	"encoding/json"
	"errors"

	"forumapi/internal/middleware"
	"forumapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

// serverFailureMessage is the only message a client sees for a 500.
const serverFailureMessage = "terjadi kegagalan pada server kami"

// respondSuccess writes {status:"success", data}. data is omitted when nil.
func respondSuccess(c *fiber.Ctx, status int, data any) error {
	body := fiber.Map{"status": "success"}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// respondFail writes a client error {status:"fail", message}.
func respondFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "fail",
		"message": message,
	})
}

// statusFor maps an AppError code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	case models.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError renders err with the response envelope. Domain errors are
// translated first; anything that is not a client error becomes a generic 500
// and is logged with its cause.
func respondError(c *fiber.Ctx, err error) error {
	err = models.TranslateDomainError(err)

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		if status := statusFor(appErr.Code); status < fiber.StatusInternalServerError {
			return respondFail(c, status, appErr.Message)
		}
	}

	middleware.Logger.ErrorContext(c.UserContext(), "request failed with server error",
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": serverFailureMessage,
	})
}

// parsePayload decodes the request body as a JSON object. An empty body is an
// empty payload, so entity constructors report the missing properties.
func parsePayload(c *fiber.Ctx) (models.Payload, error) {
	body := c.Body()
	if len(body) == 0 {
		return models.Payload{}, nil
	}
	var p models.Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, models.NewValidationError("payload harus berupa objek JSON")
	}
	if p == nil {
		p = models.Payload{}
	}
	return p, nil
}

// currentUserID returns the user set by AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
