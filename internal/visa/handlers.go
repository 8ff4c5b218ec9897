package visa

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/check", func(c *fiber.Ctx) error {
		passport := c.Query("passport")
		destination := c.Query("destination")
		if passport == "" || destination == "" {
			return fiber.NewError(fiber.StatusBadRequest, "passport and destination required")
		}

		result, err := svc.Check(c.Context(), passport, destination)
		if err != nil {
			return fiber.NewError(statusFor(err), err.Error())
		}
		return c.JSON(result)
	})
}

func statusFor(err error) int {
	var statusErr *StatusError
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return fiber.StatusInternalServerError
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusBadGateway
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidPair):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrBadPayload):
		return fiber.StatusBadGateway
	case errors.As(err, &statusErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
