package trip

import (
	"time"

	"github.com/Trenton-Brown/Visa-Stay/internal/shared/dateutil"

	"github.com/gofiber/fiber/v2"
)

// tripRequest is the wire form of a trip: dates arrive as YYYY-MM-DD
// strings and are rebuilt at local midnight.
type tripRequest struct {
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	VisaDuration string `json:"visa_duration"`
}

func (req tripRequest) toTrip(userID string) (Trip, error) {
	trip := Trip{
		UserID:       userID,
		CountryName:  req.Country,
		CountryCode:  req.CountryCode,
		VisaDuration: req.VisaDuration,
	}

	if req.StartDate != "" {
		start, err := dateutil.ParseDate(req.StartDate)
		if err != nil {
			return Trip{}, err
		}
		trip.StartDate = start
	}
	if req.EndDate != "" {
		end, err := dateutil.ParseDate(req.EndDate)
		if err != nil {
			return Trip{}, err
		}
		trip.EndDate = end
	}
	return trip, nil
}

func userIDFromLocals(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req tripRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Country == "" && req.CountryCode == "" {
			return fiber.NewError(fiber.StatusBadRequest, "country required")
		}
		if req.StartDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "start_date required")
		}

		input, err := req.toTrip(userIDFromLocals(c))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		trip, err := svc.CreateTrip(c.Context(), input)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(trip)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		trips, err := svc.ListByUser(c.Context(), userIDFromLocals(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(trips)
	})

	r.Get("/usage", authMiddleware, func(c *fiber.Ctx) error {
		ref := time.Now()
		if date := c.Query("date"); date != "" {
			parsed, err := dateutil.ParseDate(date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
			}
			ref = parsed
		}

		usage, err := svc.Usage(c.Context(), userIDFromLocals(c), ref)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(usage)
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		trip, err := svc.GetTrip(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		if trip.UserID != userIDFromLocals(c) {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.JSON(trip)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		existing, err := svc.GetTrip(c.Context(), c.Params("id"))
		if err != nil || existing.UserID != userIDFromLocals(c) {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}

		var req tripRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		patch, err := req.toTrip(existing.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		trip, err := svc.UpdateTrip(c.Context(), c.Params("id"), patch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(trip)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		existing, err := svc.GetTrip(c.Context(), c.Params("id"))
		if err != nil || existing.UserID != userIDFromLocals(c) {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		if err := svc.DeleteTrip(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
