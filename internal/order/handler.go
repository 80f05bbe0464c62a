package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/thanadol-s/ecommerce-backend/internal/user"
)

// Handler delegates order submission and history to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/order/submit/:username", h.submit)
	app.Get("/api/order/history/:username", h.getHistory)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	ord, err := h.service.Submit(c.Params("username"))
	if err != nil {
		switch err {
		case user.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			log.Error().Err(err).Str("username", c.Params("username")).Msg("order submit failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(ord)
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	orders, err := h.service.HistoryForUser(c.Params("username"))
	if err != nil {
		switch err {
		case user.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(orders)
}
