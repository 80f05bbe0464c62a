package item

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes read-only catalog routes.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/item", h.getItems)
	app.Get("/api/item/name/:name", h.getItemsByName)
	app.Get("/api/item/:id<[0-9]+>", h.getItemByID)
}

func (h *Handler) getItems(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getItemByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	it, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(it)
}

func (h *Handler) getItemsByName(c *fiber.Ctx) error {
	// an empty result set is a valid outcome, not an error
	return c.JSON(h.service.ListByName(c.Params("name")))
}
