package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
	"github.com/thanadol-s/ecommerce-backend/internal/user"
)

// Handler delegates cart mutations to the cart engine.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/cart/addToCart", h.addToCart)
	app.Post("/api/cart/removeFromCart", h.removeFromCart)
}

type modifyCartRequest struct {
	Username string `json:"username"`
	ItemID   int    `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	return h.modifyCart(c, h.service.Add)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	return h.modifyCart(c, h.service.Remove)
}

func (h *Handler) modifyCart(c *fiber.Ctx, op func(string, int, int) (Cart, error)) error {
	payload := new(modifyCartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := op(payload.Username, payload.ItemID, payload.Quantity)
	if err != nil {
		switch err {
		case user.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		case item.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not found"})
		default:
			log.Error().Err(err).Str("username", payload.Username).Msg("cart update failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
