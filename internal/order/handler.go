package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/luxuria-backend/internal/validation"
)

// Handler exposes checkout over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/checkout", h.checkout)
}

type itemRequest struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Image     *string  `json:"image" validate:"omitempty,http_url"`
}

type checkoutRequest struct {
	Items         []itemRequest `json:"items" validate:"required,dive"`
	CustomerName  string        `json:"customer_name" validate:"required"`
	CustomerEmail string        `json:"customer_email" validate:"required,email"`
	Address       string        `json:"address" validate:"required"`
	City          string        `json:"city" validate:"required"`
	Country       string        `json:"country" validate:"required"`
}

func (r checkoutRequest) toOrder() Order {
	items := make([]Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, Item{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     *it.Price,
			Image:     it.Image,
		})
	}
	return Order{
		Items:         items,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Address:       r.Address,
		City:          r.City,
		Country:       r.Country,
	}
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := validation.Struct(payload); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": err})
	}

	orderID := h.service.Checkout(c.UserContext(), payload.toOrder())
	return c.JSON(fiber.Map{"status": "success", "order_id": orderID})
}
