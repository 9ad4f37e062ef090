package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/luxuria-backend/internal/validation"
)

type Handler struct {
	service   ServiceInterface
	presenter *Presenter
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service, presenter: NewPresenter()}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id", h.getProduct)
	app.Post("/api/products", h.createProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	featured, err := parseFeatured(c.Query("featured"))
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": validation.Errors{"featured": err.Error()}})
	}
	f := ListFilter{Category: c.Query("category"), Featured: featured}

	products := h.service.List(c.UserContext(), f)
	return c.JSON(h.presenter.ToList(products))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.UserContext(), ParseID(c.Params("id")))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(h.presenter.ToResponse(p))
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	req := new(createRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// return all validation errors together
	if err := validation.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": err})
	}

	id, err := h.service.Create(c.UserContext(), req.toProduct())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(fiber.Map{"id": id})
}
