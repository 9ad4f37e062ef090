package distributor

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/luxuria-backend/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/distributor/apply", h.apply)
}

type applyRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Company  *string `json:"company"`
	Website  *string `json:"website" validate:"omitempty,http_url"`
	Location *string `json:"location"`
	Message  *string `json:"message"`
}

func (h *Handler) apply(c *fiber.Ctx) error {
	payload := new(applyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := validation.Struct(payload); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": err})
	}

	id := h.service.Apply(c.UserContext(), Application{
		Name:     payload.Name,
		Email:    payload.Email,
		Company:  payload.Company,
		Website:  payload.Website,
		Location: payload.Location,
		Message:  payload.Message,
	})
	return c.JSON(fiber.Map{"status": "received", "application_id": id})
}
