// Package server assembles the Fiber application: middleware stack and the
// routes of every feature package.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/wichananm65/luxuria-backend/internal/category"
	"github.com/wichananm65/luxuria-backend/internal/config"
	"github.com/wichananm65/luxuria-backend/internal/diagnostics"
	"github.com/wichananm65/luxuria-backend/internal/distributor"
	"github.com/wichananm65/luxuria-backend/internal/order"
	"github.com/wichananm65/luxuria-backend/internal/product"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

// New wires every handler against s.
func New(cfg config.Config, s store.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Luxuria API",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	setupCORS(app)

	diagnostics.NewHandler(s, cfg.DatabaseURL != "", cfg.DatabaseName != "").RegisterPublicRoutes(app)
	category.NewHandler().RegisterPublicRoutes(app)
	product.NewHandler(product.NewService(s)).RegisterPublicRoutes(app)
	order.NewHandler(order.NewService(s)).RegisterPublicRoutes(app)
	distributor.NewHandler(distributor.NewService(s)).RegisterPublicRoutes(app)

	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "*",
	}))
}

// errorHandler renders errors that escape a handler, including recovered
// panics and unknown routes, in the {"detail": ...} shape used by the API.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
}
