package api

import (
	"formulab/docs"
	"formulab/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

func SetupRouter(
	requestHandler *handlers.RequestHandler,
	uploadHandler *handlers.UploadHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the generated definition through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	v1 := app.Group("/api/v1")

	requests := v1.Group("/requests")
	requests.Post("", requestHandler.CreateRequest)
	requests.Get("", requestHandler.ListRequests)
	requests.Get("/:id", requestHandler.GetRequest)
	requests.Patch("/:id", requestHandler.UpdateRequest)
	requests.Get("/:id/similar", requestHandler.SimilarRequests)
	requests.Post("/:id/report", requestHandler.GenerateReport)
	requests.Get("/:id/report/download", requestHandler.DownloadReport)

	uploads := v1.Group("/uploads")
	uploads.Post("/autofill", uploadHandler.Autofill)

	return app
}
