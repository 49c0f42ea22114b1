package routes

import (
	"warehouse-app/config"
	"warehouse-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupOutboundRoutes(app *fiber.App, outboundController *controllers.OutboundController, authMiddleware fiber.Handler) {
	api := app.Group(config.MAIN_ROUTES+"/outbound", authMiddleware)
	api.Get("/", outboundController.GetAllOutbound)
	api.Post("/", outboundController.CreateOutbound)
	api.Get("/sequence", outboundController.GetNextSequence)
	api.Get("/document/:request_number", outboundController.GetDocument)
	api.Patch("/:id", outboundController.UpdateOutboundField)
}
