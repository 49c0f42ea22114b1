package routes

import (
	"warehouse-app/config"
	"warehouse-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupInboundRoutes(app *fiber.App, inboundController *controllers.InboundController, authMiddleware fiber.Handler) {
	api := app.Group(config.MAIN_ROUTES+"/inbound", authMiddleware)
	api.Get("/", inboundController.GetAllInbound)
	api.Post("/", inboundController.CreateInbound)
}
