package routes

import (
	"warehouse-app/config"
	"warehouse-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController, authMiddleware fiber.Handler) {
	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Get("/me", authMiddleware, authController.Me)
}
