package routes

import (
	"warehouse-app/config"
	"warehouse-app/controllers"
	"warehouse-app/middleware"
	"warehouse-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userController *controllers.UserController, authMiddleware fiber.Handler) {
	api := app.Group(config.MAIN_ROUTES+"/users", authMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Get("/", userController.GetAllUsers)
	api.Post("/", userController.CreateUser)
	api.Get("/:id", userController.GetUserByID)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", userController.DeleteUser)
}
