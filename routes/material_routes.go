package routes

import (
	"warehouse-app/config"
	"warehouse-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupMaterialRoutes(app *fiber.App, materialController *controllers.MaterialController, authMiddleware fiber.Handler) {
	api := app.Group(config.MAIN_ROUTES+"/materials", authMiddleware)
	api.Get("/", materialController.GetAllMaterials)
	api.Post("/", materialController.CreateMaterial)
	api.Get("/export", materialController.ExportStock)
	api.Post("/import/preview", materialController.PreviewImport)
	api.Post("/batch", materialController.ConfirmImport)
	api.Get("/:id/history", materialController.GetMaterialHistory)
	api.Put("/:id", materialController.UpdateMaterial)
	api.Delete("/:id", materialController.DeleteMaterial)
}
