package routes

import (
	"errors"
	"log"
	"strings"

	"warehouse-app/config"
	"warehouse-app/controllers"
	"warehouse-app/database"
	"warehouse-app/middleware"
	"warehouse-app/notification"
	"warehouse-app/repositories"
	"warehouse-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp wires every service against store and returns the HTTP app.
// config.LoadConfig must have run.
func NewApp(store database.Store, notifier notification.Notifier) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "warehouse-app",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(config.AllowedOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(middleware.SingleWriter())

	materials := repositories.NewMaterialRepository(store)
	users := services.NewUserService(store)
	auth := services.NewAuthService(users, config.JWTSecret, config.TokenTTL())
	ledger := services.NewLedgerService(store)
	dispatch := services.NewDispatchService(store, config.DocUnitCode)
	authMiddleware := middleware.AuthMiddleware(auth)

	SetupAuthRoutes(app, controllers.NewAuthController(auth), authMiddleware)
	SetupMaterialRoutes(app, controllers.NewMaterialController(materials, services.NewHistoryService(store)), authMiddleware)
	SetupInboundRoutes(app, controllers.NewInboundController(ledger), authMiddleware)
	SetupOutboundRoutes(app, controllers.NewOutboundController(ledger, dispatch, materials, notifier), authMiddleware)
	SetupUserRoutes(app, controllers.NewUserController(users), authMiddleware)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{
			"success": false,
			"error":   e.Message,
		})
	}
	log.Println("Unexpected error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func allowedOrigins(list string) string {
	origins := strings.Split(list, ",")
	kept := origins[:0]
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			kept = append(kept, o)
		}
	}
	if len(kept) == 0 {
		return "*"
	}
	return strings.Join(kept, ",")
}
