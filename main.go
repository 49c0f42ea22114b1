package main

import (
	"fmt"
	"log"

	"warehouse-app/config"
	"warehouse-app/controllers/idgen"
	"warehouse-app/database"
	"warehouse-app/notification"
	"warehouse-app/repositories"
	"warehouse-app/routes"
)

func main() {
	config.LoadConfig()

	if err := idgen.Init(config.SnowflakeNode); err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}

	store, err := database.OpenStore()
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// Seed katalog dan user admin kalau masih kosong
	if _, err := repositories.NewMaterialRepository(store).List(); err != nil {
		log.Fatalf("Failed to seed materials: %v", err)
	}
	if _, err := repositories.NewUserRepository(store).List(); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	app := routes.NewApp(store, notification.NewFromConfig())

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
