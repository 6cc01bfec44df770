// file: main.go
package main

import (
	"QRHunt/config"
	"QRHunt/database"
	"QRHunt/routes"
	"QRHunt/utils"
	"log"
)

func main() {
	cfg := config.Load()

	utils.SetJWTSecret(cfg.JWTSecret)

	database.Connect(cfg)
	database.InitRedis(cfg)
	database.MigrateTables()
	database.SeedAdmin(cfg)

	r := routes.SetupRouter(cfg)

	log.Println("Starting server on :" + cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
