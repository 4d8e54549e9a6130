package main

import (
	"log"

	"estate-backend/internal/config"
	"estate-backend/internal/database"
	"estate-backend/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	defer sqlDB.Close()

	app := server.New(cfg, db)

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
