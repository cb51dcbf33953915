package main

import (
	"log"

	"agri-assistant-be/internal/bootstrap"
	"agri-assistant-be/internal/config"
	"agri-assistant-be/internal/server"
	"agri-assistant-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	db, err := database.NewMongoDatabase(cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(db, cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap application: %v", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
