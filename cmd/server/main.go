package main

import (
	"log"
	"net/http"

	"bus_tracker/internal/config"
	"bus_tracker/internal/controllers"
	"bus_tracker/internal/logger"
	"bus_tracker/internal/middleware"
	"bus_tracker/internal/repository"
	"bus_tracker/internal/routes"
	"bus_tracker/internal/services"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	middleware.SetSecret(cfg.JWTSecret)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	// Stores behind the service layer so tests can swap in fakes
	buses := repository.NewBusRepository(db)
	locations := repository.NewLocationRepository(db)

	registry := services.NewRegistry(buses)
	ingestion := services.NewIngestion(buses, locations, cfg.Timezone)
	query := services.NewQuery(buses, locations)

	hub := controllers.NewLocationHub()
	auth := controllers.NewAuthController(db, cfg.TokenTTL)
	busCtrl := controllers.NewBusController(registry)
	locCtrl := controllers.NewLocationController(ingestion, query, hub, db)

	r := routes.SetupRouter(auth, busCtrl, locCtrl, hub)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
