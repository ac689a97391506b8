package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"           // Optional .env autoload for local development
	"github.com/labstack/echo/v4"        // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/venue-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/venue-booking/internal/database"   // MySQL pool
	"github.com/iliyamo/venue-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/venue-booking/internal/middleware" // Rate limiting middleware
	"github.com/iliyamo/venue-booking/internal/queue"      // Listing event consumer
	"github.com/iliyamo/venue-booking/internal/repository" // Data access
	"github.com/iliyamo/venue-booking/internal/router"     // Route registration
	queue_publisher "github.com/iliyamo/venue-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close() // storage context lives for the whole process

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)

	venueHandler := handler.NewVenueHandler(venues, artists, shows)
	artistHandler := handler.NewArtistHandler(artists, shows)
	showHandler := handler.NewShowHandler(shows, artists, venues)
	showHandler.Publish = queue_publisher.PublishShowListed

	e := echo.New()
	e.Validator = handler.NewFormValidator()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.RegisterRoutes(e)
	router.RegisterVenues(e, venueHandler)
	router.RegisterArtists(e, artistHandler)
	router.RegisterShows(e, showHandler)

	// Consume show.listed events in the background; the consumer keeps
	// reconnecting on its own and never takes the server down.
	go func() {
		if err := queue.StartListingConsumer(); err != nil {
			log.Printf("listing consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
