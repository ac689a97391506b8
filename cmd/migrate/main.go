package main // Migration runner

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing the change scripts")
	flag.Parse()

	direction := flag.Arg(0)
	if direction == "" {
		direction = "up"
	}

	_ = godotenv.Load()
	cfg := config.Load()

	if err := database.Migrate(*dir, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, direction); err != nil {
		log.Fatalf("migrate %s: %v", direction, err)
	}
	log.Printf("migrations %s: done", direction)
}
