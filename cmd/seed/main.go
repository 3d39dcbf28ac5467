// Command seed fills the database with demo marketplace data.
package main

import (
	"flag"
	"log"

	"lendhub/internal/config"
	"lendhub/internal/database"
	"lendhub/internal/seed"
)

func main() {
	users := flag.Int("users", 20, "number of users to create")
	items := flag.Int("items", 3, "items per user")
	requests := flag.Int("requests", 10, "number of open requests")
	bookings := flag.Int("bookings", 60, "number of bookings to attempt")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:     *users,
		ItemsPerUser: *items,
		NumRequests:  *requests,
		NumBookings:  *bookings,
		ShouldClean:  *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
