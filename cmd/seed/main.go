// Command seed populates the database with generated demo data.
package main

import (
	"flag"
	"log"

	"reelvault/internal/config"
	"reelvault/internal/database"
	"reelvault/internal/seed"
)

func main() {
	catalogCount := flag.Int("content", 40, "number of catalog entries to create")
	upcomingCount := flag.Int("upcoming", 8, "number of upcoming announcements to create")
	eventCount := flag.Int("events", 500, "number of analytics events to create")
	clean := flag.Bool("clean", true, "clear existing data before seeding")
	adminPassword := flag.String("admin-password", "change-me-in-dev-1", "password for the seeded admin account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeder := seed.NewSeeder(db)

	if *clean {
		if err := seeder.ClearAll(); err != nil {
			log.Fatalf("Failed to clear existing data: %v", err)
		}
		log.Println("Cleared existing data")
	}

	if _, err := seeder.SeedAdmin("admin", "admin@reelvault.local", *adminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	entries, err := seeder.SeedCatalog(*catalogCount)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Created %d catalog entries", len(entries))

	if err := seeder.SeedUpcoming(*upcomingCount); err != nil {
		log.Fatalf("Failed to seed upcoming content: %v", err)
	}
	log.Printf("Created %d upcoming announcements", *upcomingCount)

	if err := seeder.SeedEvents(entries, *eventCount); err != nil {
		log.Fatalf("Failed to seed analytics events: %v", err)
	}
	log.Printf("Created %d analytics events", *eventCount)
}
