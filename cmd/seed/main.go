// Command seed populates the configured database with fake marketplace data.
package main

import (
	"flag"
	"log"

	"palette/internal/config"
	"palette/internal/database"
	"palette/internal/seed"
)

func main() {
	numMembers := flag.Int("members", 30, "Number of member IDs to spread data across")
	numOffers := flag.Int("offers", 40, "Number of group-purchase offers to create")
	numProducts := flag.Int("products", 60, "Number of secondhand products to create")
	shouldClean := flag.Bool("clean", true, "Clean marketplace tables before seeding")
	flag.Parse()

	log.Printf("Target: %d members, %d offers, %d products, clean=%v\n",
		*numMembers, *numOffers, *numProducts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = seed.Run(db, seed.Options{
		NumMembers:  *numMembers,
		NumOffers:   *numOffers,
		NumProducts: *numProducts,
		ShouldClean: *shouldClean,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed")
}
