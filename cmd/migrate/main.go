// Command migrate applies the marketplace schema to the configured database.
package main

import (
	"fmt"
	"log"

	"palette/internal/config"
	"palette/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Connect migrates in non-production; this makes the command useful in
	// production too.
	if err := database.Migrate(db); err != nil {
		return err
	}

	log.Println("migrations applied")
	return nil
}
