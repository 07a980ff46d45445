package main

import (
	"log"
	"os"

	"oficina/internal/database"
)

// Deletes password-reset codes that can never be redeemed again: expired
// ones and ones already used. Meant to run from cron.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	res := db.Exec(`DELETE FROM password_reset_codes WHERE expires_at < CURRENT_TIMESTAMP OR used_at IS NOT NULL`)
	if res.Error != nil {
		log.Fatalf("cleanup password_reset_codes failed: %v", res.Error)
	}

	log.Printf("reset cleanup completed: password_reset_codes=%d", res.RowsAffected)
}
