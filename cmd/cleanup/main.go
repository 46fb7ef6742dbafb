//cmd/cleanup/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/unclebandit/leadreach-webclient/internal/db"
	"github.com/unclebandit/leadreach-webclient/internal/repository"
)

// Prunes session rows nobody has touched in a while. Dead tokens get cleared
// on first use anyway; this just keeps the table from growing forever.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	db.Init()
	defer db.DB.Close()

	maxAgeDays := 30
	if v := os.Getenv("SESSION_MAX_AGE_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			maxAgeDays = days
		}
	}

	repo := &repository.SessionRepository{DB: db.DB}
	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)

	deleted, err := repo.DeleteStale(cutoff)
	if err != nil {
		log.Fatalf("failed to prune sessions: %v", err)
	}

	fmt.Printf("Pruned %d stale sessions older than %d days\n", deleted, maxAgeDays)
}
