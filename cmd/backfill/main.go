// Command backfill fills the ai_label column for categories that are
// missing one, deriving "<name> service" from the category name. It is a
// one-off migration utility, not part of the request pipeline.
package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"servicematch/internal/taxonomy"
)

func main() {
	_ = godotenv.Load()

	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		log.Fatal("DATABASE_URL not found. Make sure it's in your .env file.")
	}

	store, err := taxonomy.NewStore(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to category database: %v", err)
	}
	defer store.Close()

	examined, updated, err := store.BackfillHypotheses(context.Background(), func(name, label string) {
		log.Printf("  - updated %q with ai_label %q", name, label)
	})
	if err != nil {
		log.Fatalf("Backfill failed after %d updates: %v", updated, err)
	}
	if examined == 0 {
		log.Println("All categories already have an ai_label. No updates needed.")
		return
	}
	log.Printf("Finished. Updated %d of %d categories missing an ai_label.", updated, examined)
}
