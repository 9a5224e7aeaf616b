package main

import (
	"ambulance-dispatch-service/internal/adapters/repositories"
	"ambulance-dispatch-service/internal/config"
	"ambulance-dispatch-service/internal/platform/db"
	"context"
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool prepares the Postgres address cache outside the server's startup path.
func main() {
	prune := flag.Int("prune-hours", 0, "delete cached addresses older than this many hours (0 disables)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(context.Background(), databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *prune > 0 {
		n, err := repositories.PruneAddressCache(conn, *prune)
		if err != nil {
			log.Fatalf("prune failed: %v", err)
		}
		log.Printf("Pruned %d cached addresses older than %dh.", n, *prune)
	}
}
