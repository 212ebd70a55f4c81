// Refreshes mv_comparison_matrix after content ingestion. The materialized
// comparison backend serves whatever the view held at the last refresh, so
// this script bounds that backend's staleness window.
//
// The default concurrent refresh keeps the view readable while it rebuilds.
// Use -full for the blocking variant, e.g. right after the very first
// ingestion when the view is still empty.
//
// Usage:
//
//	POSTGRES_URI=postgres://... go run scripts/refresh/main.go [-full]
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/qiraat-compare-api/pkg/schema/db"
)

func main() {
	full := flag.Bool("full", false, "Blocking refresh instead of CONCURRENTLY")
	flag.Parse()

	godotenv.Load()

	ctx := context.Background()
	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer db.ClosePostgres()

	stmt := "REFRESH MATERIALIZED VIEW CONCURRENTLY mv_comparison_matrix"
	if *full {
		stmt = "REFRESH MATERIALIZED VIEW mv_comparison_matrix"
	}

	start := time.Now()
	if _, err := db.GetPostgres().ExecContext(ctx, stmt); err != nil {
		log.Fatalf("Refresh failed: %v", err)
	}
	log.Printf("Comparison matrix refreshed in %s", time.Since(start).Round(time.Millisecond))
}
