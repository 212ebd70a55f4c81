// Creates the Quran comparison schema: pg_trgm extension, the three content
// tables, the trigram GIN index, and the mv_comparison_matrix materialized
// view. Idempotent; safe to run against an existing database.
//
// Content rows are loaded by the external ingestion pipeline, not by this
// script. Run scripts/refresh after any ingestion to rebuild the view.
//
// Usage:
//
//	POSTGRES_URI=postgres://... go run scripts/setup/main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/qiraat-compare-api/pkg/schema/db"
)

var statements = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,

	`CREATE TABLE IF NOT EXISTS quran_verses (
		id SERIAL PRIMARY KEY,
		surah_number INTEGER NOT NULL,
		ayah_number INTEGER NOT NULL,
		juz_number INTEGER NOT NULL,
		page_number INTEGER NOT NULL,
		created_at TIMESTAMPTZ DEFAULT now(),
		UNIQUE (surah_number, ayah_number)
	)`,

	`CREATE TABLE IF NOT EXISTS qiraat_metadata (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		slug VARCHAR(50) NOT NULL UNIQUE,
		description TEXT,
		created_at TIMESTAMPTZ DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS recitation_texts (
		id SERIAL PRIMARY KEY,
		verse_id INTEGER NOT NULL REFERENCES quran_verses ON DELETE CASCADE,
		qiraat_id INTEGER NOT NULL REFERENCES qiraat_metadata ON DELETE CASCADE,
		text_uthmani TEXT NOT NULL,
		text_emlaey TEXT,
		metadata JSONB DEFAULT '{}',
		created_at TIMESTAMPTZ DEFAULT now(),
		UNIQUE (verse_id, qiraat_id)
	)`,

	`CREATE INDEX IF NOT EXISTS recitation_texts_text_uthmani_trgm_idx
		ON recitation_texts USING gin (text_uthmani gin_trgm_ops)`,

	`CREATE MATERIALIZED VIEW IF NOT EXISTS mv_comparison_matrix AS
		SELECT
			v.surah_number,
			v.ayah_number,
			JSONB_OBJECT_AGG(
				q.slug,
				JSONB_BUILD_OBJECT(
					'text', r.text_uthmani,
					'page', v.page_number,
					'juz', v.juz_number
				)
			) AS variants
		FROM recitation_texts r
		JOIN quran_verses v ON r.verse_id = v.id
		JOIN qiraat_metadata q ON r.qiraat_id = q.id
		GROUP BY v.surah_number, v.ayah_number`,

	// Unique key index; also required for REFRESH ... CONCURRENTLY.
	`CREATE UNIQUE INDEX IF NOT EXISTS mv_comparison_matrix_key_idx
		ON mv_comparison_matrix (surah_number, ayah_number)`,
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Print statements without executing them")
	flag.Parse()

	godotenv.Load()

	if *dryRun {
		for _, stmt := range statements {
			log.Println(stmt)
		}
		return
	}

	ctx := context.Background()
	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer db.ClosePostgres()

	pgDB := db.GetPostgres()
	for _, stmt := range statements {
		if _, err := pgDB.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Schema statement failed: %v\n%s", err, stmt)
		}
	}

	log.Println("Schema setup complete")
}
