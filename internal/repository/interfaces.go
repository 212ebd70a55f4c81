package repository

import (
	"context"

	"github.com/qiraat-compare-api/internal/models"
)

// ComparisonRepository defines lookup of a verse's full cross-qiraat matrix
type ComparisonRepository interface {
	// GetComparison returns the comparison matrix for (surah, ayah), or nil
	// when no verse matches.
	GetComparison(ctx context.Context, surah, ayah int) (*models.Comparison, error)
}

// SurahRepository defines surah catalog and per-surah verse access
type SurahRepository interface {
	// ListSurahs returns catalog metadata for every surah with content.
	ListSurahs(ctx context.Context) ([]models.SurahSummary, error)

	// GetSurah returns one surah with all its verses for the given qiraat
	// slug, or nil when the surah has no verses. The slug is always concrete;
	// the service layer resolves the default.
	GetSurah(ctx context.Context, number int, slug string) (*models.Surah, error)
}

// QiraatRepository defines access to the recitation-variant catalog
type QiraatRepository interface {
	// ListQiraat returns all known recitation variants ordered by slug.
	ListQiraat(ctx context.Context) ([]models.Qiraat, error)
}

// SearchRepository defines navigation queries and trigram text search
type SearchRepository interface {
	// VersesByJuz returns the verses of one juz for the given qiraat slug,
	// ordered by (surah, ayah).
	VersesByJuz(ctx context.Context, juz int, slug string) ([]models.Verse, error)

	// VersesByPage returns the verses of one Mushaf page for the given qiraat
	// slug, ordered by (surah, ayah).
	VersesByPage(ctx context.Context, page int, slug string) ([]models.Verse, error)

	// SearchText performs trigram similarity search. An empty slug searches
	// across all variants. Results are ordered by descending score.
	SearchText(ctx context.Context, query, slug string, limit int) ([]models.SearchResult, error)
}
