package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// SurahRepository implements repository.SurahRepository for PostgreSQL.
// Surah display names are not stored on quran_verses; they are recovered
// from the jsonb metadata of each surah's first recitation row.
type SurahRepository struct {
	db *sqlx.DB
}

// NewSurahRepository creates a new PostgreSQL surah repository
func NewSurahRepository(db *sqlx.DB) repository.SurahRepository {
	return &SurahRepository{db: db}
}

// ListSurahs returns catalog metadata for every surah that has verses
func (r *SurahRepository) ListSurahs(ctx context.Context) ([]models.SurahSummary, error) {
	var counts []struct {
		Number    int `db:"number"`
		AyahCount int `db:"ayah_count"`
	}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT surah_number AS number, COUNT(*) AS ayah_count
		FROM quran_verses
		GROUP BY surah_number
		ORDER BY surah_number
	`)
	if err != nil {
		return nil, fmt.Errorf("list surah counts: %w", err)
	}

	var names []struct {
		Number     int    `db:"number"`
		Name       string `db:"name"`
		ArabicName string `db:"arabic_name"`
	}
	err = r.db.SelectContext(ctx, &names, `
		SELECT DISTINCT ON (v.surah_number)
		       v.surah_number AS number,
		       COALESCE(r.metadata->>'sura_name_en', 'Surah ' || v.surah_number) AS name,
		       COALESCE(r.metadata->>'sura_name_ar', '') AS arabic_name
		FROM quran_verses v
		LEFT JOIN recitation_texts r ON r.verse_id = v.id
		WHERE v.ayah_number = 1
		ORDER BY v.surah_number, r.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list surah names: %w", err)
	}

	nameFor := make(map[int]struct{ name, arabic string }, len(names))
	for _, n := range names {
		nameFor[n.Number] = struct{ name, arabic string }{n.Name, n.ArabicName}
	}

	summaries := make([]models.SurahSummary, len(counts))
	for i, c := range counts {
		s := models.SurahSummary{
			Number:    c.Number,
			Name:      fmt.Sprintf("Surah %d", c.Number),
			AyahCount: c.AyahCount,
		}
		if n, ok := nameFor[c.Number]; ok {
			s.Name = n.name
			s.ArabicName = n.arabic
		}
		summaries[i] = s
	}
	return summaries, nil
}

// GetSurah returns one surah with all its verses for the given qiraat slug,
// or nil when no verse rows exist for that surah number
func (r *SurahRepository) GetSurah(ctx context.Context, number int, slug string) (*models.Surah, error) {
	var meta []struct {
		Name       string `db:"name"`
		ArabicName string `db:"arabic_name"`
	}
	err := r.db.SelectContext(ctx, &meta, `
		SELECT COALESCE(r.metadata->>'sura_name_en', 'Surah ' || v.surah_number) AS name,
		       COALESCE(r.metadata->>'sura_name_ar', '') AS arabic_name
		FROM quran_verses v
		LEFT JOIN recitation_texts r ON r.verse_id = v.id AND v.ayah_number = 1
		WHERE v.surah_number = $1
		ORDER BY v.ayah_number, r.id
		LIMIT 1
	`, number)
	if err != nil {
		return nil, fmt.Errorf("get surah metadata: %w", err)
	}
	if len(meta) == 0 {
		return nil, nil
	}

	var count struct {
		AyahCount int `db:"ayah_count"`
	}
	err = r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) AS ayah_count FROM quran_verses WHERE surah_number = $1
	`, number)
	if err != nil {
		return nil, fmt.Errorf("count surah verses: %w", err)
	}

	var verses []models.SurahVerse
	err = r.db.SelectContext(ctx, &verses, `
		SELECT v.ayah_number AS ayah,
		       v.page_number AS page,
		       v.juz_number AS juz,
		       r.text_uthmani AS text
		FROM quran_verses v
		JOIN recitation_texts r ON r.verse_id = v.id
		JOIN qiraat_metadata q ON q.id = r.qiraat_id
		WHERE v.surah_number = $1 AND q.slug = $2
		ORDER BY v.ayah_number
	`, number, slug)
	if err != nil {
		return nil, fmt.Errorf("get surah verses: %w", err)
	}
	if verses == nil {
		verses = []models.SurahVerse{}
	}

	return &models.Surah{
		Surah:      number,
		Name:       meta[0].Name,
		ArabicName: meta[0].ArabicName,
		AyahCount:  count.AyahCount,
		Verses:     verses,
	}, nil
}
