package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// SearchRepository implements navigation and trigram search over PostgreSQL.
// Text matching relies on the pg_trgm extension: the % operator filters by
// the engine's similarity threshold and similarity() supplies the score.
type SearchRepository struct {
	db *sqlx.DB
}

// NewSearchRepository creates a new PostgreSQL search repository
func NewSearchRepository(db *sqlx.DB) repository.SearchRepository {
	return &SearchRepository{db: db}
}

// VersesByJuz returns one juz's verses for the given qiraat, in recitation order
func (r *SearchRepository) VersesByJuz(ctx context.Context, juz int, slug string) ([]models.Verse, error) {
	return r.versesByUnit(ctx, "v.juz_number", juz, slug)
}

// VersesByPage returns one Mushaf page's verses for the given qiraat, in recitation order
func (r *SearchRepository) VersesByPage(ctx context.Context, page int, slug string) ([]models.Verse, error) {
	return r.versesByUnit(ctx, "v.page_number", page, slug)
}

// versesByUnit runs the shared navigation query filtered on one unit column.
// The ORDER BY makes recitation order explicit rather than relying on
// storage order.
func (r *SearchRepository) versesByUnit(ctx context.Context, unitColumn string, unit int, slug string) ([]models.Verse, error) {
	query := fmt.Sprintf(`
		SELECT v.surah_number AS surah,
		       v.ayah_number AS ayah,
		       v.page_number AS page,
		       v.juz_number AS juz,
		       r.text_uthmani AS text
		FROM quran_verses v
		JOIN recitation_texts r ON r.verse_id = v.id
		JOIN qiraat_metadata q ON q.id = r.qiraat_id
		WHERE %s = $1 AND q.slug = $2
		ORDER BY v.surah_number, v.ayah_number
	`, unitColumn)

	var verses []models.Verse
	if err := r.db.SelectContext(ctx, &verses, query, unit, slug); err != nil {
		return nil, fmt.Errorf("query verses by %s: %w", unitColumn, err)
	}
	if verses == nil {
		verses = []models.Verse{}
	}
	return verses, nil
}

// SearchText performs trigram similarity search over recitation texts. An
// empty slug searches every variant, so one verse may match once per variant.
func (r *SearchRepository) SearchText(ctx context.Context, query, slug string, limit int) ([]models.SearchResult, error) {
	stmt := `
		SELECT v.surah_number AS surah,
		       v.ayah_number AS ayah,
		       r.text_uthmani AS text,
		       q.slug AS qiraat,
		       similarity(r.text_uthmani, $1) AS score
		FROM recitation_texts r
		JOIN quran_verses v ON v.id = r.verse_id
		JOIN qiraat_metadata q ON q.id = r.qiraat_id
		WHERE r.text_uthmani % $1
	`

	args := []interface{}{query}
	if slug != "" {
		stmt += fmt.Sprintf(" AND q.slug = $%d", len(args)+1)
		args = append(args, slug)
	}

	stmt += fmt.Sprintf(" ORDER BY score DESC, v.surah_number, v.ayah_number LIMIT $%d", len(args)+1)
	args = append(args, limit)

	var results []models.SearchResult
	if err := r.db.SelectContext(ctx, &results, stmt, args...); err != nil {
		return nil, fmt.Errorf("trigram search: %w", err)
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}
