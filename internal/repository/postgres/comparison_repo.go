package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// MatrixComparisonRepository reads the precomputed mv_comparison_matrix
// materialized view: one row per verse with the full variants map as JSONB.
// It serves data as of the last refresh (scripts/refresh), which is the
// documented staleness window of this backend.
type MatrixComparisonRepository struct {
	db *sqlx.DB
}

// NewMatrixComparisonRepository creates the materialized-view comparison repository
func NewMatrixComparisonRepository(db *sqlx.DB) repository.ComparisonRepository {
	return &MatrixComparisonRepository{db: db}
}

// GetComparison returns the comparison matrix for one verse from the
// materialized view, or nil when no verse matches
func (r *MatrixComparisonRepository) GetComparison(ctx context.Context, surah, ayah int) (*models.Comparison, error) {
	var row struct {
		Surah    int    `db:"surah"`
		Ayah     int    `db:"ayah"`
		Variants []byte `db:"variants"`
	}

	err := r.db.GetContext(ctx, &row, `
		SELECT surah_number AS surah, ayah_number AS ayah, variants
		FROM mv_comparison_matrix
		WHERE surah_number = $1 AND ayah_number = $2
	`, surah, ayah)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comparison matrix: %w", err)
	}

	variants := make(map[string]models.VariantReading)
	if err := json.Unmarshal(row.Variants, &variants); err != nil {
		return nil, fmt.Errorf("decode comparison variants: %w", err)
	}

	return &models.Comparison{
		Surah:    row.Surah,
		Ayah:     row.Ayah,
		Variants: variants,
	}, nil
}

// LiveComparisonRepository computes the comparison matrix per request by
// joining recitation texts against the verse and qiraat tables. Always fresh,
// at the cost of a multi-row join on every lookup.
type LiveComparisonRepository struct {
	db *sqlx.DB
}

// NewLiveComparisonRepository creates the on-demand join comparison repository
func NewLiveComparisonRepository(db *sqlx.DB) repository.ComparisonRepository {
	return &LiveComparisonRepository{db: db}
}

// GetComparison joins the verse's recitation rows and aggregates them into a
// variants map, or returns nil when no verse matches
func (r *LiveComparisonRepository) GetComparison(ctx context.Context, surah, ayah int) (*models.Comparison, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT q.slug, r.text_uthmani, v.page_number, v.juz_number
		FROM recitation_texts r
		JOIN quran_verses v ON v.id = r.verse_id
		JOIN qiraat_metadata q ON q.id = r.qiraat_id
		WHERE v.surah_number = $1 AND v.ayah_number = $2
	`, surah, ayah)
	if err != nil {
		return nil, fmt.Errorf("query comparison rows: %w", err)
	}
	defer rows.Close()

	variants := make(map[string]models.VariantReading)
	for rows.Next() {
		var slug, text string
		var page, juz int
		if err := rows.Scan(&slug, &text, &page, &juz); err != nil {
			return nil, fmt.Errorf("scan comparison row: %w", err)
		}
		variants[slug] = models.VariantReading{Text: text, Page: page, Juz: juz}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparison rows: %w", err)
	}

	if len(variants) == 0 {
		return nil, nil
	}

	return &models.Comparison{
		Surah:    surah,
		Ayah:     ayah,
		Variants: variants,
	}, nil
}
