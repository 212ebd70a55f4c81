package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// QiraatRepository implements repository.QiraatRepository for PostgreSQL
type QiraatRepository struct {
	db *sqlx.DB
}

// NewQiraatRepository creates a new PostgreSQL qiraat repository
func NewQiraatRepository(db *sqlx.DB) repository.QiraatRepository {
	return &QiraatRepository{db: db}
}

// ListQiraat returns all recitation variants ordered by slug
func (r *QiraatRepository) ListQiraat(ctx context.Context) ([]models.Qiraat, error) {
	var qiraat []models.Qiraat
	err := r.db.SelectContext(ctx, &qiraat, `
		SELECT slug, name, description
		FROM qiraat_metadata
		ORDER BY slug
	`)
	if err != nil {
		return nil, fmt.Errorf("list qiraat: %w", err)
	}
	if qiraat == nil {
		qiraat = []models.Qiraat{}
	}
	return qiraat, nil
}
