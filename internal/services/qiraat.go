package services

import (
	"context"

	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// QiraatService serves the recitation-variant catalog
type QiraatService struct {
	repo repository.QiraatRepository
}

// NewQiraatService creates a new qiraat service
func NewQiraatService(repo repository.QiraatRepository) *QiraatService {
	return &QiraatService{repo: repo}
}

// ListQiraat returns all known recitation variants; an empty catalog is a
// valid (if unexpected) answer, not an error
func (s *QiraatService) ListQiraat(ctx context.Context) ([]models.Qiraat, error) {
	return s.repo.ListQiraat(ctx)
}
