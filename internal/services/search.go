package services

import (
	"context"
	"fmt"

	"github.com/qiraat-compare-api/internal/apperr"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchService serves trigram fuzzy search over recitation texts
type SearchService struct {
	repo repository.SearchRepository
}

// NewSearchService creates a new search service
func NewSearchService(repo repository.SearchRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search matches query against recitation texts, optionally scoped to one
// qiraat. A limit of 0 means the default of 20. Zero matches is a success
// with an empty result list, never a not-found.
func (s *SearchService) Search(ctx context.Context, query, qiraat string, limit int) (*models.SearchResponse, error) {
	var violations []string
	if query == "" {
		violations = append(violations, "q must not be empty")
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}
	if limit < 1 || limit > maxSearchLimit {
		violations = append(violations, fmt.Sprintf("limit must be between 1 and %d", maxSearchLimit))
	}
	if len(violations) > 0 {
		return nil, apperr.NewValidation(violations...)
	}

	results, err := s.repo.SearchText(ctx, query, qiraat, limit)
	if err != nil {
		return nil, err
	}

	return &models.SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}
