package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/qiraat-compare-api/internal/apperr"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// ComparisonService serves cross-qiraat verse comparisons behind a
// read-through TTL cache. Only successful lookups are cached; a not-found
// verse is recomputed on every call. Concurrent misses for the same verse may
// both populate the cache; last write wins and both computed the same value.
type ComparisonService struct {
	repo  repository.ComparisonRepository
	cache *gocache.Cache
}

// NewComparisonService creates a comparison service caching results for ttl
func NewComparisonService(repo repository.ComparisonRepository, ttl time.Duration) *ComparisonService {
	return &ComparisonService{
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Compare returns the comparison matrix for one verse. Out-of-range input
// yields a ValidationError without touching the store; a missing verse (or a
// verse with no recitation rows) yields a NotFoundError.
func (s *ComparisonService) Compare(ctx context.Context, surah, ayah int) (*models.Comparison, error) {
	var violations []string
	if surah < 1 || surah > 114 {
		violations = append(violations, "surah must be between 1 and 114")
	}
	if ayah < 1 {
		violations = append(violations, "ayah must be a positive integer")
	}
	if len(violations) > 0 {
		return nil, apperr.NewValidation(violations...)
	}

	key := fmt.Sprintf("compare_%d_%d", surah, ayah)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.Comparison), nil
	}

	result, err := s.repo.GetComparison(ctx, surah, ayah)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperr.NewNotFound("verse", "surah %d, ayah %d", surah, ayah)
	}

	s.cache.Set(key, result, gocache.DefaultExpiration)
	return result, nil
}
