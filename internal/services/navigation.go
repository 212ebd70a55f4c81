package services

import (
	"context"

	"github.com/qiraat-compare-api/internal/apperr"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// NavigationService serves juz and Mushaf-page verse listings. When the
// caller omits a qiraat it falls back to the configured default variant.
type NavigationService struct {
	repo          repository.SearchRepository
	defaultQiraat string
}

// NewNavigationService creates a navigation service with the given default qiraat
func NewNavigationService(repo repository.SearchRepository, defaultQiraat string) *NavigationService {
	return &NavigationService{repo: repo, defaultQiraat: defaultQiraat}
}

// VersesByJuz returns all verses of one juz for the requested (or default)
// qiraat. An empty result is a NotFoundError: a juz with no content for the
// resolved variant is indistinguishable from a juz that does not exist.
func (s *NavigationService) VersesByJuz(ctx context.Context, juz int, qiraat string) (*models.JuzVerses, error) {
	if juz < 1 || juz > 30 {
		return nil, apperr.NewValidation("juz must be between 1 and 30")
	}

	slug := s.resolveQiraat(qiraat)
	verses, err := s.repo.VersesByJuz(ctx, juz, slug)
	if err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, apperr.NewNotFound("juz", "juz %d, qiraat %q", juz, slug)
	}

	return &models.JuzVerses{Juz: juz, Verses: verses}, nil
}

// VersesByPage returns all verses on one Mushaf page for the requested (or
// default) qiraat, with the same empty-result policy as VersesByJuz.
func (s *NavigationService) VersesByPage(ctx context.Context, page int, qiraat string) (*models.PageVerses, error) {
	if page < 1 {
		return nil, apperr.NewValidation("page must be a positive integer")
	}

	slug := s.resolveQiraat(qiraat)
	verses, err := s.repo.VersesByPage(ctx, page, slug)
	if err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, apperr.NewNotFound("page", "page %d, qiraat %q", page, slug)
	}

	return &models.PageVerses{Page: page, Verses: verses}, nil
}

func (s *NavigationService) resolveQiraat(qiraat string) string {
	if qiraat != "" {
		return qiraat
	}
	return s.defaultQiraat
}
