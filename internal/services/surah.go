package services

import (
	"context"

	"github.com/qiraat-compare-api/internal/apperr"
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository"
)

// SurahService serves the surah catalog and single-surah verse listings
type SurahService struct {
	repo          repository.SurahRepository
	defaultQiraat string
}

// NewSurahService creates a surah service with the given default qiraat
func NewSurahService(repo repository.SurahRepository, defaultQiraat string) *SurahService {
	return &SurahService{repo: repo, defaultQiraat: defaultQiraat}
}

// ListSurahs returns catalog metadata for all surahs
func (s *SurahService) ListSurahs(ctx context.Context) ([]models.SurahSummary, error) {
	return s.repo.ListSurahs(ctx)
}

// GetSurah returns one surah with its verses for the requested (or default)
// qiraat. A surah that exists but has no recitation rows for the resolved
// variant is reported as not found, the same as an absent surah.
func (s *SurahService) GetSurah(ctx context.Context, number int, qiraat string) (*models.Surah, error) {
	if number < 1 || number > 114 {
		return nil, apperr.NewValidation("surah must be between 1 and 114")
	}

	slug := qiraat
	if slug == "" {
		slug = s.defaultQiraat
	}

	surah, err := s.repo.GetSurah(ctx, number, slug)
	if err != nil {
		return nil, err
	}
	if surah == nil || len(surah.Verses) == 0 {
		return nil, apperr.NewNotFound("surah", "surah %d, qiraat %q", number, slug)
	}

	return surah, nil
}
