// Package memory provides a fixture-backed implementation of every repository
// interface. It exists so use-case and handler logic can be exercised without
// a live PostgreSQL instance; its trigram scorer mirrors pg_trgm closely
// enough for ranking assertions.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/qiraat-compare-api/internal/models"
)

// DefaultThreshold mirrors the pg_trgm.similarity_threshold default.
const DefaultThreshold = 0.3

// Verse is one fixture verse with its per-qiraat texts. SurahNameEn and
// SurahNameAr are only meaningful on each surah's first ayah, matching how
// the real schema stores display names in recitation metadata.
type Verse struct {
	Surah, Ayah, Juz, Page int
	Texts                  map[string]string
	SurahNameEn            string
	SurahNameAr            string
}

// Store holds fixtures and implements ComparisonRepository, SurahRepository,
// QiraatRepository, and SearchRepository. Calls counts every method
// invocation so tests can assert that invalid input never reaches the store.
type Store struct {
	Verses    []Verse
	Qiraat    []models.Qiraat
	Threshold float64
	Calls     int
}

// NewStore creates a Store over the given fixtures with the default
// similarity threshold
func NewStore(verses []Verse, qiraat []models.Qiraat) *Store {
	return &Store{Verses: verses, Qiraat: qiraat, Threshold: DefaultThreshold}
}

// GetComparison returns the variants map for one verse, or nil when the verse
// is absent or has no recitation texts
func (s *Store) GetComparison(_ context.Context, surah, ayah int) (*models.Comparison, error) {
	s.Calls++
	for _, v := range s.Verses {
		if v.Surah != surah || v.Ayah != ayah || len(v.Texts) == 0 {
			continue
		}
		variants := make(map[string]models.VariantReading, len(v.Texts))
		for slug, text := range v.Texts {
			variants[slug] = models.VariantReading{Text: text, Page: v.Page, Juz: v.Juz}
		}
		return &models.Comparison{Surah: surah, Ayah: ayah, Variants: variants}, nil
	}
	return nil, nil
}

// ListSurahs returns catalog metadata for every fixture surah
func (s *Store) ListSurahs(_ context.Context) ([]models.SurahSummary, error) {
	s.Calls++
	byNumber := make(map[int]*models.SurahSummary)
	for _, v := range s.Verses {
		sum, ok := byNumber[v.Surah]
		if !ok {
			sum = &models.SurahSummary{Number: v.Surah, Name: fmt.Sprintf("Surah %d", v.Surah)}
			byNumber[v.Surah] = sum
		}
		sum.AyahCount++
		if v.Ayah == 1 && v.SurahNameEn != "" {
			sum.Name = v.SurahNameEn
			sum.ArabicName = v.SurahNameAr
		}
	}

	summaries := make([]models.SurahSummary, 0, len(byNumber))
	for _, sum := range byNumber {
		summaries = append(summaries, *sum)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Number < summaries[j].Number })
	return summaries, nil
}

// GetSurah returns one surah's verses for the given slug, or nil when the
// surah number has no fixture verses at all
func (s *Store) GetSurah(_ context.Context, number int, slug string) (*models.Surah, error) {
	s.Calls++
	result := &models.Surah{
		Surah:  number,
		Name:   fmt.Sprintf("Surah %d", number),
		Verses: []models.SurahVerse{},
	}

	found := false
	for _, v := range s.Verses {
		if v.Surah != number {
			continue
		}
		found = true
		result.AyahCount++
		if v.Ayah == 1 && v.SurahNameEn != "" {
			result.Name = v.SurahNameEn
			result.ArabicName = v.SurahNameAr
		}
		if text, ok := v.Texts[slug]; ok {
			result.Verses = append(result.Verses, models.SurahVerse{
				Ayah: v.Ayah, Page: v.Page, Juz: v.Juz, Text: text,
			})
		}
	}
	if !found {
		return nil, nil
	}

	sort.Slice(result.Verses, func(i, j int) bool { return result.Verses[i].Ayah < result.Verses[j].Ayah })
	return result, nil
}

// ListQiraat returns the fixture qiraat catalog ordered by slug
func (s *Store) ListQiraat(_ context.Context) ([]models.Qiraat, error) {
	s.Calls++
	out := make([]models.Qiraat, len(s.Qiraat))
	copy(out, s.Qiraat)
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// VersesByJuz returns one juz's verses for the given slug in recitation order
func (s *Store) VersesByJuz(_ context.Context, juz int, slug string) ([]models.Verse, error) {
	s.Calls++
	return s.versesWhere(func(v Verse) bool { return v.Juz == juz }, slug), nil
}

// VersesByPage returns one page's verses for the given slug in recitation order
func (s *Store) VersesByPage(_ context.Context, page int, slug string) ([]models.Verse, error) {
	s.Calls++
	return s.versesWhere(func(v Verse) bool { return v.Page == page }, slug), nil
}

func (s *Store) versesWhere(match func(Verse) bool, slug string) []models.Verse {
	verses := []models.Verse{}
	for _, v := range s.Verses {
		if !match(v) {
			continue
		}
		if text, ok := v.Texts[slug]; ok {
			verses = append(verses, models.Verse{
				Surah: v.Surah, Ayah: v.Ayah, Page: v.Page, Juz: v.Juz, Text: text,
			})
		}
	}
	sort.Slice(verses, func(i, j int) bool {
		if verses[i].Surah != verses[j].Surah {
			return verses[i].Surah < verses[j].Surah
		}
		return verses[i].Ayah < verses[j].Ayah
	})
	return verses
}

// SearchText scores every (verse, variant) text against the query and returns
// matches above the threshold, ordered by descending score with (surah, ayah)
// as the tiebreak
func (s *Store) SearchText(_ context.Context, query, slug string, limit int) ([]models.SearchResult, error) {
	s.Calls++
	results := []models.SearchResult{}
	for _, v := range s.Verses {
		for textSlug, text := range v.Texts {
			if slug != "" && textSlug != slug {
				continue
			}
			score := Similarity(query, text)
			if score <= s.Threshold {
				continue
			}
			results = append(results, models.SearchResult{
				Surah: v.Surah, Ayah: v.Ayah, Text: text, Qiraat: textSlug, Score: score,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Surah != results[j].Surah {
			return results[i].Surah < results[j].Surah
		}
		return results[i].Ayah < results[j].Ayah
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Similarity computes pg_trgm-style trigram similarity: the Jaccard ratio of
// the two strings' trigram sets, with each word padded the way pg_trgm pads
// (two leading spaces, one trailing).
func Similarity(a, b string) float64 {
	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	shared := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

func trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(s)) {
		padded := []rune("  " + word + " ")
		for i := 0; i+3 <= len(padded); i++ {
			set[string(padded[i:i+3])] = struct{}{}
		}
	}
	return set
}
