package services

import (
	"context"
	"testing"
	"time"

	"github.com/qiraat-compare-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareRejectsOutOfRangeInputWithoutStoreCall(t *testing.T) {
	store := testStore()
	svc := NewComparisonService(store, time.Hour)

	cases := []struct {
		name        string
		surah, ayah int
	}{
		{"surah too low", 0, 1},
		{"surah too high", 115, 1},
		{"ayah zero", 1, 0},
		{"ayah negative", 1, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Compare(context.Background(), tc.surah, tc.ayah)
			assert.True(t, apperr.IsValidation(err))
		})
	}
	assert.Equal(t, 0, store.Calls, "validation failures must not reach the store")
}

func TestCompareReportsEveryViolation(t *testing.T) {
	svc := NewComparisonService(testStore(), time.Hour)

	_, err := svc.Compare(context.Background(), 0, 0)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violations, 2)
}

func TestCompareReturnsAllVariants(t *testing.T) {
	svc := NewComparisonService(testStore(), time.Hour)

	result, err := svc.Compare(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Surah)
	assert.Equal(t, 1, result.Ayah)
	require.Len(t, result.Variants, 2)

	hafs, ok := result.Variants["hafs"]
	require.True(t, ok, "default variant must be present")
	assert.Equal(t, "بسم الله الرحمن الرحيم", hafs.Text)
	assert.Equal(t, 1, hafs.Page)
	assert.Equal(t, 1, hafs.Juz)
	assert.Contains(t, result.Variants, "warsh")
}

func TestCompareMissingAyahIsNotFound(t *testing.T) {
	svc := NewComparisonService(testStore(), time.Hour)

	_, err := svc.Compare(context.Background(), 114, 10)
	require.True(t, apperr.IsNotFound(err))
	assert.Contains(t, err.Error(), "surah 114")
	assert.Contains(t, err.Error(), "ayah 10")
}

func TestCompareCachesSuccessfulResults(t *testing.T) {
	store := testStore()
	svc := NewComparisonService(store, time.Hour)

	first, err := svc.Compare(context.Background(), 1, 1)
	require.NoError(t, err)
	second, err := svc.Compare(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Calls, "second call should hit the cache")
	assert.Equal(t, first, second)
}

func TestCompareServesStaleDataWithinTTL(t *testing.T) {
	store := testStore()
	svc := NewComparisonService(store, time.Hour)

	first, err := svc.Compare(context.Background(), 1, 1)
	require.NoError(t, err)

	// Content mutation without a refresh; the cached entry keeps serving.
	store.Verses = nil
	second, err := svc.Compare(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompareRecomputesAfterExpiry(t *testing.T) {
	store := testStore()
	svc := NewComparisonService(store, 10*time.Millisecond)

	_, err := svc.Compare(context.Background(), 1, 1)
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, err = svc.Compare(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Calls)
}

func TestCompareNeverCachesNotFound(t *testing.T) {
	store := testStore()
	svc := NewComparisonService(store, time.Hour)

	_, err := svc.Compare(context.Background(), 3, 1)
	require.True(t, apperr.IsNotFound(err))
	_, err = svc.Compare(context.Background(), 3, 1)
	require.True(t, apperr.IsNotFound(err))

	assert.Equal(t, 2, store.Calls, "not-found outcomes must be recomputed")
}
