package services

import (
	"context"
	"testing"

	"github.com/qiraat-compare-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSurahValidatesNumber(t *testing.T) {
	store := testStore()
	svc := NewSurahService(store, defaultQiraat)

	for _, number := range []int{0, -1, 115} {
		_, err := svc.GetSurah(context.Background(), number, "")
		assert.True(t, apperr.IsValidation(err), "surah %d should be rejected", number)
	}
	assert.Equal(t, 0, store.Calls)
}

func TestListSurahs(t *testing.T) {
	svc := NewSurahService(testStore(), defaultQiraat)

	surahs, err := svc.ListSurahs(context.Background())
	require.NoError(t, err)
	require.Len(t, surahs, 3)

	assert.Equal(t, 1, surahs[0].Number)
	assert.Equal(t, "Al-Fatihah", surahs[0].Name)
	assert.Equal(t, "الفاتحة", surahs[0].ArabicName)
	assert.Equal(t, 3, surahs[0].AyahCount)

	assert.Equal(t, 2, surahs[1].Number)
	assert.Equal(t, 114, surahs[2].Number)
}

func TestGetSurahWithDefaultQiraat(t *testing.T) {
	svc := NewSurahService(testStore(), defaultQiraat)

	surah, err := svc.GetSurah(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, 1, surah.Surah)
	assert.Equal(t, "Al-Fatihah", surah.Name)
	assert.Equal(t, 3, surah.AyahCount)
	require.Len(t, surah.Verses, 3)
	for i, v := range surah.Verses {
		assert.Equal(t, i+1, v.Ayah)
	}
}

func TestGetSurahWithPartialVariantCoverage(t *testing.T) {
	svc := NewSurahService(testStore(), defaultQiraat)

	// Warsh only covers the first ayah in the fixtures.
	surah, err := svc.GetSurah(context.Background(), 1, "warsh")
	require.NoError(t, err)
	require.Len(t, surah.Verses, 1)
	assert.Equal(t, 1, surah.Verses[0].Ayah)
	// AyahCount describes the surah, not the variant's coverage.
	assert.Equal(t, 3, surah.AyahCount)
}

func TestGetSurahVariantWithoutRowsIsNotFound(t *testing.T) {
	svc := NewSurahService(testStore(), defaultQiraat)

	// Surah 2 exists for hafs but has no warsh recitation rows.
	_, err := svc.GetSurah(context.Background(), 2, "warsh")
	require.True(t, apperr.IsNotFound(err))
	assert.Contains(t, err.Error(), "surah 2")
	assert.Contains(t, err.Error(), `"warsh"`)
}

func TestGetSurahMissingNumberIsNotFound(t *testing.T) {
	svc := NewSurahService(testStore(), defaultQiraat)

	_, err := svc.GetSurah(context.Background(), 3, "")
	assert.True(t, apperr.IsNotFound(err))
}

func TestListQiraatOrderedBySlug(t *testing.T) {
	svc := NewQiraatService(testStore())

	qiraat, err := svc.ListQiraat(context.Background())
	require.NoError(t, err)
	require.Len(t, qiraat, 2)
	assert.Equal(t, "hafs", qiraat[0].Slug)
	assert.Equal(t, "warsh", qiraat[1].Slug)
	require.NotNil(t, qiraat[0].Description)
	assert.Nil(t, qiraat[1].Description)
}
