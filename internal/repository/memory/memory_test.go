package memory

import (
	"context"
	"testing"

	"github.com/qiraat-compare-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityIdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("بسم الله الرحمن الرحيم", "بسم الله الرحمن الرحيم"))
}

func TestSimilarityDisjointStrings(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}

func TestSimilarityEmptyString(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "بسم"))
	assert.Equal(t, 0.0, Similarity("بسم", ""))
}

func TestSimilarityIsCaseAndOrderInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Alpha Beta", "beta ALPHA"))
}

func TestSimilarityPartialOverlapIsBetweenZeroAndOne(t *testing.T) {
	score := Similarity("الرحمن الرحيم", "بسم الله الرحمن الرحيم")
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

func TestStoreOrdersVersesByRecitationOrder(t *testing.T) {
	// Deliberately out of storage order.
	store := NewStore([]Verse{
		{Surah: 2, Ayah: 1, Juz: 1, Page: 2, Texts: map[string]string{"hafs": "الم"}},
		{Surah: 1, Ayah: 2, Juz: 1, Page: 1, Texts: map[string]string{"hafs": "b"}},
		{Surah: 1, Ayah: 1, Juz: 1, Page: 1, Texts: map[string]string{"hafs": "a"}},
	}, nil)

	verses, err := store.VersesByJuz(context.Background(), 1, "hafs")
	require.NoError(t, err)
	require.Len(t, verses, 3)
	assert.Equal(t, []models.Verse{
		{Surah: 1, Ayah: 1, Page: 1, Juz: 1, Text: "a"},
		{Surah: 1, Ayah: 2, Page: 1, Juz: 1, Text: "b"},
		{Surah: 2, Ayah: 1, Page: 2, Juz: 1, Text: "الم"},
	}, verses)
}

func TestStoreCountsCalls(t *testing.T) {
	store := NewStore(nil, nil)
	_, _ = store.GetComparison(context.Background(), 1, 1)
	_, _ = store.ListQiraat(context.Background())
	assert.Equal(t, 2, store.Calls)
}
