package services

import (
	"github.com/qiraat-compare-api/internal/models"
	"github.com/qiraat-compare-api/internal/repository/memory"
)

const defaultQiraat = "hafs"

// testStore builds a small but realistic fixture set: Surah 1 in full for
// hafs with one warsh variant row, the opening of Surah 2, and Surah 114's
// first verse out in Juz 30.
func testStore() *memory.Store {
	describe := func(s string) *string { return &s }

	qiraat := []models.Qiraat{
		{Slug: "warsh", Name: "Warsh 'an Nafi'", Description: nil},
		{Slug: "hafs", Name: "Hafs 'an 'Asim", Description: describe("The most widespread recitation tradition")},
	}

	verses := []memory.Verse{
		{
			Surah: 1, Ayah: 1, Juz: 1, Page: 1,
			SurahNameEn: "Al-Fatihah", SurahNameAr: "الفاتحة",
			Texts: map[string]string{
				"hafs":  "بسم الله الرحمن الرحيم",
				"warsh": "بسم الله الرحمن الرحيم",
			},
		},
		{
			Surah: 1, Ayah: 2, Juz: 1, Page: 1,
			Texts: map[string]string{"hafs": "الحمد لله رب العالمين"},
		},
		{
			Surah: 1, Ayah: 3, Juz: 1, Page: 1,
			Texts: map[string]string{"hafs": "الرحمن الرحيم"},
		},
		{
			Surah: 2, Ayah: 1, Juz: 1, Page: 2,
			SurahNameEn: "Al-Baqarah", SurahNameAr: "البقرة",
			Texts: map[string]string{"hafs": "الم"},
		},
		{
			Surah: 114, Ayah: 1, Juz: 30, Page: 604,
			SurahNameEn: "An-Nas", SurahNameAr: "الناس",
			Texts: map[string]string{"hafs": "قل أعوذ برب الناس"},
		},
	}

	return memory.NewStore(verses, qiraat)
}
