package models

// SurahSummary is the catalog entry for one surah
type SurahSummary struct {
	Number     int    `json:"number" db:"number"`
	Name       string `json:"name" db:"name"`
	ArabicName string `json:"arabicName" db:"arabic_name"`
	AyahCount  int    `json:"ayahCount" db:"ayah_count"`
}

// SurahVerse is a verse within a single-surah response; the surah number
// lives on the envelope, not on each row
type SurahVerse struct {
	Ayah int    `json:"ayah" db:"ayah"`
	Page int    `json:"page" db:"page"`
	Juz  int    `json:"juz" db:"juz"`
	Text string `json:"text" db:"text"`
}

// Surah is one surah with all its verses for a single qiraat
type Surah struct {
	Surah      int          `json:"surah"`
	Name       string       `json:"name"`
	ArabicName string       `json:"arabicName"`
	AyahCount  int          `json:"ayahCount"`
	Verses     []SurahVerse `json:"verses"`
}
