package models

// Verse is a single verse with its navigation coordinates and text
type Verse struct {
	Surah int    `json:"surah" db:"surah"`
	Ayah  int    `json:"ayah" db:"ayah"`
	Page  int    `json:"page" db:"page"`
	Juz   int    `json:"juz" db:"juz"`
	Text  string `json:"text" db:"text"`
}

// JuzVerses is the response for a juz navigation query
type JuzVerses struct {
	Juz    int     `json:"juz"`
	Verses []Verse `json:"verses"`
}

// PageVerses is the response for a Mushaf page navigation query
type PageVerses struct {
	Page   int     `json:"page"`
	Verses []Verse `json:"verses"`
}
