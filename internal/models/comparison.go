package models

// VariantReading is one recitation tradition's rendering of a verse
type VariantReading struct {
	Text string `json:"text"`
	Page int    `json:"page"`
	Juz  int    `json:"juz"`
}

// Comparison maps every available qiraat slug to its reading of one verse
type Comparison struct {
	Surah    int                       `json:"surah"`
	Ayah     int                       `json:"ayah"`
	Variants map[string]VariantReading `json:"variants"`
}
