package models

// SearchResult is a single fuzzy match, tagged with the variant it came from
type SearchResult struct {
	Surah  int     `json:"surah" db:"surah"`
	Ayah   int     `json:"ayah" db:"ayah"`
	Text   string  `json:"text" db:"text"`
	Qiraat string  `json:"qiraat" db:"qiraat"`
	Score  float64 `json:"score" db:"score"`
}

// SearchResponse is the response for a text search; an empty result set is a
// valid success, never an error
type SearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}
