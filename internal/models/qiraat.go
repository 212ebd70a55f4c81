package models

// Qiraat is one recitation tradition from the catalog
type Qiraat struct {
	Slug        string  `json:"slug" db:"slug"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}
