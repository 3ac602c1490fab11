package models

import "time"

// Question is one imported bank entry. Question text is unique so repeated
// imports stay idempotent; insertion order (id) is the tie-break order for
// matching.
type Question struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Question  string `gorm:"type:text;not null;uniqueIndex"`
	Answer    string `gorm:"type:text;not null"`
}
