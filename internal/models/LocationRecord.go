package models

import (
	"gorm.io/gorm"
)

// LocationRecord is one immutable GPS observation for a bus. The auto-increment
// primary key doubles as the push-style insertion-ordered id; rows are only
// ever appended.
type LocationRecord struct {
	gorm.Model
	BusID      string  `json:"bus_id" gorm:"index;not null"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RecordedAt string  `json:"recorded_at" gorm:"index"` // canonical RFC3339
}
