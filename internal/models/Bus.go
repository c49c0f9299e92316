// internal/models/bus.go
package models

import (
	"gorm.io/gorm"
)

// Bus is a tracked vehicle identity. BusID is assigned externally and never
// changes; the unique index on it is what makes registration create-if-absent.
type Bus struct {
	gorm.Model
	BusID  string `json:"bus_id" gorm:"uniqueIndex;not null"`
	Name   string `json:"name"`
	Active bool   `json:"active" gorm:"default:true"`

	// Locations keys off BusID rather than the numeric primary key so reports
	// can reference the external identifier directly.
	Locations []LocationRecord `gorm:"foreignKey:BusID;references:BusID" json:"locations,omitempty"`
}
