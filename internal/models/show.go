package models

import (
	"time"

	"github.com/google/uuid"
)

// Show has no surrogate key: the (venue, artist, start_time) triple is the
// identity, so the same pairing can never be booked twice for one timestamp.
type Show struct {
	VenueID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArtistID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartTime time.Time `gorm:"primaryKey"`
	Venue     Venue     `gorm:"foreignKey:VenueID"`
	Artist    Artist    `gorm:"foreignKey:ArtistID"`
}
