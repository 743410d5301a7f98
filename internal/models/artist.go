package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	City               string    `gorm:"size:120;not null"`
	Phone              string    `gorm:"size:120;not null"`
	ImageLink          string    `gorm:"size:500"`
	FacebookLink       string    `gorm:"size:120"`
	Website            string    `gorm:"size:120"`
	SeekingVenue       bool      `gorm:"not null;default:false"`
	SeekingDescription string
	AvailableFrom      *time.Time
	AvailableTo        *time.Time
	StateID            uuid.UUID `gorm:"type:uuid;not null;index"`
	State              State     `gorm:"foreignKey:StateID"`
	Genres             []Genre   `gorm:"many2many:artist_genres;"`
	Shows              []Show    `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (artist *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return
}
