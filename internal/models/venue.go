package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	City               string    `gorm:"size:120;not null"`
	Address            string    `gorm:"size:120;not null"`
	Phone              string    `gorm:"size:120;not null"`
	ImageLink          string    `gorm:"size:500"`
	FacebookLink       string    `gorm:"size:120"`
	Website            string    `gorm:"size:120"`
	SeekingTalent      bool      `gorm:"not null;default:false"`
	SeekingDescription string
	StateID            uuid.UUID `gorm:"type:uuid;not null;index"`
	State              State     `gorm:"foreignKey:StateID"`
	Genres             []Genre   `gorm:"many2many:venue_genres;"`
	Shows              []Show    `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
