package models

import (
	"github.com/google/uuid"
)

type Genre struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`
}
