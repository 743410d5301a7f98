package models

import (
	"github.com/google/uuid"
)

type State struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`
}
