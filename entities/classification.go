package entities

import (
	"github.com/google/uuid"
)

// Classification is a coarse food category from the source dataset. Code is
// the dataset's natural key, Name the human readable label.
type Classification struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Code string    `gorm:"uniqueIndex" json:"code"`
	Name string    `json:"name"`
}
