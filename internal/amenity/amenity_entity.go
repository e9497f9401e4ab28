package amenity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryRoom     = "ROOM"
	CategoryProperty = "PROPERTY"
	CategoryService  = "SERVICE"
)

type Amenity struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_amenity_name,priority:1"`
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_amenity_name,priority:2"`
	Category    string         `gorm:"type:varchar(20);not null;default:'ROOM'"`
	Icon        string         `gorm:"type:varchar(50)"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func isKnownCategory(c string) bool {
	switch c {
	case CategoryRoom, CategoryProperty, CategoryService:
		return true
	}
	return false
}
