package photo

import (
	"time"

	"github.com/google/uuid"
)

const (
	OwnerProperty = "PROPERTY"
	OwnerRoomType = "ROOM_TYPE"
	OwnerRoom     = "ROOM"
)

// Photo is an image attached to a property, room type or room. At most one
// photo per owner is primary.
type Photo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerType   string    `gorm:"type:varchar(20);not null;index:idx_photo_owner,priority:1;uniqueIndex:uq_photo_primary,priority:1,where:is_primary"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_photo_owner,priority:2;uniqueIndex:uq_photo_primary,priority:2"`
	StorageKey  string    `gorm:"type:varchar(500);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(50);not null"`
	SizeBytes   int64     `gorm:"not null"`
	Width       int       `gorm:"not null"`
	Height      int       `gorm:"not null"`
	Caption     string    `gorm:"type:varchar(255)"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	SortOrder   int       `gorm:"not null;default:0"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func isKnownOwnerType(t string) bool {
	switch t {
	case OwnerProperty, OwnerRoomType, OwnerRoom:
		return true
	}
	return false
}
