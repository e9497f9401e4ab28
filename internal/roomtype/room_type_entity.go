package roomtype

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomType struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	PropertyID   uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:uq_room_type_code,priority:1"`
	Code         string            `gorm:"type:varchar(20);not null;uniqueIndex:uq_room_type_code,priority:2"`
	Name         string            `gorm:"type:varchar(100);not null"`
	Description  string            `gorm:"type:text"`
	BaseRate     decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	Currency     string            `gorm:"type:varchar(3);not null;default:'IDR'"`
	MaxOccupancy int               `gorm:"type:smallint;not null"`
	BedType      string            `gorm:"type:varchar(30)"`
	SizeSqm      *float64          `gorm:"type:numeric(6,1)"`
	Amenities    []RoomTypeAmenity `gorm:"foreignKey:RoomTypeID"`
	CreatedAt    time.Time         `gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt    `gorm:"index"`
}

// RoomTypeAmenity is the join row between a room type and an amenity.
type RoomTypeAmenity struct {
	RoomTypeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AmenityID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (RoomTypeAmenity) TableName() string {
	return "room_type_amenities"
}

func (rt RoomType) amenityIDs() []string {
	ids := make([]string, len(rt.Amenities))
	for i, a := range rt.Amenities {
		ids[i] = a.AmenityID.String()
	}
	return ids
}
