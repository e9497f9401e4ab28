package property

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeHotel     = "HOTEL"
	TypeResort    = "RESORT"
	TypeVilla     = "VILLA"
	TypeApartment = "APARTMENT"
	TypeHostel    = "HOSTEL"

	defaultCheckInTime  = "14:00"
	defaultCheckOutTime = "12:00"
	defaultTimezone     = "Asia/Jakarta"
)

type Property struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_property_code,priority:1"`
	Code         string         `gorm:"type:varchar(20);not null;uniqueIndex:uq_property_code,priority:2"`
	Name         string         `gorm:"type:varchar(150);not null"`
	PropertyType string         `gorm:"type:varchar(20);not null;default:'HOTEL'"`
	StarRating   int            `gorm:"type:smallint;not null;check:star_rating BETWEEN 1 AND 5"`
	Address      string         `gorm:"type:text;not null"`
	City         string         `gorm:"type:varchar(100);not null;index"`
	Country      string         `gorm:"type:varchar(2);not null"`
	Phone        string         `gorm:"type:varchar(30)"`
	Email        string         `gorm:"type:varchar(150)"`
	CheckInTime  string         `gorm:"type:varchar(5);not null"`
	CheckOutTime string         `gorm:"type:varchar(5);not null"`
	Timezone     string         `gorm:"type:varchar(64);not null"`
	IsActive     bool           `gorm:"not null;default:true"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func isKnownType(t string) bool {
	switch t {
	case TypeHotel, TypeResort, TypeVilla, TypeApartment, TypeHostel:
		return true
	}
	return false
}
