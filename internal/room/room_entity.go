package room

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusOccupied    = "OCCUPIED"
	StatusCleaning    = "CLEANING"
	StatusMaintenance = "MAINTENANCE"
	StatusOutOfOrder  = "OUT_OF_ORDER"
)

type Room struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	PropertyID      uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_room_number,priority:1"`
	RoomTypeID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	RoomNumber      string         `gorm:"type:varchar(10);not null;uniqueIndex:uq_room_number,priority:2"`
	Floor           int            `gorm:"type:smallint;not null"`
	Status          string         `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	IsSmoking       bool           `gorm:"not null;default:false"`
	Notes           *string        `gorm:"type:text"`
	StatusChangedAt *time.Time     `gorm:"type:timestamptz"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// StatusHistory is an append-only record of every room status change.
type StatusHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null"`
	RoomID     uuid.UUID `gorm:"type:uuid;not null;index:idx_room_status_history_room,priority:1"`
	FromStatus string    `gorm:"type:varchar(20);not null"`
	ToStatus   string    `gorm:"type:varchar(20);not null"`
	Reason     string    `gorm:"type:text"`
	ChangedBy  uuid.UUID `gorm:"type:uuid;not null"`
	ChangedAt  time.Time `gorm:"type:timestamptz;not null;index:idx_room_status_history_room,priority:2,sort:desc"`
}

func (StatusHistory) TableName() string {
	return "room_status_history"
}

// StatusCount is one row of the per-status room summary.
type StatusCount struct {
	Status string
	Total  int64
}
