package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_code,priority:1;uniqueIndex:uq_employee_email,priority:1"`
	EmployeeCode     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_code,priority:2"`
	FullName         string    `gorm:"type:varchar(150);not null"`
	Email            string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email,priority:2"`
	Phone            string    `gorm:"type:varchar(30)"`
	Department       string    `gorm:"type:varchar(80);not null;index"`
	Position         string    `gorm:"type:varchar(80);not null"`
	HireDate         time.Time `gorm:"type:date;not null"`
	EmploymentStatus string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
