package app

import (
	"fmt"

	"go-hotel/internal/amenity"
	"go-hotel/internal/attendance"
	"go-hotel/internal/employee"
	"go-hotel/internal/employeesalary"
	"go-hotel/internal/evaluation"
	"go-hotel/internal/messaging/kafka"
	"go-hotel/internal/payroll"
	"go-hotel/internal/photo"
	"go-hotel/internal/property"
	"go-hotel/internal/rbac"
	"go-hotel/internal/room"
	"go-hotel/internal/roomtype"
	"go-hotel/internal/shared/counter"

	"gorm.io/gorm"
)

// Tables written with raw SQL have no gorm model.
var rawSchema = []string{
	`CREATE TABLE IF NOT EXISTS employee_roles (
		employee_id uuid NOT NULL,
		role_id     uuid NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		PRIMARY KEY (employee_id, role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS role_permissions (
		role_id       uuid NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		permission_id uuid NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,
		PRIMARY KEY (role_id, permission_id)
	)`,
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&rbac.RoleRow{},
		&rbac.PermissionRow{},
		&employee.Employee{},
		&employeesalary.EmployeeSalary{},
		&attendance.Attendance{},
		&payroll.Payroll{},
		&evaluation.Evaluation{},
		&property.Property{},
		&amenity.Amenity{},
		&roomtype.RoomType{},
		&roomtype.RoomTypeAmenity{},
		&room.Room{},
		&room.StatusHistory{},
		&photo.Photo{},
		&counter.Counter{},
		&kafka.OutboxEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range rawSchema {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("raw schema: %w", err)
		}
	}
	return nil
}
