package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Attendance, error)
	FindByEmployeeBetween(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return connection.Conn(ctx, r.db, r.tx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format(dateLayout)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Attendance, error) {
	var rows []Attendance
	query := connection.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month > 0 && filter.Year > 0 {
		from, to := monthRange(filter.Month, filter.Year)
		query = query.Where("attendance_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout))
	}
	err := query.Order("attendance_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeBetween(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return connection.Conn(ctx, r.db, r.tx).Save(a).Error
}
