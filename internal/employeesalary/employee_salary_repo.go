package employeesalary

import (
	"context"
	"database/sql"
	"time"

	"go-hotel/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_salary_repo.go -destination=mock/employee_salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, salary *EmployeeSalary) error
	FindAllByCompany(ctx context.Context, companyID string, employeeID string) ([]EmployeeSalary, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*EmployeeSalary, error)
	FindEffective(ctx context.Context, companyID string, employeeID string, asOf time.Time) (*EmployeeSalary, error)
	Update(ctx context.Context, salary *EmployeeSalary) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, salary *EmployeeSalary) error {
	return connection.Conn(ctx, r.db, r.tx).Create(salary).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, employeeID string) ([]EmployeeSalary, error) {
	var salaries []EmployeeSalary
	query := connection.Conn(ctx, r.db, r.tx).
		Table("employee_salaries").
		Select("employee_salaries.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = employee_salaries.employee_id").
		Where("employee_salaries.company_id = ?", companyID)
	if employeeID != "" {
		query = query.Where("employee_salaries.employee_id = ?", employeeID)
	}

	err := query.
		Order("employees.full_name ASC").
		Order("employee_salaries.effective_date DESC").
		Scan(&salaries).Error
	return salaries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := connection.Conn(ctx, r.db, r.tx).
		Table("employee_salaries").
		Select("employee_salaries.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = employee_salaries.employee_id").
		Where("employee_salaries.id = ?", id).
		Where("employee_salaries.company_id = ?", companyID).
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *repository) FindEffective(ctx context.Context, companyID string, employeeID string, asOf time.Time) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := connection.Conn(ctx, r.db, r.tx).
		Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Where("effective_date <= ?", asOf.Format(dateLayout)).
		Order("effective_date DESC").
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *repository) Update(ctx context.Context, salary *EmployeeSalary) error {
	return connection.Conn(ctx, r.db, r.tx).
		Model(&EmployeeSalary{}).
		Where("id = ? AND company_id = ?", salary.ID, salary.CompanyID).
		Updates(map[string]any{
			"base_salary":    salary.BaseSalary,
			"effective_date": salary.EffectiveDate,
			"updated_at":     time.Now(),
		}).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&EmployeeSalary{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
