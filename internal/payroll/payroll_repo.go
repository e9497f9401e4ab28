package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const employeeStatusActive = "active"

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Payroll, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payroll, error)
	FindByIDAndCompanyForUpdate(ctx context.Context, companyID string, id string) (*Payroll, error)
	Update(ctx context.Context, payroll *Payroll) error
	SavePayslip(ctx context.Context, companyID string, id string, path string, generatedAt time.Time) error
	Delete(ctx context.Context, companyID string, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error)
	ListActiveEmployeeIDs(ctx context.Context, companyID string) ([]string, error)
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return connection.Conn(ctx, r.db, r.tx).
		Omit("Employee").
		Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Payroll, error) {
	query := connection.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))

	if filter.Month != 0 {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}

	var payrolls []Payroll
	err := query.
		Order("year DESC").
		Order("month DESC").
		Order("created_at ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payroll, error) {
	var payroll Payroll
	err := connection.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

// FindByIDAndCompanyForUpdate locks the row until the surrounding
// transaction ends. Only meaningful on a repository bound with WithTx.
func (r *repository) FindByIDAndCompanyForUpdate(ctx context.Context, companyID string, id string) (*Payroll, error) {
	var payroll Payroll
	err := connection.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return connection.Conn(ctx, r.db, r.tx).
		Omit("Employee").
		Save(payroll).Error
}

// SavePayslip touches only the payslip columns so a concurrent status
// change is never overwritten.
func (r *repository) SavePayslip(ctx context.Context, companyID string, id string, path string, generatedAt time.Time) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Model(&Payroll{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"payslip_path":         path,
			"payslip_generated_at": generatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Payroll{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error) {
	var count int64
	err := connection.Conn(ctx, r.db, r.tx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListActiveEmployeeIDs(ctx context.Context, companyID string) ([]string, error) {
	var ids []string
	err := connection.Conn(ctx, r.db, r.tx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("employment_status = ?", employeeStatusActive).
		Where("deleted_at IS NULL").
		Order("employee_code ASC").
		Pluck("id", &ids).Error
	return ids, err
}
