package evaluation

import (
	"context"
	"database/sql"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, evaluation *Evaluation) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Evaluation, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Evaluation, error)
	FindByIDAndCompanyForUpdate(ctx context.Context, companyID string, id string) (*Evaluation, error)
	Update(ctx context.Context, evaluation *Evaluation) error
	Delete(ctx context.Context, companyID string, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, evaluation *Evaluation) error {
	return connection.Conn(ctx, r.db, r.tx).
		Omit("Employee", "Evaluator").
		Create(evaluation).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Evaluation, error) {
	query := connection.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Preload("Evaluator").
		Scopes(tenant.Scope(companyID))

	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.EvaluatorID != "" {
		query = query.Where("evaluator_id = ?", filter.EvaluatorID)
	}
	if filter.Period != "" {
		query = query.Where("period = ?", filter.Period)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var evaluations []Evaluation
	err := query.
		Order("period DESC").
		Order("created_at DESC").
		Find(&evaluations).Error
	return evaluations, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Evaluation, error) {
	var evaluation Evaluation
	err := connection.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Preload("Evaluator").
		Scopes(tenant.Scope(companyID)).
		First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// FindByIDAndCompanyForUpdate holds a row lock for the rest of the transaction.
func (r *repository) FindByIDAndCompanyForUpdate(ctx context.Context, companyID string, id string) (*Evaluation, error) {
	var evaluation Evaluation
	err := connection.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Employee").
		Preload("Evaluator").
		Scopes(tenant.Scope(companyID)).
		First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *repository) Update(ctx context.Context, evaluation *Evaluation) error {
	return connection.Conn(ctx, r.db, r.tx).
		Omit("Employee", "Evaluator").
		Save(evaluation).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Evaluation{}, "id = ?", id)
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
