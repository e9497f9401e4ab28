package employeesalary

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeesalaryerrors "go-hotel/internal/employeesalary/errors"
	"go-hotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_salary_service.go -destination=mock/employee_salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	GetAll(ctx context.Context, companyID string, employeeID string) ([]EmployeeSalaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeSalaryResponse, error)
	GetEffectiveSalary(ctx context.Context, companyID, employeeID string, asOf time.Time) (decimal.Decimal, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidCompanyID
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}
	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}
	if !req.BaseSalary.IsPositive() {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidBaseSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create salary begin tx failed", zap.Error(err))
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	salary := &EmployeeSalary{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeID,
		BaseSalary:    req.BaseSalary.Round(2),
		EffectiveDate: effectiveDate,
	}

	if err := qtx.Create(ctx, salary); err != nil {
		log.Warn("create salary persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	created, err := qtx.FindByIDAndCompany(ctx, companyID, salary.ID.String())
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create salary commit failed", zap.Error(err))
		return EmployeeSalaryResponse{}, err
	}

	log.Info("employee salary created",
		zap.String("salary_id", salary.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("effective_date", req.EffectiveDate),
	)

	return mapToResponse(*created), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	employeeID string,
) ([]EmployeeSalaryResponse, error) {
	salaries, err := s.repo.FindAllByCompany(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("list salaries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeSalaryResponse, error) {
	salary, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*salary), nil
}

// GetEffectiveSalary returns the base salary in force for the employee on asOf.
func (s *service) GetEffectiveSalary(
	ctx context.Context,
	companyID, employeeID string,
	asOf time.Time,
) (decimal.Decimal, error) {
	salary, err := s.repo.FindEffective(ctx, companyID, employeeID, asOf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, employeesalaryerrors.ErrNoEffectiveSalary
		}
		return decimal.Zero, err
	}

	return salary.BaseSalary, nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}
	if !req.BaseSalary.IsPositive() {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidBaseSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	salary, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	salary.BaseSalary = req.BaseSalary.Round(2)
	salary.EffectiveDate = effectiveDate

	if err := qtx.Update(ctx, salary); err != nil {
		log.Warn("update salary persist failed", zap.String("salary_id", id), zap.Error(err))
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	return mapToResponse(*salary), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(salary EmployeeSalary) EmployeeSalaryResponse {
	return EmployeeSalaryResponse{
		ID:            salary.ID.String(),
		EmployeeID:    salary.EmployeeID.String(),
		EmployeeName:  salary.EmployeeName,
		BaseSalary:    salary.BaseSalary,
		EffectiveDate: salary.EffectiveDate.Format(dateLayout),
	}
}

func mapToListResponse(salaries []EmployeeSalary) []EmployeeSalaryResponse {
	res := make([]EmployeeSalaryResponse, len(salaries))
	for i, salary := range salaries {
		res[i] = mapToResponse(salary)
	}
	return res
}
