package payroll_test

import (
	"context"
	"testing"
	"time"

	"go-hotel/internal/payroll"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormRepo(t *testing.T) (payroll.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return payroll.NewRepository(db), mock
}

func TestRepository_SavePayslip(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()
	at := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	update := `UPDATE "payrolls" SET "payslip_generated_at"=\$1,"payslip_path"=\$2 WHERE`

	t.Run("sets payslip columns only", func(t *testing.T) {
		repo, mock := newGormRepo(t)
		mock.ExpectExec(update).
			WithArgs(at, "payslips/2026-03/p.pdf", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SavePayslip(ctx, companyID, id, "payslips/2026-03/p.pdf", at)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newGormRepo(t)
		mock.ExpectExec(update).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SavePayslip(ctx, companyID, id, "payslips/2026-03/p.pdf", at)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRepository_FindByIDAndCompanyForUpdate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	id := uuid.New()
	employeeID := uuid.New()

	repo, mock := newGormRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "payrolls" WHERE .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "employee_id", "status"}).
			AddRow(id.String(), companyID.String(), employeeID.String(), payroll.StatusDraft))
	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_code"}).AddRow(employeeID.String(), "EMP-000001"))

	got, err := repo.FindByIDAndCompanyForUpdate(ctx, companyID.String(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusDraft, got.Status)
	assert.Equal(t, "EMP-000001", got.Employee.EmployeeCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
