package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go-hotel/internal/events"
	"go-hotel/internal/messaging/kafka"
	kafkaMock "go-hotel/internal/messaging/kafka/mock"
	"go-hotel/internal/payroll"
	payrollerrors "go-hotel/internal/payroll/errors"
	payrollMock "go-hotel/internal/payroll/mock"
	"go-hotel/internal/shared/apperror"
	"go-hotel/internal/shared/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeSalaryLookup struct {
	fn func(ctx context.Context, companyID, employeeID string, asOf time.Time) (decimal.Decimal, error)
}

func (f *fakeSalaryLookup) GetEffectiveSalary(ctx context.Context, companyID, employeeID string, asOf time.Time) (decimal.Decimal, error) {
	return f.fn(ctx, companyID, employeeID, asOf)
}

type fakeWorkingDays struct {
	days int
	err  error
}

func (f *fakeWorkingDays) CountWorkingDays(context.Context, string, string, int, int) (int, error) {
	return f.days, f.err
}

type serviceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    payroll.Service
	repo       *payrollMock.MockRepository
	outbox     *kafkaMock.MockOutboxRepository
	salaries   *fakeSalaryLookup
	attendance *fakeWorkingDays
	storage    storage.FileStorage
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	store, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	assert.NoError(t, err)

	deps := &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    payrollMock.NewMockRepository(ctrl),
		outbox:  kafkaMock.NewMockOutboxRepository(ctrl),
		storage: store,
		salaries: &fakeSalaryLookup{fn: func(context.Context, string, string, time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(11_000_000), nil
		}},
		attendance: &fakeWorkingDays{days: 22},
	}
	deps.service = payroll.NewService(payroll.ServiceDeps{
		DB:         db,
		Repo:       deps.repo,
		Calculator: payroll.NewCalculator(payroll.DefaultPolicy()),
		Salaries:   deps.salaries,
		Attendance: deps.attendance,
		Outbox:     deps.outbox,
		Storage:    store,
		Workers:    2,
	})
	return deps
}

func draftPayroll(companyID uuid.UUID, status string) *payroll.Payroll {
	calc := payroll.NewCalculator(payroll.DefaultPolicy())
	b, _ := calc.Calculate(payroll.Input{
		BasicSalary: decimal.NewFromInt(11_000_000),
		WorkingDays: 22,
	})
	return &payroll.Payroll{
		ID:              uuid.New(),
		CompanyID:       companyID,
		EmployeeID:      uuid.New(),
		Employee:        &payroll.PayrollEmployee{EmployeeCode: "EMP-000001", FullName: "Ayu Lestari"},
		Month:           3,
		Year:            2026,
		BasicSalary:     b.BasicSalary,
		WorkingDays:     b.WorkingDays,
		DailySalary:     b.DailySalary,
		AdjustedBasic:   b.AdjustedBasic,
		OvertimeHours:   b.OvertimeHours,
		OvertimeRate:    b.OvertimeRate,
		OvertimePay:     b.OvertimePay,
		Allowances:      b.Allowances,
		Deductions:      b.Deductions,
		GrossPay:        b.GrossPay,
		TaxMode:         string(b.TaxMode),
		TaxRate:         b.TaxRate,
		Tax:             b.Tax,
		SocialInsurance: b.SocialInsurance,
		HealthInsurance: b.HealthInsurance,
		NetPay:          b.NetPay,
		Status:          status,
		CreatedBy:       uuid.New(),
	}
}

func TestPayrollService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("fills salary and working days from lookups", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.salaries.fn = func(_ context.Context, gotCompany, gotEmployee string, asOf time.Time) (decimal.Decimal, error) {
			assert.Equal(t, companyID, gotCompany)
			assert.Equal(t, employeeID, gotEmployee)
			assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), asOf)
			return decimal.NewFromInt(11_000_000), nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().EmployeeBelongsToCompany(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payroll.Payroll) error {
				assert.Equal(t, payroll.StatusDraft, p.Status)
				assert.Equal(t, 3, p.Month)
				assert.Equal(t, 2026, p.Year)
				assert.Equal(t, actorID, p.CreatedBy.String())
				return nil
			})

		resp, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, 22, resp.WorkingDays)
		assert.Equal(t, "11000000.00", resp.GrossPay.StringFixed(2))
		assert.Equal(t, "550000.00", resp.Tax.StringFixed(2))
		assert.Equal(t, "880000.00", resp.SocialInsurance.StringFixed(2))
		assert.Equal(t, "275000.00", resp.HealthInsurance.StringFixed(2))
		assert.Equal(t, "9295000.00", resp.NetPay.StringFixed(2))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("clamps attended days to the month length", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.attendance.days = 40

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().EmployeeBelongsToCompany(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      2,
			Year:       2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, 28, resp.WorkingDays)
		assert.Equal(t, "14000000.00", resp.GrossPay.StringFixed(2))
	})

	t.Run("explicit inputs win over lookups", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.salaries.fn = func(context.Context, string, string, time.Time) (decimal.Decimal, error) {
			t.Fatal("salary lookup must not be called")
			return decimal.Zero, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().EmployeeBelongsToCompany(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		basic := decimal.NewFromInt(22_000_000)
		days := 11
		resp, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID:  employeeID,
			Month:       3,
			Year:        2026,
			BasicSalary: &basic,
			WorkingDays: &days,
		})

		assert.NoError(t, err)
		assert.Equal(t, 11, resp.WorkingDays)
		assert.Equal(t, "11000000.00", resp.GrossPay.StringFixed(2))
	})

	t.Run("no salary on record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.salaries.fn = func(context.Context, string, string, time.Time) (decimal.Decimal, error) {
			return decimal.Zero, apperror.New(apperror.CodeNotFound, "no salary", http.StatusNotFound)
		}

		deps.repo.EXPECT().EmployeeBelongsToCompany(ctx, companyID, employeeID).Return(true, nil)

		_, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrBasicSalaryUnavailable)
	})

	t.Run("employee outside company", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().EmployeeBelongsToCompany(ctx, companyID, employeeID).Return(false, nil)

		_, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotInCompany)
	})

	t.Run("negative allowance is a validation error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().EmployeeBelongsToCompany(ctx, companyID, employeeID).Return(true, nil)

		_, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
			Allowances: decimal.NewFromInt(-5),
		})

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeValidationError, httpErr.Code)
		assert.Equal(t, map[string]string{"allowances": "cannot be negative"}, httpErr.Details)
	})

	t.Run("second payroll for the same month", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().EmployeeBelongsToCompany(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_employee_period"})

		_, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      13,
			Year:       2026,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	})
}

func TestPayrollService_CreateBatch(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	inCompany := uuid.New().String()
	elsewhere := uuid.New().String()

	deps := setupServiceTest(t)
	defer deps.db.Close()
	deps.sqlMock.MatchExpectationsInOrder(false)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.EXPECT().ListActiveEmployeeIDs(ctx, companyID).Return([]string{inCompany, elsewhere}, nil)
	deps.repo.EXPECT().EmployeeBelongsToCompany(gomock.Any(), companyID, inCompany).Return(true, nil)
	deps.repo.EXPECT().EmployeeBelongsToCompany(gomock.Any(), companyID, elsewhere).Return(false, nil)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.BatchPayrollRequest{Month: 3, Year: 2026})

	assert.NoError(t, err)
	assert.Len(t, resp.Created, 1)
	assert.Equal(t, inCompany, resp.Created[0].EmployeeID)
	assert.Equal(t, []payroll.BatchFailure{{
		EmployeeID: elsewhere,
		Code:       payrollerrors.ErrEmployeeNotInCompany.Code,
		Message:    payrollerrors.ErrEmployeeNotInCompany.Message,
	}}, resp.Failed)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_CreateBatch_NoEmployees(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().ListActiveEmployeeIDs(ctx, companyID).Return(nil, nil)

	_, err := deps.service.CreateBatch(ctx, companyID, uuid.New().String(), payroll.BatchPayrollRequest{Month: 3, Year: 2026})

	assert.ErrorIs(t, err, payrollerrors.ErrNoEmployees)
}

func TestPayrollService_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	actorID := uuid.New().String()

	type action func(s payroll.Service, id string) (payroll.PayrollResponse, error)
	process := func(s payroll.Service, id string) (payroll.PayrollResponse, error) {
		return s.Process(ctx, companyID, actorID, id)
	}
	markPaid := func(s payroll.Service, id string) (payroll.PayrollResponse, error) {
		return s.MarkPaid(ctx, companyID, id)
	}
	cancel := func(s payroll.Service, id string) (payroll.PayrollResponse, error) {
		return s.Cancel(ctx, companyID, id)
	}

	tests := []struct {
		name    string
		from    string
		act     action
		want    string
		allowed bool
	}{
		{"draft to processed", payroll.StatusDraft, process, payroll.StatusProcessed, true},
		{"processed to paid", payroll.StatusProcessed, markPaid, payroll.StatusPaid, true},
		{"draft to cancelled", payroll.StatusDraft, cancel, payroll.StatusCancelled, true},
		{"processed to cancelled", payroll.StatusProcessed, cancel, payroll.StatusCancelled, true},
		{"draft cannot be paid", payroll.StatusDraft, markPaid, "", false},
		{"paid cannot be cancelled", payroll.StatusPaid, cancel, "", false},
		{"paid cannot go back to processed", payroll.StatusPaid, process, "", false},
		{"cancelled is final", payroll.StatusCancelled, process, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			defer deps.db.Close()

			existing := draftPayroll(companyUUID, tt.from)
			id := existing.ID.String()

			deps.sqlMock.ExpectBegin()
			deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
			deps.repo.EXPECT().FindByIDAndCompanyForUpdate(ctx, companyID, id).Return(existing, nil)

			if tt.allowed {
				deps.sqlMock.ExpectCommit()
				deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
				if tt.want == payroll.StatusProcessed {
					deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
					deps.outbox.EXPECT().
						Create(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
							assert.Equal(t, events.PayrollPayslipRequestedTopic, event.Topic)
							assert.Equal(t, id, event.AggregateID)

							var payload events.PayrollPayslipRequestedEvent
							assert.NoError(t, json.Unmarshal(event.Payload, &payload))
							assert.Equal(t, id, payload.PayrollID)
							assert.Equal(t, actorID, payload.RequestedBy)
							return nil
						})
				}
			} else {
				deps.sqlMock.ExpectRollback()
			}

			resp, err := tt.act(deps.service, id)

			if !tt.allowed {
				assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, resp.Status)
			switch tt.want {
			case payroll.StatusProcessed:
				assert.NotNil(t, resp.ProcessedAt)
			case payroll.StatusPaid:
				assert.NotNil(t, resp.PaidAt)
			case payroll.StatusCancelled:
				assert.NotNil(t, resp.CancelledAt)
			}
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}
}

func TestPayrollService_Recalculate(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()

	t.Run("draft picks up overrides", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := draftPayroll(companyUUID, payroll.StatusDraft)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompanyForUpdate(ctx, companyID, existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		allowance := decimal.NewFromInt(1_000_000)
		resp, err := deps.service.Recalculate(ctx, companyID, existing.ID.String(), payroll.RecalculatePayrollRequest{
			Allowances: &allowance,
		})

		assert.NoError(t, err)
		assert.Equal(t, "12000000.00", resp.GrossPay.StringFixed(2))
		assert.Equal(t, "1200000.00", resp.Tax.StringFixed(2))
		assert.Equal(t, "9645000.00", resp.NetPay.StringFixed(2))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("paid payroll is never recomputed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := draftPayroll(companyUUID, payroll.StatusPaid)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompanyForUpdate(ctx, companyID, existing.ID.String()).Return(existing, nil)

		_, err := deps.service.Recalculate(ctx, companyID, existing.ID.String(), payroll.RecalculatePayrollRequest{})

		assert.ErrorIs(t, err, payrollerrors.ErrRecalculateOnlyDraft)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_Delete(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()

	t.Run("draft", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := draftPayroll(companyUUID, payroll.StatusDraft)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, existing.ID.String()).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, companyID, existing.ID.String()))
	})

	t.Run("processed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := draftPayroll(companyUUID, payroll.StatusProcessed)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, existing.ID.String()).Return(existing, nil)

		err := deps.service.Delete(ctx, companyID, existing.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrDeleteOnlyDraft)
	})
}

func TestPayrollService_GetAll_RejectsUnknownStatus(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetAll(context.Background(), uuid.New().String(), payroll.ListFilter{Status: "ARCHIVED"})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusFilter)
}

func TestPayrollService_GetBreakdown(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	existing := draftPayroll(companyUUID, payroll.StatusPaid)
	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyUUID.String(), existing.ID.String()).Return(existing, nil)

	b, err := deps.service.GetBreakdown(ctx, companyUUID.String(), existing.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, payroll.TaxModeFlat, b.TaxMode)
	assert.Equal(t, "500000.00", b.DailySalary.StringFixed(2))
	assert.True(t, b.GrossPay.Sub(b.Tax).Sub(b.SocialInsurance).Sub(b.HealthInsurance).Equal(b.NetPay))
}

func TestPayrollService_DownloadPayslip(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()

	t.Run("renders on first download", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := draftPayroll(companyUUID, payroll.StatusProcessed)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			SavePayslip(ctx, companyID, existing.ID.String(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, path string, at time.Time) error {
				assert.Contains(t, path, ".pdf")
				assert.False(t, at.IsZero())
				return nil
			})

		slip, err := deps.service.DownloadPayslip(ctx, companyID, existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "payslip-EMP-000001-2026-03.pdf", slip.Filename)
		assert.True(t, bytes.HasPrefix(slip.Content, []byte("%PDF")))
	})

	t.Run("draft has no payslip", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := draftPayroll(companyUUID, payroll.StatusDraft)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, existing.ID.String()).Return(existing, nil)

		_, err := deps.service.DownloadPayslip(ctx, companyID, existing.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotAvailable)
	})
}

func TestPayrollService_GeneratePayslip(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()

	t.Run("writes only the payslip columns", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		// Read before a concurrent MarkPaid commits; the stale status must not be written back.
		stale := draftPayroll(companyUUID, payroll.StatusProcessed)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, stale.ID.String()).Return(stale, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().
			SavePayslip(ctx, companyID, stale.ID.String(), gomock.Any(), gomock.Any()).
			Return(nil)

		resp, err := deps.service.GeneratePayslip(ctx, companyID, stale.ID.String())

		assert.NoError(t, err)
		assert.True(t, resp.PayslipAvailable)
	})

	t.Run("payroll removed meanwhile", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := draftPayroll(companyUUID, payroll.StatusPaid)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, existing.ID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			SavePayslip(ctx, companyID, existing.ID.String(), gomock.Any(), gomock.Any()).
			Return(gorm.ErrRecordNotFound)

		_, err := deps.service.GeneratePayslip(ctx, companyID, existing.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}

func TestPayrollService_Export(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	first := draftPayroll(companyUUID, payroll.StatusPaid)
	second := draftPayroll(companyUUID, payroll.StatusProcessed)
	second.Employee = &payroll.PayrollEmployee{EmployeeCode: "EMP-000002", FullName: "Budi"}
	filter := payroll.ListFilter{Month: 3, Year: 2026}

	deps.repo.EXPECT().FindAll(ctx, companyID, filter).Return([]payroll.Payroll{*first, *second}, nil)

	content, err := deps.service.Export(ctx, companyID, filter)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue("Payroll", "A1")
	assert.Equal(t, "Employee Code", header)
	code, _ := f.GetCellValue("Payroll", "A3")
	assert.Equal(t, "EMP-000002", code)
	period, _ := f.GetCellValue("Payroll", "C2")
	assert.Equal(t, "2026-03", period)
	total, _ := f.GetCellValue("Payroll", "A4")
	assert.Equal(t, "TOTAL", total)
	formula, _ := f.GetCellFormula("Payroll", "O4")
	assert.Equal(t, "SUM(O2:O3)", formula)
}
