package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hotel/internal/employee"
	employeeerrors "go-hotel/internal/employee/errors"
	"go-hotel/internal/events"
	"go-hotel/internal/messaging/kafka"
	"go-hotel/internal/shared/contextutil"
	"go-hotel/internal/shared/counter"

	employeeMock "go-hotel/internal/employee/mock"
	kafkaMock "go-hotel/internal/messaging/kafka/mock"
	counterMock "go-hotel/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:       "Ayu Lestari",
		Email:          "Ayu@Hotel.test",
		Phone:          "0812",
		Department:     "Front Office",
		Position:       "Receptionist",
		HireDate:       "2026-01-05",
		StartingSalary: decimal.NewFromInt(6_500_000),
	}
}

type outboxEmployeeMatcher struct {
	expectedRID    string
	expectedSalary string
}

func (m outboxEmployeeMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok || event.RequestID != m.expectedRID || event.Topic != events.EmployeeCreatedTopic {
		return false
	}

	var payload events.EmployeeCreatedEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}
	return payload.StartingSalary.String() == m.expectedSalary && payload.EmployeeID == event.AggregateID
}

func (m outboxEmployeeMatcher) String() string {
	return "matches employee_created outbox event with request_id " + m.expectedRID
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - generates employee code and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-123"
		ctx := contextutil.WithRequestID(context.Background(), rid)
		companyID := uuid.New().String()
		req := validCreateRequest()

		expectTx(t, deps.sqlMock, true)

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().
			GetNextValue(ctx, companyID, counter.TypeEmployeeCode).
			Return(int64(42), nil)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000042", e.EmployeeCode)
				assert.Equal(t, "ayu@hotel.test", e.Email)
				assert.Equal(t, employee.StatusActive, e.EmploymentStatus)
				assert.Equal(t, companyID, e.CompanyID.String())
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, outboxEmployeeMatcher{expectedRID: rid, expectedSalary: "6500000"}).
			Return(nil)

		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000042", resp.EmployeeCode)
		assert.Equal(t, "2026-01-05", resp.HireDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("invalid hire date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.HireDate = "05/01/2026"

		_, err := deps.service.Create(context.Background(), uuid.New().String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("non positive starting salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.StartingSalary = decimal.Zero

		_, err := deps.service.Create(context.Background(), uuid.New().String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStartingSalary)
	})

	t.Run("duplicate email -> conflict and rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := context.Background()
		companyID := uuid.New().String()

		expectTx(t, deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, counter.TypeEmployeeCode).Return(int64(1), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, companyID, validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		companyID := uuid.New().String()
		cached, _ := json.Marshal([]employee.EmployeeOption{{ID: "e-1", FullName: "Caca", EmployeeCode: "EMP-000001"}})
		deps.redismock.ExpectGet(employee.GetEmployeeOptionsKey(companyID)).SetVal(string(cached))

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Caca", resp[0].FullName)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		companyID := uuid.New().String()
		cacheKey := employee.GetEmployeeOptionsKey(companyID)
		id := uuid.New()

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(gomock.Any(), companyID).
			Return([]employee.Employee{{ID: id, FullName: "Deni", EmployeeCode: "EMP-000002", Department: "Housekeeping"}}, nil)

		expected, _ := json.Marshal([]employee.EmployeeOption{{ID: id.String(), FullName: "Deni", EmployeeCode: "EMP-000002", Department: "Housekeeping"}})
		deps.redismock.ExpectSet(cacheKey, expected, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Housekeeping", resp[0].Department)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		companyID := uuid.New().String()
		deps.redismock.ExpectGet(employee.GetEmployeeOptionsKey(companyID)).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(gomock.Any(), companyID).
			Return(nil, errors.New("database connection lost"))

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.ErrorContains(t, err, "database connection lost")
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New()

	req := employee.UpdateEmployeeRequest{
		FullName:         "Ayu L.",
		Email:            "ayu@hotel.test",
		Department:       "Front Office",
		Position:         "Supervisor",
		HireDate:         "2026-01-05",
		EmploymentStatus: employee.StatusOnLeave,
	}

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, id.String()).
			Return(&employee.Employee{ID: id, EmployeeCode: "EMP-000007", Position: "Receptionist"}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "Supervisor", e.Position)
				assert.Equal(t, "EMP-000007", e.EmployeeCode)
				return nil
			})
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID, id.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, employee.StatusOnLeave, resp.EmploymentStatus)
	})

	t.Run("not found", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, "missing").
			Return(nil, employeeerrors.ErrEmployeeNotFound)

		_, err := deps.service.Update(ctx, companyID, "missing", req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Delete(ctx, companyID, "emp-1").Return(nil)
	deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

	err := deps.service.Delete(ctx, companyID, "emp-1")

	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
