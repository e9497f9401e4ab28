package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-hotel/internal/attendance/errors"
	"go-hotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"

	lateHour   = 9
	lateMinute = 15
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]AttendanceResponse, error)
	Summary(ctx context.Context, companyID, employeeID string, month, year int) (MonthlySummary, error)
	CountWorkingDays(ctx context.Context, companyID, employeeID string, month, year int) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	source := req.Source
	if source == "" {
		source = SourceManual
	}

	row := &Attendance{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		AttendanceDate: today,
		ClockIn:        now,
		Status:         statusFor(now),
		Source:         source,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		log.Error("clock in persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	log.Info("clock in recorded",
		zap.String("employee_id", employeeID),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

// GetAll lists attendance rows. Callers without company-wide read access only
// ever see their own rows, whatever employee filter they pass.
func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter ListFilter) ([]AttendanceResponse, error) {
	if !canReadAll {
		if _, err := uuid.Parse(actorID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
		filter.EmployeeID = actorID
	}
	if filter.Month != 0 || filter.Year != 0 {
		if !validPeriod(filter.Month, filter.Year) {
			return nil, attendanceerrors.ErrInvalidPeriod
		}
	}

	rows, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Summary(ctx context.Context, companyID, employeeID string, month, year int) (MonthlySummary, error) {
	if !validPeriod(month, year) {
		return MonthlySummary{}, attendanceerrors.ErrInvalidPeriod
	}

	from, to := monthRange(month, year)
	rows, err := s.repo.FindByEmployeeBetween(ctx, companyID, employeeID, from, to)
	if err != nil {
		return MonthlySummary{}, err
	}

	summary := MonthlySummary{
		EmployeeID:  employeeID,
		Month:       month,
		Year:        year,
		DaysInMonth: to.Day(),
	}
	for _, r := range rows {
		summary.WorkingDays++
		if r.Status == StatusLate {
			summary.LateDays++
		}
	}
	return summary, nil
}

// CountWorkingDays is the number of days the employee clocked in during the
// month. A day counts whether or not the employee was late.
func (s *service) CountWorkingDays(ctx context.Context, companyID, employeeID string, month, year int) (int, error) {
	summary, err := s.Summary(ctx, companyID, employeeID, month, year)
	if err != nil {
		return 0, err
	}
	return summary.WorkingDays, nil
}

func statusFor(clockIn time.Time) string {
	h, m := clockIn.Hour(), clockIn.Minute()
	if h > lateHour || (h == lateHour && m > lateMinute) {
		return StatusLate
	}
	return StatusPresent
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}

// monthRange returns the first and last calendar day of the month in UTC.
func monthRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		CompanyID:      a.CompanyID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format(dateLayout),
		ClockIn:        a.ClockIn.Format(time.RFC3339),
		Status:         a.Status,
		Source:         a.Source,
		Notes:          a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
