package payroll

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-hotel/internal/events"
	"go-hotel/internal/messaging/kafka"
	payrollerrors "go-hotel/internal/payroll/errors"
	"go-hotel/internal/shared/apperror"
	"go-hotel/internal/shared/contextutil"
	"go-hotel/internal/shared/storage"
	"go-hotel/internal/shared/workerpool"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	timeLayout         = time.RFC3339
	defaultWorkerCount = 4
)

// SalaryLookup resolves the base salary in force for an employee on a date.
type SalaryLookup interface {
	GetEffectiveSalary(ctx context.Context, companyID, employeeID string, asOf time.Time) (decimal.Decimal, error)
}

// WorkingDaysCounter counts the days an employee attended in a month.
type WorkingDaysCounter interface {
	CountWorkingDays(ctx context.Context, companyID, employeeID string, month, year int) (int, error)
}

var allowedTransitions = map[string][]string{
	StatusDraft:     {StatusProcessed, StatusCancelled},
	StatusProcessed: {StatusPaid, StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	CreateBatch(ctx context.Context, companyID, actorID string, req BatchPayrollRequest) (BatchPayrollResponse, error)
	Calculate(ctx context.Context, req CalculateRequest) (Breakdown, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	GetBreakdown(ctx context.Context, companyID, id string) (Breakdown, error)
	Recalculate(ctx context.Context, companyID, id string, req RecalculatePayrollRequest) (PayrollResponse, error)
	Process(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error)
	MarkPaid(ctx context.Context, companyID, id string) (PayrollResponse, error)
	Cancel(ctx context.Context, companyID, id string) (PayrollResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Export(ctx context.Context, companyID string, filter ListFilter) ([]byte, error)
	GeneratePayslip(ctx context.Context, companyID, id string) (PayrollResponse, error)
	DownloadPayslip(ctx context.Context, companyID, id string) (Payslip, error)
}

type ServiceDeps struct {
	DB         *sql.DB
	Repo       Repository
	Calculator *Calculator
	Salaries   SalaryLookup
	Attendance WorkingDaysCounter
	Outbox     kafka.OutboxRepository
	Storage    storage.FileStorage
	Workers    int
	Logger     *zap.Logger
}

type service struct {
	db         *sql.DB
	repo       Repository
	calculator *Calculator
	salaries   SalaryLookup
	attendance WorkingDaysCounter
	outbox     kafka.OutboxRepository
	storage    storage.FileStorage
	workers    int
	logger     *zap.Logger
}

func NewService(deps ServiceDeps) Service {
	l := zap.L().Named("payroll.service")
	if deps.Logger != nil {
		l = deps.Logger.Named("payroll.service")
	}
	calc := deps.Calculator
	if calc == nil {
		calc = NewCalculator(DefaultPolicy())
	}
	workers := deps.Workers
	if workers < 1 {
		workers = defaultWorkerCount
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		calculator: calc,
		salaries:   deps.Salaries,
		attendance: deps.Attendance,
		outbox:     deps.Outbox,
		storage:    deps.Storage,
		workers:    workers,
		logger:     l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if !validPeriod(req.Month, req.Year) {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		log.Error("create payroll employee lookup failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	if !belongs {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotInCompany
	}

	basicSalary, err := s.resolveBasicSalary(ctx, companyID, req)
	if err != nil {
		return PayrollResponse{}, err
	}
	workingDays, err := s.resolveWorkingDays(ctx, companyID, req)
	if err != nil {
		return PayrollResponse{}, err
	}

	breakdown, err := s.calculator.Calculate(Input{
		BasicSalary:   basicSalary,
		OvertimeHours: req.OvertimeHours,
		WorkingDays:   workingDays,
		Allowances:    req.Allowances,
		Deductions:    req.Deductions,
	})
	if err != nil {
		return PayrollResponse{}, mapCalculationError(err)
	}

	payroll := &Payroll{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Month:      req.Month,
		Year:       req.Year,
		Status:     StatusDraft,
		Notes:      req.Notes,
		CreatedBy:  actorUUID,
	}
	payroll.applyBreakdown(breakdown)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, payroll); err != nil {
		log.Warn("create payroll persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("month", req.Month),
			zap.Int("year", req.Year),
			zap.Error(err),
		)
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("payroll created",
		zap.String("payroll_id", payroll.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("net_pay", payroll.NetPay.StringFixed(2)),
	)

	return mapToResponse(*payroll), nil
}

// resolveBasicSalary uses the request value or the salary effective on the
// last day of the pay month.
func (s *service) resolveBasicSalary(ctx context.Context, companyID string, req CreatePayrollRequest) (decimal.Decimal, error) {
	if req.BasicSalary != nil {
		return *req.BasicSalary, nil
	}
	if s.salaries == nil {
		return decimal.Zero, payrollerrors.ErrBasicSalaryUnavailable
	}

	from, _ := monthRange(req.Month, req.Year)
	lastDay := from.AddDate(0, 1, -1)
	salary, err := s.salaries.GetEffectiveSalary(ctx, companyID, req.EmployeeID, lastDay)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusNotFound {
			return decimal.Zero, payrollerrors.ErrBasicSalaryUnavailable
		}
		return decimal.Zero, err
	}
	return salary, nil
}

// resolveWorkingDays uses the request value or the attended days, clamped to
// the days of the month.
func (s *service) resolveWorkingDays(ctx context.Context, companyID string, req CreatePayrollRequest) (int, error) {
	days := 0
	switch {
	case req.WorkingDays != nil:
		days = *req.WorkingDays
	case s.attendance != nil:
		counted, err := s.attendance.CountWorkingDays(ctx, companyID, req.EmployeeID, req.Month, req.Year)
		if err != nil {
			return 0, err
		}
		days = counted
	}
	return clampWorkingDays(days, req.Month, req.Year), nil
}

func (s *service) CreateBatch(
	ctx context.Context,
	companyID, actorID string,
	req BatchPayrollRequest,
) (BatchPayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(companyID); err != nil {
		return BatchPayrollResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	if !validPeriod(req.Month, req.Year) {
		return BatchPayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	employeeIDs := req.EmployeeIDs
	if len(employeeIDs) == 0 {
		ids, err := s.repo.ListActiveEmployeeIDs(ctx, companyID)
		if err != nil {
			log.Error("batch payroll employee listing failed", zap.Error(err))
			return BatchPayrollResponse{}, mapRepositoryError(err)
		}
		employeeIDs = ids
	}
	if len(employeeIDs) == 0 {
		return BatchPayrollResponse{}, payrollerrors.ErrNoEmployees
	}

	fns := make([]func(ctx context.Context) (any, error), len(employeeIDs))
	for i, employeeID := range employeeIDs {
		employeeID := employeeID
		fns[i] = func(ctx context.Context) (any, error) {
			return s.Create(ctx, companyID, actorID, CreatePayrollRequest{
				EmployeeID: employeeID,
				Month:      req.Month,
				Year:       req.Year,
				Allowances: req.Allowances,
				Deductions: req.Deductions,
			})
		}
	}

	result := BatchPayrollResponse{
		Created: []PayrollResponse{},
		Failed:  []BatchFailure{},
	}
	for _, r := range workerpool.Map(ctx, s.workers, fns) {
		if r.Err != nil {
			httpErr := apperror.ToHTTP(r.Err)
			result.Failed = append(result.Failed, BatchFailure{
				EmployeeID: employeeIDs[r.Index],
				Code:       httpErr.Code,
				Message:    httpErr.Message,
			})
			continue
		}
		result.Created = append(result.Created, r.Value.(PayrollResponse))
	}

	log.Info("batch payroll finished",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("created", len(result.Created)),
		zap.Int("failed", len(result.Failed)),
	)

	return result, nil
}

func (s *service) Calculate(_ context.Context, req CalculateRequest) (Breakdown, error) {
	breakdown, err := s.calculator.Calculate(Input{
		BasicSalary:   req.BasicSalary,
		OvertimeHours: req.OvertimeHours,
		WorkingDays:   req.WorkingDays,
		Allowances:    req.Allowances,
		Deductions:    req.Deductions,
	})
	if err != nil {
		return Breakdown{}, mapCalculationError(err)
	}
	return breakdown, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter ListFilter,
) ([]PayrollResponse, error) {
	if filter.Status != "" && !isKnownStatus(filter.Status) {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}

	payrolls, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list payrolls failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (PayrollResponse, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*payroll), nil
}

func (s *service) GetBreakdown(
	ctx context.Context,
	companyID, id string,
) (Breakdown, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return Breakdown{}, mapRepositoryError(err)
	}

	return payroll.breakdown(), nil
}

func (s *service) Recalculate(
	ctx context.Context,
	companyID, id string,
	req RecalculatePayrollRequest,
) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("recalculate payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if payroll.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrRecalculateOnlyDraft
	}

	in := Input{
		BasicSalary:   payroll.BasicSalary,
		OvertimeHours: payroll.OvertimeHours,
		WorkingDays:   payroll.WorkingDays,
		Allowances:    payroll.Allowances,
		Deductions:    payroll.Deductions,
	}
	if req.BasicSalary != nil {
		in.BasicSalary = *req.BasicSalary
	}
	if req.WorkingDays != nil {
		in.WorkingDays = clampWorkingDays(*req.WorkingDays, payroll.Month, payroll.Year)
	}
	if req.OvertimeHours != nil {
		in.OvertimeHours = *req.OvertimeHours
	}
	if req.Allowances != nil {
		in.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		in.Deductions = *req.Deductions
	}

	breakdown, err := s.calculator.Calculate(in)
	if err != nil {
		return PayrollResponse{}, mapCalculationError(err)
	}
	payroll.applyBreakdown(breakdown)
	if req.Notes != nil {
		payroll.Notes = req.Notes
	}

	if err := qtx.Update(ctx, payroll); err != nil {
		log.Error("recalculate payroll persist failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("recalculate payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("payroll recalculated",
		zap.String("payroll_id", id),
		zap.String("net_pay", payroll.NetPay.StringFixed(2)),
	)

	return mapToResponse(*payroll), nil
}

// Process finalizes a draft and queues its payslip for rendering.
func (s *service) Process(
	ctx context.Context,
	companyID, actorID, id string,
) (PayrollResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusProcessed)
}

func (s *service) MarkPaid(
	ctx context.Context,
	companyID, id string,
) (PayrollResponse, error) {
	return s.transition(ctx, companyID, "", id, StatusPaid)
}

func (s *service) Cancel(
	ctx context.Context,
	companyID, id string,
) (PayrollResponse, error) {
	return s.transition(ctx, companyID, "", id, StatusCancelled)
}

func (s *service) transition(
	ctx context.Context,
	companyID, actorID, id string,
	to string,
) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("payroll transition begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	from := payroll.Status
	if !canTransition(from, to) {
		log.Warn("payroll transition rejected",
			zap.String("payroll_id", id),
			zap.String("from", from),
			zap.String("to", to),
		)
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	payroll.Status = to
	switch to {
	case StatusProcessed:
		payroll.ProcessedAt = &now
	case StatusPaid:
		payroll.PaidAt = &now
	case StatusCancelled:
		payroll.CancelledAt = &now
	}

	if err := qtx.Update(ctx, payroll); err != nil {
		log.Error("payroll transition persist failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if to == StatusProcessed && s.outbox != nil {
		event, err := kafka.NewOutboxEvent(ctx,
			events.PayrollPayslipRequestedTopic,
			events.PayrollPayslipRequestedEventType,
			"payroll",
			payroll.ID.String(),
			events.PayrollPayslipRequestedEvent{
				EventType:   events.PayrollPayslipRequestedEventType,
				PayrollID:   payroll.ID.String(),
				CompanyID:   companyID,
				EmployeeID:  payroll.EmployeeID.String(),
				Month:       payroll.Month,
				Year:        payroll.Year,
				NetPay:      payroll.NetPay,
				RequestedBy: actorID,
				OccurredAt:  now,
			},
		)
		if err != nil {
			return PayrollResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("payslip outbox persist failed",
				zap.String("payroll_id", id),
				zap.Error(err),
			)
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("payroll transition commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("payroll status changed",
		zap.String("payroll_id", id),
		zap.String("from", from),
		zap.String("to", to),
	)

	return mapToResponse(*payroll), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	log := contextutil.GetLogger(ctx, s.logger)

	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if payroll.Status != StatusDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		log.Error("delete payroll failed", zap.String("payroll_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	log.Info("payroll deleted", zap.String("payroll_id", id))
	return nil
}

func (s *service) Export(
	ctx context.Context,
	companyID string,
	filter ListFilter,
) ([]byte, error) {
	if filter.Status != "" && !isKnownStatus(filter.Status) {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}

	payrolls, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("export payrolls failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return buildPayrollWorkbook(payrolls)
}

// GeneratePayslip renders the payslip PDF into storage and records its path.
func (s *service) GeneratePayslip(
	ctx context.Context,
	companyID, id string,
) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !payslipAvailable(payroll.Status) {
		return PayrollResponse{}, payrollerrors.ErrPayslipNotAvailable
	}

	if err := s.storePayslip(ctx, payroll); err != nil {
		log.Error("generate payslip failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("payslip generated",
		zap.String("payroll_id", id),
		zap.String("path", *payroll.PayslipPath),
	)
	return mapToResponse(*payroll), nil
}

func (s *service) storePayslip(ctx context.Context, payroll *Payroll) error {
	content, err := renderPayslip(*payroll)
	if err != nil {
		return err
	}

	key, err := s.storage.Upload(ctx, bytes.NewReader(content), payslipPath(*payroll), "application/pdf")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.repo.SavePayslip(ctx, payroll.CompanyID.String(), payroll.ID.String(), key, now); err != nil {
		return mapRepositoryError(err)
	}
	payroll.PayslipPath = &key
	payroll.PayslipGeneratedAt = &now
	return nil
}

// DownloadPayslip returns the stored payslip, rendering it first when the
// background consumer has not done so yet.
func (s *service) DownloadPayslip(
	ctx context.Context,
	companyID, id string,
) (Payslip, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return Payslip{}, mapRepositoryError(err)
	}
	if !payslipAvailable(payroll.Status) {
		return Payslip{}, payrollerrors.ErrPayslipNotAvailable
	}

	if payroll.PayslipPath == nil {
		if err := s.storePayslip(ctx, payroll); err != nil {
			s.logger.Error("on demand payslip failed", zap.String("payroll_id", id), zap.Error(err))
			return Payslip{}, err
		}
	}

	rc, err := s.storage.Download(ctx, *payroll.PayslipPath)
	if err != nil {
		return Payslip{}, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return Payslip{}, err
	}

	return Payslip{
		Filename: payslipFilename(*payroll),
		Content:  content,
	}, nil
}

func payslipAvailable(status string) bool {
	return status == StatusProcessed || status == StatusPaid
}

func isKnownStatus(status string) bool {
	switch status {
	case StatusDraft, StatusProcessed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}

func monthRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func daysInMonth(month, year int) int {
	from, to := monthRange(month, year)
	return int(to.Sub(from).Hours() / 24)
}

func clampWorkingDays(days, month, year int) int {
	if days < 0 {
		return 0
	}
	if limit := daysInMonth(month, year); days > limit {
		return limit
	}
	return days
}

func payslipPath(p Payroll) string {
	return fmt.Sprintf("payslips/%s/%04d-%02d/%s.pdf", p.CompanyID, p.Year, p.Month, p.ID)
}

func payslipFilename(p Payroll) string {
	code := p.EmployeeID.String()
	if p.Employee != nil && p.Employee.EmployeeCode != "" {
		code = p.Employee.EmployeeCode
	}
	return fmt.Sprintf("payslip-%s-%04d-%02d.pdf", code, p.Year, p.Month)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(timeLayout)
	return &v
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:               p.ID.String(),
		CompanyID:        p.CompanyID.String(),
		EmployeeID:       p.EmployeeID.String(),
		Month:            p.Month,
		Year:             p.Year,
		WorkingDays:      p.WorkingDays,
		BasicSalary:      p.BasicSalary,
		OvertimeHours:    p.OvertimeHours,
		OvertimePay:      p.OvertimePay,
		Allowances:       p.Allowances,
		Deductions:       p.Deductions,
		GrossPay:         p.GrossPay,
		Tax:              p.Tax,
		SocialInsurance:  p.SocialInsurance,
		HealthInsurance:  p.HealthInsurance,
		NetPay:           p.NetPay,
		Status:           p.Status,
		Notes:            p.Notes,
		CreatedBy:        p.CreatedBy.String(),
		ProcessedAt:      formatTime(p.ProcessedAt),
		PaidAt:           formatTime(p.PaidAt),
		CancelledAt:      formatTime(p.CancelledAt),
		PayslipAvailable: p.PayslipPath != nil,
	}
	if p.Employee != nil {
		resp.EmployeeCode = p.Employee.EmployeeCode
		resp.EmployeeName = p.Employee.FullName
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = mapToResponse(p)
	}
	return res
}
