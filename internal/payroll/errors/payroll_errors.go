package payrollerrors

import (
	"net/http"

	"go-hotel/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be 2000-2100",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrBasicSalaryUnavailable = apperror.New(
		apperror.CodeInvalidInput,
		"basic_salary was not given and the employee has no salary effective in this period",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusConflict,
	)
	ErrRecalculateOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be recalculated while status is DRAFT",
		http.StatusConflict,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be deleted while status is DRAFT",
		http.StatusConflict,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll status filter",
		http.StatusBadRequest,
	)
	ErrPayslipNotAvailable = apperror.New(
		apperror.CodeInvalidState,
		"payslip is only available for PROCESSED or PAID payrolls",
		http.StatusConflict,
	)
	ErrNoEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"no active employees to run payroll for",
		http.StatusBadRequest,
	)
)
