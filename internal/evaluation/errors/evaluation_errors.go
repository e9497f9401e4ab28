package evaluationerrors

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
		"period must look like 2026, 2026-03, 2026-Q1 or 2026-H1",
		http.StatusBadRequest,
	)
	ErrSelfEvaluation = apperror.New(
		apperror.CodeInvalidInput,
		"an employee cannot evaluate themselves",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"evaluation not found",
		http.StatusNotFound,
	)
	ErrEvaluationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"evaluation already exists for this employee, evaluator and period",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid evaluation status transition",
		http.StatusConflict,
	)
	ErrEvaluationLocked = apperror.New(
		apperror.CodeInvalidState,
		"evaluation can no longer be edited once reviewed",
		http.StatusConflict,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"evaluation can only be deleted while status is DRAFT",
		http.StatusConflict,
	)
	ErrNotEvaluatedEmployee = apperror.New(
		apperror.CodeForbidden,
		"only the evaluated employee can acknowledge this evaluation",
		http.StatusForbidden,
	)
	ErrAlreadyAcknowledged = apperror.New(
		apperror.CodeConflict,
		"evaluation already acknowledged",
		http.StatusConflict,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid evaluation status filter",
		http.StatusBadRequest,
	)
)
