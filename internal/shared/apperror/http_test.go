package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type scoreForm struct {
	EmployeeID string   `json:"employee_id" validate:"required"`
	Teamwork   *float64 `json:"teamwork_score" validate:"omitempty,halfstep"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	registerRules(v)
	return v
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		got := ToHTTP(fmt.Errorf("wrapped: %w", ErrNotFound))
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, CodeNotFound, got.Code)
	})

	t.Run("details are echoed", func(t *testing.T) {
		got := ToHTTP(ErrNotFound.WithDetails(map[string]string{"field": "x"}))
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, map[string]string{"field": "x"}, got.Details)
	})

	t.Run("unknown errors become internal errors", func(t *testing.T) {
		got := ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, ErrInternal.Message, got.Message)
	})

	t.Run("required field from validator", func(t *testing.T) {
		err := newValidator().Struct(scoreForm{})
		got := ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, CodeValidationError, got.Code)
		assert.Equal(t, "Employee Id is required", got.Message)
		assert.Equal(t, map[string]string{"field": "employee_id"}, got.Details)
	})

	t.Run("half step scores", func(t *testing.T) {
		bad := 2.3
		err := newValidator().Struct(scoreForm{EmployeeID: "e", Teamwork: &bad})
		got := ToHTTP(err)
		assert.Contains(t, got.Message, "steps of 0.5")
		assert.Equal(t, map[string]string{"field": "teamwork_score"}, got.Details)
	})
}

func TestFromBinding_NonValidatorError(t *testing.T) {
	err := FromBinding(errors.New("unexpected EOF"))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "unexpected EOF", appErr.Details)
}

func TestAppError_Is(t *testing.T) {
	withCause := &AppError{
		Code:       ErrNotFound.Code,
		Message:    ErrNotFound.Message,
		HTTPStatus: http.StatusNotFound,
		Err:        errors.New("boom"),
	}
	assert.True(t, errors.Is(withCause, ErrNotFound))
	assert.False(t, errors.Is(withCause, ErrForbidden))
	assert.Equal(t, "Resource not found: boom", withCause.Error())

	detailed := ErrForbidden.WithDetails("role:manage")
	assert.True(t, errors.Is(fmt.Errorf("authorize: %w", detailed), ErrForbidden))
	assert.Nil(t, ErrForbidden.Details)
}
