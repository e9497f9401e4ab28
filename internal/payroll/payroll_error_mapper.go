package payroll

import (
	"errors"
	"net/http"

	payrollerrors "go-hotel/internal/payroll/errors"
	"go-hotel/internal/shared/apperror"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: payrollerrors.ErrPayrollNotFound,
	Unique: map[string]error{
		"uq_payroll_employee_period": payrollerrors.ErrPayrollAlreadyExists,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}

// mapCalculationError turns calculator input errors into a 400 with the
// offending fields as details.
func mapCalculationError(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return apperror.New(
			apperror.CodeValidationError,
			"invalid payroll input",
			http.StatusBadRequest,
		).WithDetails(verr.Fields)
	}
	return err
}
