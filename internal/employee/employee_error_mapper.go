package employee

import (
	employeeerrors "go-hotel/internal/employee/errors"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: employeeerrors.ErrEmployeeNotFound,
	Unique: map[string]error{
		"uq_employee_code":  employeeerrors.ErrEmployeeCodeAlreadyExists,
		"uq_employee_email": employeeerrors.ErrEmployeeAlreadyExists,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
