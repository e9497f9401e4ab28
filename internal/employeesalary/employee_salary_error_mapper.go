package employeesalary

import (
	employeesalaryerrors "go-hotel/internal/employeesalary/errors"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: employeesalaryerrors.ErrSalaryNotFound,
	Unique: map[string]error{
		"uq_employee_salary_effective": employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
