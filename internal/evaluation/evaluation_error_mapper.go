package evaluation

import (
	"errors"
	"net/http"

	evaluationerrors "go-hotel/internal/evaluation/errors"
	"go-hotel/internal/shared/apperror"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: evaluationerrors.ErrEvaluationNotFound,
	Unique: map[string]error{
		"uq_evaluation_employee_evaluator_period": evaluationerrors.ErrEvaluationAlreadyExists,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}

func mapScoreError(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return apperror.New(
			apperror.CodeValidationError,
			"invalid evaluation scores",
			http.StatusBadRequest,
		).WithDetails(verr.Fields)
	}
	return err
}
