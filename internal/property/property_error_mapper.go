package property

import (
	propertyerrors "go-hotel/internal/property/errors"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: propertyerrors.ErrPropertyNotFound,
	Unique: map[string]error{
		"uq_property_code": propertyerrors.ErrPropertyCodeExists,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
