package amenity

import (
	amenityerrors "go-hotel/internal/amenity/errors"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: amenityerrors.ErrAmenityNotFound,
	Unique: map[string]error{
		"uq_amenity_name": amenityerrors.ErrAmenityAlreadyExists,
	},
	ForeignKey: amenityerrors.ErrAmenityInUse,
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
