package photo

import (
	photoerrors "go-hotel/internal/photo/errors"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: photoerrors.ErrPhotoNotFound,
	Unique: map[string]error{
		"uq_photo_primary": photoerrors.ErrPrimaryConflict,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
