package room

import (
	roomerrors "go-hotel/internal/room/errors"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: roomerrors.ErrRoomNotFound,
	Unique: map[string]error{
		"uq_room_number": roomerrors.ErrRoomNumberExists,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
