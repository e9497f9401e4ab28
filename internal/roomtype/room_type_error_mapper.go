package roomtype

import (
	roomtypeerrors "go-hotel/internal/roomtype/errors"
	"go-hotel/internal/shared/dberr"
)

var repositoryErrors = dberr.Mapping{
	NotFound: roomtypeerrors.ErrRoomTypeNotFound,
	Unique: map[string]error{
		"uq_room_type_code": roomtypeerrors.ErrRoomTypeCodeExists,
	},
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
