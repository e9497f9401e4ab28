package amenityerrors

import (
	"net/http"

	"go-hotel/internal/shared/apperror"
)

var (
	ErrAmenityNotFound = apperror.New(
		apperror.CodeNotFound,
		"Amenity not found",
		http.StatusNotFound,
	)
	ErrAmenityAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Amenity with the same name already exists",
		http.StatusConflict,
	)
	ErrAmenityInUse = apperror.New(
		apperror.CodeConflict,
		"Amenity is still assigned to a room type",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"category must be one of ROOM, PROPERTY, SERVICE",
		http.StatusBadRequest,
	)
)
