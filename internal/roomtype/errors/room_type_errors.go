package roomtypeerrors

import (
	"net/http"

	"go-hotel/internal/shared/apperror"
)

var (
	ErrRoomTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Room type not found",
		http.StatusNotFound,
	)
	ErrRoomTypeCodeExists = apperror.New(
		apperror.CodeConflict,
		"Room type code already exists in this property",
		http.StatusConflict,
	)
	ErrRoomTypeHasRooms = apperror.New(
		apperror.CodeConflict,
		"Room type is still used by rooms",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidPropertyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid property ID",
		http.StatusBadRequest,
	)
	ErrPropertyNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"property_id does not reference a property of this company",
		http.StatusBadRequest,
	)
	ErrInvalidBaseRate = apperror.New(
		apperror.CodeInvalidInput,
		"base_rate must be greater than zero",
		http.StatusBadRequest,
	)
	ErrUnknownAmenity = apperror.New(
		apperror.CodeInvalidInput,
		"amenity_ids contains an unknown amenity",
		http.StatusBadRequest,
	)
)
