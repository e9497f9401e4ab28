package roomerrors

import (
	"net/http"

	"go-hotel/internal/shared/apperror"
)

var (
	ErrRoomNotFound = apperror.New(
		apperror.CodeNotFound,
		"Room not found",
		http.StatusNotFound,
	)
	ErrRoomNumberExists = apperror.New(
		apperror.CodeConflict,
		"Room number already exists in this property",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Room status cannot change this way",
		http.StatusConflict,
	)
	ErrRoomOccupied = apperror.New(
		apperror.CodeInvalidState,
		"Occupied rooms cannot be deleted",
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
	ErrInvalidRoomTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid room type ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of AVAILABLE, OCCUPIED, CLEANING, MAINTENANCE, OUT_OF_ORDER",
		http.StatusBadRequest,
	)
	ErrPropertyNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"property_id does not reference a property of this company",
		http.StatusBadRequest,
	)
	ErrRoomTypeMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"room_type_id does not belong to the property",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required when taking a room out of service",
		http.StatusBadRequest,
	)
)
