package propertyerrors

import (
	"net/http"

	"go-hotel/internal/shared/apperror"
)

var (
	ErrPropertyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Property not found",
		http.StatusNotFound,
	)
	ErrPropertyCodeExists = apperror.New(
		apperror.CodeConflict,
		"Property code already exists in this company",
		http.StatusConflict,
	)
	ErrPropertyHasRooms = apperror.New(
		apperror.CodeConflict,
		"Property still has rooms or room types",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidPropertyType = apperror.New(
		apperror.CodeInvalidInput,
		"property_type must be one of HOTEL, RESORT, VILLA, APARTMENT, HOSTEL",
		http.StatusBadRequest,
	)
	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown timezone",
		http.StatusBadRequest,
	)
)
