package photoerrors

import (
	"net/http"

	"go-hotel/internal/shared/apperror"
)

var (
	ErrPhotoNotFound = apperror.New(
		apperror.CodeNotFound,
		"Photo not found",
		http.StatusNotFound,
	)
	ErrOwnerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Photo owner not found",
		http.StatusNotFound,
	)
	ErrInvalidOwnerType = apperror.New(
		apperror.CodeInvalidInput,
		"owner_type must be one of PROPERTY, ROOM_TYPE, ROOM",
		http.StatusBadRequest,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Photo file is required",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Photo exceeds the maximum upload size",
		http.StatusRequestEntityTooLarge,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Photo must be a JPEG, PNG or WebP image",
		http.StatusUnsupportedMediaType,
	)
	ErrPrimaryConflict = apperror.New(
		apperror.CodeConflict,
		"Another primary photo was set at the same time, retry the request",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid uploader ID",
		http.StatusBadRequest,
	)
)
