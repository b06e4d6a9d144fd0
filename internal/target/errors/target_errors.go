package errors

import (
	"net/http"

	"go-sfm/internal/shared/apperror"
)

var (
	ErrTargetNotFound      = apperror.New(apperror.CodeNotFound, "target not found", http.StatusNotFound)
	ErrInvalidPeriod       = apperror.New(apperror.CodeInvalidInput, "start_date must be on or before end_date", http.StatusBadRequest)
	ErrInvalidDate         = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrOverlappingTarget   = apperror.New(apperror.CodeConflict, "an overlapping target already exists for this executive", http.StatusConflict)
	ErrExecutiveNotManaged = apperror.New(apperror.CodeInvalidInput, "executive is not one of your team members", http.StatusBadRequest)
)
