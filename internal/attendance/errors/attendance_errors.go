package errors

import (
	"net/http"

	"go-sfm/internal/shared/apperror"
)

var (
	ErrInvalidStatus = apperror.New(apperror.CodeInvalidInput, "invalid attendance status", http.StatusBadRequest)
	ErrInvalidDate   = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrAlreadyMarked = apperror.New(apperror.CodeConflict, "attendance already marked for this date", http.StatusConflict)
)
