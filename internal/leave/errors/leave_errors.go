package errors

import (
	"net/http"

	"go-sfm/internal/shared/apperror"
)

var (
	ErrLeaveNotFound  = apperror.New(apperror.CodeNotFound, "leave request not found", http.StatusNotFound)
	ErrInvalidPeriod  = apperror.New(apperror.CodeInvalidInput, "start_date must be on or before end_date", http.StatusBadRequest)
	ErrInvalidDate    = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrInvalidStatus  = apperror.New(apperror.CodeInvalidInput, "status must be APPROVED or REJECTED", http.StatusBadRequest)
	ErrAlreadyDecided = apperror.New(apperror.CodeInvalidState, "leave request has already been decided", http.StatusBadRequest)
)
