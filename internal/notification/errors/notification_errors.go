package errors

import (
	"net/http"

	"go-sfm/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(apperror.CodeNotFound, "notification not found", http.StatusNotFound)
	ErrInvalidFilter        = apperror.New(apperror.CodeInvalidInput, "invalid notification filter", http.StatusBadRequest)
)
