package errors

import (
	"net/http"

	"go-sfm/internal/shared/apperror"
)

var (
	ErrSaleNotFound    = apperror.New(apperror.CodeNotFound, "sale not found", http.StatusNotFound)
	ErrEmptyItems      = apperror.New(apperror.CodeInvalidInput, "a sale requires at least one item", http.StatusBadRequest)
	ErrInvalidDate     = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrUnknownProduct  = apperror.New(apperror.CodeInvalidInput, "unknown product in sale items", http.StatusBadRequest)
	ErrTeamNotManaged  = apperror.New(apperror.CodeForbidden, "team does not belong to you", http.StatusForbidden)
	ErrMissingLocation = apperror.New(apperror.CodeInvalidInput, "location is required", http.StatusBadRequest)
)
