package errors

import (
	"net/http"

	"go-sfm/internal/shared/apperror"
)

var (
	ErrProductNotFound  = apperror.New(apperror.CodeNotFound, "product not found", http.StatusNotFound)
	ErrSKUAlreadyExists = apperror.New(apperror.CodeConflict, "a product with this SKU already exists", http.StatusConflict)
)
