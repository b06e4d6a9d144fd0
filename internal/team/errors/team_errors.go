package errors

import (
	"net/http"

	"go-sfm/internal/shared/apperror"
)

var (
	ErrTeamNotFound     = apperror.New(apperror.CodeNotFound, "team not found", http.StatusNotFound)
	ErrMemberNotManaged = apperror.New(apperror.CodeInvalidInput, "member is not one of your executives", http.StatusBadRequest)
	ErrTeamNameTaken    = apperror.New(apperror.CodeConflict, "a team with this name already exists", http.StatusConflict)
)
