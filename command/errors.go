package command

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
)

func commandDependencyError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(core.ErrorRequest)
}

func commandValidationError(field string, message string) error {
	return core.NewValidationError("command: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).WithSeverity(goerrors.SeverityError)
}
