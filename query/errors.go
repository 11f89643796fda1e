package query

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-wekeza/core"
)

func queryDependencyError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(core.ErrorRequest)
}

func queryValidationError(field string, message string) error {
	return core.NewValidationError("query: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).WithSeverity(goerrors.SeverityError)
}
