package api

import (
	"net/http"

	"task-planner/internal/errors"
)

// StatusCode maps an application error to the HTTP status handlers answer with
func StatusCode(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput,
		errors.ErrorTypeIncompleteDate, errors.ErrorTypeInvalidDate,
		errors.ErrorTypeDuplicate:
		return http.StatusUnprocessableEntity
	case errors.ErrorTypePermission:
		return http.StatusUnauthorized
	case errors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
